package builder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shouni/canon-forge-kit/pkg/store"

	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

const gcsScheme = "gs://"

// RoutedIO は gs:// のパスを GCS へ、それ以外をローカルファイルシステムへ振り分けます。
type RoutedIO struct {
	local  store.LocalFS
	reader remoteio.InputReader
	writer remoteio.OutputWriter
}

// BuildIO は指定されたディレクトリのどれかが gs:// のときだけ GCS クライアントを初期化します。
func BuildIO(ctx context.Context, dirs ...string) (*RoutedIO, error) {
	rio := &RoutedIO{}

	needsGCS := false
	for _, d := range dirs {
		if isGCS(d) {
			needsGCS = true
			break
		}
	}
	if !needsGCS {
		return rio, nil
	}

	factory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS factory: %w", err)
	}
	rio.reader, err = factory.InputReader()
	if err != nil {
		return nil, fmt.Errorf("failed to create input reader: %w", err)
	}
	rio.writer, err = factory.OutputWriter()
	if err != nil {
		return nil, fmt.Errorf("failed to create output writer: %w", err)
	}
	return rio, nil
}

// Open はパスに応じた読み込み元を開きます。
func (r *RoutedIO) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if !isGCS(path) {
		return r.local.Open(ctx, path)
	}
	if r.reader == nil {
		return nil, fmt.Errorf("GCS reader is not configured: %s", path)
	}
	return r.reader.Open(ctx, path)
}

// Write はパスに応じた書き込み先へ保存します。
func (r *RoutedIO) Write(ctx context.Context, path string, src io.Reader, contentType string) error {
	if !isGCS(path) {
		return r.local.Write(ctx, path, src, contentType)
	}
	if r.writer == nil {
		return fmt.Errorf("GCS writer is not configured: %s", path)
	}
	return r.writer.Write(ctx, path, src, contentType)
}

func isGCS(path string) bool {
	return strings.HasPrefix(path, gcsScheme)
}
