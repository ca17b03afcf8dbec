package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/store"
)

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Exporter は参照画像を解決して出力先ディレクトリへ書き出します。
type Exporter struct {
	resolver ImageResolver
	writer   OutputWriter
}

// NewExporter は Exporter を初期化します。
func NewExporter(resolver ImageResolver, writer OutputWriter) (*Exporter, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	if writer == nil {
		return nil, fmt.Errorf("writer is required")
	}
	return &Exporter{resolver: resolver, writer: writer}, nil
}

// Export は画像を <outputDir>/<prefix>_<category>_<id>.<ext> に保存し、保存先を返します。
// 解決できない画像はそのエラーを返すので、キー不要プロバイダーの失敗もここで分かるのだ。
func (e *Exporter) Export(ctx context.Context, outputDir, prefix string, img domain.ReferenceImage) (string, error) {
	resolved, err := e.resolver.Resolve(ctx, img.URL)
	if err != nil {
		return "", err
	}

	ext, ok := extensions[resolved.MimeType]
	if !ok {
		ext = ".img"
	}
	name := fmt.Sprintf("%s_%s_%s%s", sanitize(prefix), strings.ToLower(string(img.Category)), shortID(img.ID), ext)
	path := store.JoinPath(outputDir, name)

	if err := e.writer.Write(ctx, path, bytes.NewReader(resolved.Data), resolved.MimeType); err != nil {
		return "", fmt.Errorf("画像の保存に失敗しました (%s): %w", path, err)
	}
	slog.InfoContext(ctx, "画像を保存しました", "path", path, "bytes", len(resolved.Data))
	return path, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// sanitize はファイル名に使えない文字を _ に置き換えます。
func sanitize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "untitled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, s)
}
