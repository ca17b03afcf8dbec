package runner

import (
	"context"
	"io"

	"github.com/shouni/canon-forge-kit/pkg/generator"
)

// ImageResolver は生成結果のロケーターを画像データに解決します。
type ImageResolver interface {
	Resolve(ctx context.Context, locator string) (*generator.ResolvedImage, error)
}

// OutputWriter は画像の書き出し先です。remoteio.OutputWriter と同じ形です。
type OutputWriter interface {
	Write(ctx context.Context, path string, r io.Reader, contentType string) error
}
