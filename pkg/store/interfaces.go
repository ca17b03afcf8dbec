package store

import (
	"context"
	"io"
)

// BlobReader は保存先からデータを読み込みます。remoteio.InputReader と同じ形です。
type BlobReader interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// BlobWriter は保存先へデータを書き込みます。remoteio.OutputWriter と同じ形です。
type BlobWriter interface {
	Write(ctx context.Context, path string, r io.Reader, contentType string) error
}
