package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
)

// memoryBlobs は BlobReader と BlobWriter を兼ねるテスト用バックエンドなのだ。
type memoryBlobs struct {
	data     map[string][]byte
	openErr  error
	writeErr error
	writes   []string
}

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{data: make(map[string][]byte)}
}

func (m *memoryBlobs) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	b, ok := m.data[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memoryBlobs) Write(ctx context.Context, path string, r io.Reader, contentType string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.data[path] = b
	m.writes = append(m.writes, path+"|"+contentType)
	return nil
}

var (
	errQuotaExceeded      = errors.New("quota exceeded")
	errBackendUnavailable = errors.New("503 backend unavailable")
)
