package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalFS はローカルディレクトリを保存先とするバックエンドです。
type LocalFS struct{}

// Open はファイルを開きます。
func (LocalFS) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Write は一時ファイルに書いてから置き換えるので、途中で失敗しても既存データは壊れないのだ。
func (LocalFS) Write(ctx context.Context, path string, r io.Reader, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ディレクトリの作成に失敗しました: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("書き込みに失敗しました: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
