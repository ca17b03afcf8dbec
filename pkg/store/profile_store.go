package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/samber/lo"
	"github.com/shouni/canon-forge-kit/pkg/domain"
)

const (
	// KeyCharacters と KeySets は保存済みコレクションのキーです。
	KeyCharacters = "saved_chars"
	KeySets       = "saved_sets"

	contentTypeJSON = "application/json"
)

// ProfileStore はキャラクターとセットの保存済みコレクションを管理します。
// 未作成や破損は空のコレクションとして扱い、保存失敗は bool で返すのだ。
type ProfileStore struct {
	reader  BlobReader
	writer  BlobWriter
	baseDir string
	mu      sync.Mutex
}

// NewProfileStore は ProfileStore を初期化します。baseDir はローカルパスでも gs:// でも構いません。
func NewProfileStore(reader BlobReader, writer BlobWriter, baseDir string) (*ProfileStore, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if writer == nil {
		return nil, fmt.Errorf("writer is required")
	}
	return &ProfileStore{reader: reader, writer: writer, baseDir: baseDir}, nil
}

// LoadCharacters は保存済みキャラクターを保存順で返します。
func (s *ProfileStore) LoadCharacters(ctx context.Context) []domain.CharacterProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load[domain.CharacterProfile](ctx, s, KeyCharacters)
}

// LoadSets は保存済みセットを保存順で返します。
func (s *ProfileStore) LoadSets(ctx context.Context) []domain.SetProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load[domain.SetProfile](ctx, s, KeySets)
}

// FindCharacter は ID でキャラクターを探します。
func (s *ProfileStore) FindCharacter(ctx context.Context, id string) (domain.CharacterProfile, bool) {
	return lo.Find(s.LoadCharacters(ctx), func(p domain.CharacterProfile) bool { return p.ID == id })
}

// FindSet は ID でセットを探します。
func (s *ProfileStore) FindSet(ctx context.Context, id string) (domain.SetProfile, bool) {
	return lo.Find(s.LoadSets(ctx), func(p domain.SetProfile) bool { return p.ID == id })
}

// SaveCharacter は同じ ID の既存レコードを除いてから末尾に追加します。
func (s *ProfileStore) SaveCharacter(ctx context.Context, p domain.CharacterProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := loadForUpdate[domain.CharacterProfile](ctx, s, KeyCharacters)
	if !ok {
		return false
	}
	items = upsert(items, p, func(c domain.CharacterProfile) string { return c.ID })
	return persist(ctx, s, KeyCharacters, items)
}

// SaveSet は同じ ID の既存レコードを除いてから末尾に追加します。
func (s *ProfileStore) SaveSet(ctx context.Context, p domain.SetProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := loadForUpdate[domain.SetProfile](ctx, s, KeySets)
	if !ok {
		return false
	}
	items = upsert(items, p, func(c domain.SetProfile) string { return c.ID })
	return persist(ctx, s, KeySets, items)
}

// DeleteCharacter は ID が一致するキャラクターを削除します。
func (s *ProfileStore) DeleteCharacter(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := loadForUpdate[domain.CharacterProfile](ctx, s, KeyCharacters)
	if !ok {
		return false
	}
	items = lo.Reject(items, func(c domain.CharacterProfile, _ int) bool { return c.ID == id })
	return persist(ctx, s, KeyCharacters, items)
}

// DeleteSet は ID が一致するセットを削除します。
func (s *ProfileStore) DeleteSet(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := loadForUpdate[domain.SetProfile](ctx, s, KeySets)
	if !ok {
		return false
	}
	items = lo.Reject(items, func(c domain.SetProfile, _ int) bool { return c.ID == id })
	return persist(ctx, s, KeySets, items)
}

func (s *ProfileStore) pathFor(key string) string {
	return JoinPath(s.baseDir, key+".json")
}

// JoinPath は gs:// のスキームを壊さずにパスを連結します。
func JoinPath(base, name string) string {
	if base == "" {
		return name
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(name, "/")
}

// load は一覧表示用です。読めないときはすべて空として扱います。
func load[T any](ctx context.Context, s *ProfileStore, key string) []T {
	items, err := read[T](ctx, s, key)
	if err != nil {
		slog.WarnContext(ctx, "保存済みコレクションの読み込みに失敗しました", "path", s.pathFor(key), "error", err)
		return []T{}
	}
	return items
}

// loadForUpdate は書き戻し前の読み込みです。
// 未作成と破損だけを空として扱い、それ以外の読み込み失敗では書き戻さないのだ。
func loadForUpdate[T any](ctx context.Context, s *ProfileStore, key string) ([]T, bool) {
	items, err := read[T](ctx, s, key)
	if err != nil {
		slog.ErrorContext(ctx, "既存コレクションを読めないため保存を中止しました", "path", s.pathFor(key), "error", err)
		return nil, false
	}
	return items, true
}

// read は未作成と破損を空として返し、それ以外の I/O エラーだけを返します。
func read[T any](ctx context.Context, s *ProfileStore, key string) ([]T, error) {
	path := s.pathFor(key)
	rc, err := s.reader.Open(ctx, path)
	if err != nil {
		if isNotExist(err) {
			slog.DebugContext(ctx, "保存済みコレクションが見つかりません", "path", path)
			return []T{}, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.WarnContext(ctx, "保存済みコレクションが壊れています。空として扱います", "path", path, "error", err)
		return []T{}, nil
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, storage.ErrObjectNotExist)
}

func persist[T any](ctx context.Context, s *ProfileStore, key string, items []T) bool {
	path := s.pathFor(key)
	data, err := json.Marshal(items)
	if err != nil {
		slog.ErrorContext(ctx, "コレクションのエンコードに失敗しました", "path", path, "error", err)
		return false
	}
	if err := s.writer.Write(ctx, path, bytes.NewReader(data), contentTypeJSON); err != nil {
		slog.ErrorContext(ctx, "コレクションの保存に失敗しました", "path", path, "error", err)
		return false
	}
	return true
}

func upsert[T any](items []T, item T, id func(T) string) []T {
	key := id(item)
	out := lo.Reject(items, func(v T, _ int) bool { return id(v) == key })
	return append(out, item)
}
