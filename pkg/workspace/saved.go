package workspace

import (
	"context"
	"fmt"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// SaveCharacter は作業中キャラクターを保存します。失敗しても編集は続けられるよう bool で返すのだ。
func (w *Workspace) SaveCharacter(ctx context.Context) bool {
	p := w.Snapshot().Character
	ok := w.repo.SaveCharacter(ctx, p)
	if ok {
		w.Refresh(ctx)
	}
	return ok
}

// SaveSet は作業中セットを保存します。
func (w *Workspace) SaveSet(ctx context.Context) bool {
	p := w.Snapshot().Set
	ok := w.repo.SaveSet(ctx, p)
	if ok {
		w.Refresh(ctx)
	}
	return ok
}

// SelectCharacter は保存済みキャラクターを作業中に読み込みます。参照画像は破棄します。
func (w *Workspace) SelectCharacter(ctx context.Context, id string) (domain.CharacterProfile, error) {
	p, ok := w.repo.FindCharacter(ctx, id)
	if !ok {
		return domain.CharacterProfile{}, fmt.Errorf("character %s: %w", id, ErrProfileNotFound)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Character = p
	w.state.CharacterImages = []domain.ReferenceImage{}
	w.state.Composite.CharacterID = p.ID
	return p, nil
}

// SelectSet は保存済みセットを作業中に読み込みます。
func (w *Workspace) SelectSet(ctx context.Context, id string) (domain.SetProfile, error) {
	p, ok := w.repo.FindSet(ctx, id)
	if !ok {
		return domain.SetProfile{}, fmt.Errorf("set %s: %w", id, ErrProfileNotFound)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Set = p
	w.state.SetImages = []domain.ReferenceImage{}
	w.state.Composite.SetID = p.ID
	return p, nil
}

// DeleteCharacter は保存済みキャラクターを削除します。
func (w *Workspace) DeleteCharacter(ctx context.Context, id string) bool {
	ok := w.repo.DeleteCharacter(ctx, id)
	if ok {
		w.Refresh(ctx)
	}
	return ok
}

// DeleteSet は保存済みセットを削除します。
func (w *Workspace) DeleteSet(ctx context.Context, id string) bool {
	ok := w.repo.DeleteSet(ctx, id)
	if ok {
		w.Refresh(ctx)
	}
	return ok
}
