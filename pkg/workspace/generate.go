package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/generator"
)

// GenerateCharacterImage は作業中キャラクターの参照画像を生成し、先頭に追加します。
func (w *Workspace) GenerateCharacterImage(ctx context.Context, category domain.Category) (domain.ReferenceImage, error) {
	if !category.IsCharacter() {
		return domain.ReferenceImage{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	w.mu.Lock()
	if err := w.begin(); err != nil {
		w.mu.Unlock()
		return domain.ReferenceImage{}, err
	}
	profile := w.state.Character
	w.mu.Unlock()

	res, err := w.call(func() (*domain.GenerationResult, error) {
		return w.generator.GenerateCharacterImage(ctx, profile, category)
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.finish(err); err != nil {
		return domain.ReferenceImage{}, err
	}
	img := domain.NewReferenceImage(category, *res, w.now())
	// 生成中にランダム化された場合は古い同一性の画像なので捨てる
	if sameIdentity(w.state.Character.ID, w.state.Character.Seed, profile.ID, profile.Seed) {
		w.state.CharacterImages = domain.PrependImage(w.state.CharacterImages, img)
	}
	return img, nil
}

// GenerateSetImage は作業中セットの参照画像を生成し、先頭に追加します。
func (w *Workspace) GenerateSetImage(ctx context.Context, category domain.Category) (domain.ReferenceImage, error) {
	if !category.IsSet() {
		return domain.ReferenceImage{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	w.mu.Lock()
	if err := w.begin(); err != nil {
		w.mu.Unlock()
		return domain.ReferenceImage{}, err
	}
	profile := w.state.Set
	w.mu.Unlock()

	res, err := w.call(func() (*domain.GenerationResult, error) {
		return w.generator.GenerateSetImage(ctx, profile, category)
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.finish(err); err != nil {
		return domain.ReferenceImage{}, err
	}
	img := domain.NewReferenceImage(category, *res, w.now())
	if sameIdentity(w.state.Set.ID, w.state.Set.Seed, profile.ID, profile.Seed) {
		w.state.SetImages = domain.PrependImage(w.state.SetImages, img)
	}
	return img, nil
}

// GenerateCompositeImage は作業中のキャラクターとセットで合成画像を生成します。
func (w *Workspace) GenerateCompositeImage(ctx context.Context) (domain.ReferenceImage, error) {
	w.mu.Lock()
	if err := w.begin(); err != nil {
		w.mu.Unlock()
		return domain.ReferenceImage{}, err
	}
	character := w.state.Character
	set := w.state.Set
	cfg := w.state.Composite
	w.mu.Unlock()

	res, err := w.call(func() (*domain.GenerationResult, error) {
		return w.generator.GenerateCompositeImage(ctx, character, set, cfg)
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.finish(err); err != nil {
		return domain.ReferenceImage{}, err
	}
	img := domain.NewReferenceImage(domain.CategoryComposite, *res, w.now())
	w.state.CompositeImages = domain.PrependImage(w.state.CompositeImages, img)
	return img, nil
}

// begin はロック保持中に呼ぶのだ。
func (w *Workspace) begin() error {
	if w.state.Generating {
		return ErrGenerationInProgress
	}
	w.state.Generating = true
	w.state.LastError = ""
	return nil
}

// call はロックを外した状態で生成を呼び出します。
// 生成が panic しても Generating フラグは必ず戻すのだ。
func (w *Workspace) call(gen func() (*domain.GenerationResult, error)) (*domain.GenerationResult, error) {
	completed := false
	defer func() {
		if !completed {
			w.mu.Lock()
			w.state.Generating = false
			w.mu.Unlock()
		}
	}()

	res, err := gen()
	completed = true
	return res, err
}

// finish はロック保持中に呼び、生成結果に応じて状態を更新します。
func (w *Workspace) finish(err error) error {
	w.state.Generating = false
	if err == nil {
		return nil
	}
	if errors.Is(err, generator.ErrAuthRequired) {
		w.state.AuthRequired = true
	}
	w.state.LastError = err.Error()
	return err
}

func sameIdentity(id string, seed int64, wantID string, wantSeed int64) bool {
	return id == wantID && seed == wantSeed
}
