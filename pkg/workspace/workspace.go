package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/generator"
)

// ErrGenerationInProgress は別の生成が進行中のときに返ります。
var ErrGenerationInProgress = errors.New("another generation is in progress")

// ErrProfileNotFound は保存済みコレクションに ID がないときに返ります。
var ErrProfileNotFound = errors.New("profile not found")

// ErrUnknownCategory は対象に合わないカテゴリーを指定したときに返ります。
var ErrUnknownCategory = errors.New("unknown category")

// Workspace は編集セッションの状態を所有します。
// 生成コアは状態を持たないので、結果の追加はすべてここで行うのだ。
type Workspace struct {
	generator generator.ImageGenerator
	repo      ProfileRepository
	now       func() time.Time

	mu    sync.Mutex
	state State
}

// New は Workspace を初期化します。
func New(gen generator.ImageGenerator, repo ProfileRepository) (*Workspace, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if repo == nil {
		return nil, fmt.Errorf("repository is required")
	}
	return &Workspace{
		generator: gen,
		repo:      repo,
		now:       time.Now,
		state:     NewState(),
	}, nil
}

// Snapshot は現在の状態の複製を返します。
func (w *Workspace) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.clone()
}

// Refresh は保存済みコレクションを読み直します。
func (w *Workspace) Refresh(ctx context.Context) {
	chars := w.repo.LoadCharacters(ctx)
	sets := w.repo.LoadSets(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.SavedCharacters = chars
	w.state.SavedSets = sets
}

// UpdateCharacter は作業中キャラクターの属性を置き換えます。
// ID とシードは保持し、ランダム化以外では変えないのだ。
func (w *Workspace) UpdateCharacter(p domain.CharacterProfile) domain.CharacterProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	p.ID = w.state.Character.ID
	p.Seed = w.state.Character.Seed
	w.state.Character = p
	return p
}

// UpdateSet は作業中セットの属性を置き換えます。
func (w *Workspace) UpdateSet(p domain.SetProfile) domain.SetProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	p.ID = w.state.Set.ID
	p.Seed = w.state.Set.Seed
	if !p.LocationType.IsValid() {
		p.LocationType = domain.LocationIndoor
	}
	w.state.Set = p
	return p
}

// UpdateComposite は合成の演出指定を置き換えます。参照先は作業中のプロファイルに揃えます。
func (w *Workspace) UpdateComposite(cfg domain.CompositeConfig) domain.CompositeConfig {
	w.mu.Lock()
	defer w.mu.Unlock()
	cfg.CharacterID = w.state.Character.ID
	cfg.SetID = w.state.Set.ID
	w.state.Composite = cfg
	return cfg
}

// RandomizeCharacter はキャラクターをランダム化し、同一性が変わるので参照画像を破棄します。
func (w *Workspace) RandomizeCharacter() domain.CharacterProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Character = domain.RandomizeCharacter(w.state.Character)
	w.state.CharacterImages = []domain.ReferenceImage{}
	return w.state.Character
}

// RandomizeSet はセットをランダム化し、参照画像を破棄します。
func (w *Workspace) RandomizeSet() domain.SetProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Set = domain.RandomizeSet(w.state.Set)
	w.state.SetImages = []domain.ReferenceImage{}
	return w.state.Set
}

// RandomizeComposite は合成の演出をランダムに選びます。
func (w *Workspace) RandomizeComposite() domain.CompositeConfig {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Composite = domain.RandomizeComposite(w.state.Composite)
	return w.state.Composite
}

// ResetCharacter は新規キャラクターで作業をやり直します。
func (w *Workspace) ResetCharacter() domain.CharacterProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Character = domain.NewCharacterProfile()
	w.state.CharacterImages = []domain.ReferenceImage{}
	w.state.Composite.CharacterID = w.state.Character.ID
	return w.state.Character
}

// ResetSet は新規セットで作業をやり直します。
func (w *Workspace) ResetSet() domain.SetProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Set = domain.NewSetProfile()
	w.state.SetImages = []domain.ReferenceImage{}
	w.state.Composite.SetID = w.state.Set.ID
	return w.state.Set
}

// ClearAuthRequired は再認証が完了したときに呼びます。
func (w *Workspace) ClearAuthRequired() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.AuthRequired = false
}
