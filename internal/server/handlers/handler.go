package handlers

import (
	"context"
	"fmt"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/workspace"
)

// Workspace はハンドラーが利用する編集セッションの操作です。
type Workspace interface {
	Snapshot() workspace.State
	Refresh(ctx context.Context)
	UpdateCharacter(p domain.CharacterProfile) domain.CharacterProfile
	UpdateSet(p domain.SetProfile) domain.SetProfile
	UpdateComposite(cfg domain.CompositeConfig) domain.CompositeConfig
	RandomizeCharacter() domain.CharacterProfile
	RandomizeSet() domain.SetProfile
	RandomizeComposite() domain.CompositeConfig
	ClearAuthRequired()
	GenerateCharacterImage(ctx context.Context, category domain.Category) (domain.ReferenceImage, error)
	GenerateSetImage(ctx context.Context, category domain.Category) (domain.ReferenceImage, error)
	GenerateCompositeImage(ctx context.Context) (domain.ReferenceImage, error)
	SaveCharacter(ctx context.Context) bool
	SaveSet(ctx context.Context) bool
	SelectCharacter(ctx context.Context, id string) (domain.CharacterProfile, error)
	SelectSet(ctx context.Context, id string) (domain.SetProfile, error)
	DeleteCharacter(ctx context.Context, id string) bool
	DeleteSet(ctx context.Context, id string) bool
}

// Handler は JSON API のハンドラー群です。
type Handler struct {
	ws Workspace
}

// NewHandler は Handler を初期化します。
func NewHandler(ws Workspace) (*Handler, error) {
	if ws == nil {
		return nil, fmt.Errorf("workspace is required")
	}
	return &Handler{ws: ws}, nil
}
