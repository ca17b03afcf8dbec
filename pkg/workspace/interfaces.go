package workspace

import (
	"context"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// ProfileRepository は保存済みコレクションへのアクセスを抽象化します。
type ProfileRepository interface {
	LoadCharacters(ctx context.Context) []domain.CharacterProfile
	LoadSets(ctx context.Context) []domain.SetProfile
	FindCharacter(ctx context.Context, id string) (domain.CharacterProfile, bool)
	FindSet(ctx context.Context, id string) (domain.SetProfile, bool)
	SaveCharacter(ctx context.Context, p domain.CharacterProfile) bool
	SaveSet(ctx context.Context, p domain.SetProfile) bool
	DeleteCharacter(ctx context.Context, id string) bool
	DeleteSet(ctx context.Context, id string) bool
}
