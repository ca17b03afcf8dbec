package generator

import (
	"context"
	"fmt"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/prompts"
)

// CanonGenerator はキャラクター、セット、合成の3種類の生成を担当する統合ジェネレーターです。
// 同一性はキャラクターのシードと外見記述の繰り返しだけで保つのだ。
type CanonGenerator struct {
	dispatcher RequestDispatcher
}

// NewCanonGenerator は CanonGenerator を初期化するのだ。
func NewCanonGenerator(dispatcher RequestDispatcher) (*CanonGenerator, error) {
	if dispatcher == nil {
		return nil, fmt.Errorf("dispatcher is required")
	}
	return &CanonGenerator{dispatcher: dispatcher}, nil
}

// GenerateCharacterImage はキャラクターの参照画像を生成します。
func (g *CanonGenerator) GenerateCharacterImage(ctx context.Context, profile domain.CharacterProfile, category domain.Category) (*domain.GenerationResult, error) {
	prompt, ratio := prompts.CompileCharacterPrompt(profile, category)
	return g.dispatcher.Dispatch(ctx, prompt, profile.Seed, ratio)
}

// GenerateSetImage はセットの参照画像を生成します。
func (g *CanonGenerator) GenerateSetImage(ctx context.Context, profile domain.SetProfile, category domain.Category) (*domain.GenerationResult, error) {
	prompt, ratio := prompts.CompileSetPrompt(profile, category)
	return g.dispatcher.Dispatch(ctx, prompt, profile.Seed, ratio)
}

// GenerateCompositeImage はキャラクターをセットに配置した画像を生成します。
// シードは必ずキャラクターのものを使い、セットのシードは使わないのだ。
func (g *CanonGenerator) GenerateCompositeImage(ctx context.Context, character domain.CharacterProfile, set domain.SetProfile, cfg domain.CompositeConfig) (*domain.GenerationResult, error) {
	prompt, ratio := prompts.CompileCompositePrompt(character, set, cfg)
	return g.dispatcher.Dispatch(ctx, prompt, character.Seed, ratio)
}
