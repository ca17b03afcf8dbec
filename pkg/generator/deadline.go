package generator

import (
	"context"
	"time"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// DeadlineGenerator は呼び出し境界で1リクエストごとの期限を付与する ImageGenerator です。
// CLI やサーバーから渡された ctx より長くはならないのだ。
type DeadlineGenerator struct {
	next    ImageGenerator
	timeout time.Duration
}

// WithTimeout は gen を包み、各生成呼び出しに timeout を付けます。
// timeout が 0 以下なら gen をそのまま返します。
func WithTimeout(gen ImageGenerator, timeout time.Duration) ImageGenerator {
	if timeout <= 0 {
		return gen
	}
	return &DeadlineGenerator{next: gen, timeout: timeout}
}

func (g *DeadlineGenerator) GenerateCharacterImage(ctx context.Context, profile domain.CharacterProfile, category domain.Category) (*domain.GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.GenerateCharacterImage(ctx, profile, category)
}

func (g *DeadlineGenerator) GenerateSetImage(ctx context.Context, profile domain.SetProfile, category domain.Category) (*domain.GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.GenerateSetImage(ctx, profile, category)
}

func (g *DeadlineGenerator) GenerateCompositeImage(ctx context.Context, character domain.CharacterProfile, set domain.SetProfile, cfg domain.CompositeConfig) (*domain.GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.GenerateCompositeImage(ctx, character, set, cfg)
}
