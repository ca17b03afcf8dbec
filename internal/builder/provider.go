package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/canon-forge-kit/internal/config"
	"github.com/shouni/canon-forge-kit/pkg/adapters"
	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/generator"
)

// BuildProvider は設定に応じて認証付き (gemini) かキー不要 (pollinations) のアダプターを返します。
func BuildProvider(ctx context.Context, cfg *config.Config) (generator.Provider, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			// 起動は止めず、生成のたびに AUTH_REQUIRED を返して再認証を促すのだ
			slog.WarnContext(ctx, "GEMINI_API_KEY が未設定です。生成は AUTH_REQUIRED になります")
			return unauthenticatedProvider{name: config.ProviderGemini}, nil
		}
		client, err := adapters.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		provider, err := adapters.NewGeminiProvider(client.Models, cfg.GeminiImageModel)
		if err != nil {
			return nil, fmt.Errorf("GeminiProvider の初期化に失敗しました: %w", err)
		}
		return provider, nil
	case config.ProviderPollinations:
		return adapters.NewPollinationsProvider(cfg.PollinationsBaseURL, ""), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

// unauthenticatedProvider は資格情報がないときの代役です。
type unauthenticatedProvider struct {
	name string
}

func (p unauthenticatedProvider) Name() string { return p.name }

func (p unauthenticatedProvider) Generate(_ context.Context, _ generator.ProviderRequest) (*domain.GenerationResult, error) {
	return nil, generator.NewError(generator.KindAuthRequired, "API キーが設定されていません", nil)
}
