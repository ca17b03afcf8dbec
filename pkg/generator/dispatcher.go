package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// Dispatcher はプロンプトを正規化して唯一のプロバイダーへ送ります。
// リトライは行いません。必要なら呼び出し側で制御するのだ。
// 期限とキャンセルは呼び出し側の ctx に従います。
type Dispatcher struct {
	provider Provider
}

// NewDispatcher は Dispatcher を初期化します。
func NewDispatcher(provider Provider) (*Dispatcher, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}
	return &Dispatcher{provider: provider}, nil
}

// ProviderName は有効なプロバイダー名を返します。
func (d *Dispatcher) ProviderName() string {
	return d.provider.Name()
}

// Dispatch はシードとアスペクト比を正規化し、プロバイダーを1回だけ呼び出します。
// 未分類の失敗はすべて TRANSPORT として返すのだ。
func (d *Dispatcher) Dispatch(ctx context.Context, prompt string, seed int64, aspectRatio string) (*domain.GenerationResult, error) {
	ratio, dims := ResolveDimensions(aspectRatio)
	req := ProviderRequest{
		Prompt:      prompt,
		Seed:        int32(NormalizeSeed(seed)),
		AspectRatio: ratio,
		Width:       dims.Width,
		Height:      dims.Height,
	}

	start := time.Now()
	result, err := d.provider.Generate(ctx, req)
	if err != nil {
		err = classify(err)
		slog.WarnContext(ctx, "画像生成に失敗しました",
			"provider", d.provider.Name(),
			"seed", req.Seed,
			"aspect_ratio", req.AspectRatio,
			"kind", KindOf(err),
			"error", err,
		)
		return nil, err
	}
	if result == nil || result.URL == "" {
		return nil, NewError(KindNoResult, "provider returned an empty result", nil)
	}

	slog.InfoContext(ctx, "画像生成が完了しました",
		"provider", d.provider.Name(),
		"seed", req.Seed,
		"aspect_ratio", req.AspectRatio,
		"elapsed", time.Since(start),
	)

	return &domain.GenerationResult{URL: result.URL, Prompt: prompt}, nil
}
