package adapters

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/generator"
)

const (
	DefaultPollinationsBaseURL = "https://image.pollinations.ai/prompt"
	DefaultPollinationsModel   = "flux"
	// MaxPromptRunes は URL 長の制限に収めるためのプロンプト上限です。
	MaxPromptRunes = 1500
)

// PollinationsProvider はキー不要の公開画像生成サービスのアダプターです。
// 自己完結した URL を組み立てて返すだけで、通信はしません。
// 生成の成否は URL を参照した時点で初めて分かるのだ。
type PollinationsProvider struct {
	baseURL string
	model   string
}

// NewPollinationsProvider は PollinationsProvider を初期化します。空の引数は既定値になります。
func NewPollinationsProvider(baseURL, model string) *PollinationsProvider {
	if baseURL == "" {
		baseURL = DefaultPollinationsBaseURL
	}
	if model == "" {
		model = DefaultPollinationsModel
	}
	return &PollinationsProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

func (p *PollinationsProvider) Name() string { return "pollinations" }

// Generate は画像 URL を組み立てて返します。
func (p *PollinationsProvider) Generate(ctx context.Context, req generator.ProviderRequest) (*domain.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, generator.NewError(generator.KindTransport, "request abandoned", err)
	}
	return &domain.GenerationResult{URL: p.BuildURL(req), Prompt: req.Prompt}, nil
}

// BuildURL は <base>/<prompt>?seed=&width=&height=&nologo=true&model= 形式の URL を返します。
// パラメータの順序は固定なので url.Values は使わないのだ。
func (p *PollinationsProvider) BuildURL(req generator.ProviderRequest) string {
	return fmt.Sprintf("%s/%s?seed=%d&width=%d&height=%d&nologo=true&model=%s",
		p.baseURL,
		encodePathSegment(truncateRunes(req.Prompt, MaxPromptRunes)),
		req.Seed,
		req.Width,
		req.Height,
		url.QueryEscape(p.model),
	)
}

// truncateRunes は先頭 limit 文字までのバイト列をそのまま返します。
// 不正な UTF-8 も1文字として数え、置換はしないのだ。
func truncateRunes(s string, limit int) string {
	i := 0
	for n := 0; i < len(s); n++ {
		if n == limit {
			return s[:i]
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s
}

// encodePathSegment は空白を %20 にし、予約文字をすべてエスケープします。
func encodePathSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
