package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/generator"
	"google.golang.org/genai"
)

const (
	// DefaultGeminiImageModel は既定の画像生成モデルです。
	DefaultGeminiImageModel = "gemini-3-pro-image-preview"
	// DefaultImageSize は出力解像度の指定です。
	DefaultImageSize = "1K"
)

// ContentGenerator は genai.Models のうち利用するメソッドだけを切り出したものです。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider は API キーで認証するマルチモーダルモデルのアダプターです。
type GeminiProvider struct {
	models    ContentGenerator
	model     string
	imageSize string
}

// NewGeminiProvider は GeminiProvider を初期化します。model が空なら既定モデルを使うのだ。
func NewGeminiProvider(models ContentGenerator, model string) (*GeminiProvider, error) {
	if models == nil {
		return nil, fmt.Errorf("models (ContentGenerator) is required")
	}
	if model == "" {
		model = DefaultGeminiImageModel
	}
	return &GeminiProvider{
		models:    models,
		model:     model,
		imageSize: DefaultImageSize,
	}, nil
}

// NewGeminiClient は API キーから genai クライアントを生成します。
// キーがない場合は AUTH_REQUIRED を返すのだ。
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, generator.NewError(generator.KindAuthRequired, "GEMINI_API_KEY が設定されていません", nil)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return client, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

// Generate はプロンプトとシード、サイズ設定を送信し、生成画像を data URI で返します。
func (p *GeminiProvider) Generate(ctx context.Context, req generator.ProviderRequest) (*domain.GenerationResult, error) {
	config := &genai.GenerateContentConfig{
		Seed: genai.Ptr(req.Seed),
		ImageConfig: &genai.ImageConfig{
			AspectRatio: req.AspectRatio,
			ImageSize:   p.imageSize,
		},
	}

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	uri, err := ParseToDataURI(resp)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Gemini から画像を受信しました", "model", p.model, "bytes", len(uri))
	return &domain.GenerationResult{URL: uri, Prompt: req.Prompt}, nil
}
