package adapters

import (
	"context"

	"google.golang.org/genai"
)

// mockContentGenerator は genai.Models のテスト用モックなのだ。
type mockContentGenerator struct {
	generateFunc func(model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (m *mockContentGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(model, contents, config)
	}
	return nil, nil
}

func imageResponse(mime string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonStop,
			Content: &genai.Content{
				Parts: []*genai.Part{
					{Text: "here you go"},
					{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
				},
			},
		}},
	}
}
