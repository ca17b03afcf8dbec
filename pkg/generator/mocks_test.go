package generator

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// --- Mocks ---

type mockProvider struct {
	generateFunc func(ctx context.Context, req ProviderRequest) (*domain.GenerationResult, error)
	calls        []ProviderRequest
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Generate(ctx context.Context, req ProviderRequest) (*domain.GenerationResult, error) {
	m.calls = append(m.calls, req)
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return &domain.GenerationResult{URL: "https://image.example/result.png", Prompt: req.Prompt}, nil
}

type dispatchCall struct {
	prompt      string
	seed        int64
	aspectRatio string
}

type mockDispatcher struct {
	calls []dispatchCall
	err   error
}

func (m *mockDispatcher) Dispatch(ctx context.Context, prompt string, seed int64, aspectRatio string) (*domain.GenerationResult, error) {
	m.calls = append(m.calls, dispatchCall{prompt: prompt, seed: seed, aspectRatio: aspectRatio})
	if m.err != nil {
		return nil, m.err
	}
	return &domain.GenerationResult{URL: "data:image/png;base64,AAAA", Prompt: prompt}, nil
}

type mockHTTPClient struct {
	data  []byte
	err   error
	calls int
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	return m.data, m.err
}

type mockReader struct {
	data []byte
	err  error
	uris []string
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.uris = append(m.uris, uri)
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

type mockCache struct {
	data map[string]any
}

func (m *mockCache) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	m.data[key] = value
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// recordingGenerator は受け取った ctx の期限を記録します。
type recordingGenerator struct {
	deadlines []bool
}

func (m *recordingGenerator) record(ctx context.Context) (*domain.GenerationResult, error) {
	_, ok := ctx.Deadline()
	m.deadlines = append(m.deadlines, ok)
	return &domain.GenerationResult{URL: "data:image/png;base64,AAAA"}, nil
}

func (m *recordingGenerator) GenerateCharacterImage(ctx context.Context, profile domain.CharacterProfile, category domain.Category) (*domain.GenerationResult, error) {
	return m.record(ctx)
}

func (m *recordingGenerator) GenerateSetImage(ctx context.Context, profile domain.SetProfile, category domain.Category) (*domain.GenerationResult, error) {
	return m.record(ctx)
}

func (m *recordingGenerator) GenerateCompositeImage(ctx context.Context, character domain.CharacterProfile, set domain.SetProfile, cfg domain.CompositeConfig) (*domain.GenerationResult, error) {
	return m.record(ctx)
}
