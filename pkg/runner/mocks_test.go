package runner

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/generator"
)

type mockGenerator struct {
	mu        sync.Mutex
	calls     []domain.Category
	seeds     []int64
	failOn    map[domain.Category]error
	setCalled int
}

func (m *mockGenerator) record(c domain.Category, seed int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
	m.seeds = append(m.seeds, seed)
	return m.failOn[c]
}

func (m *mockGenerator) GenerateCharacterImage(ctx context.Context, p domain.CharacterProfile, c domain.Category) (*domain.GenerationResult, error) {
	if err := m.record(c, p.Seed); err != nil {
		return nil, err
	}
	return &domain.GenerationResult{URL: "https://img/" + string(c), Prompt: string(c)}, nil
}

func (m *mockGenerator) GenerateSetImage(ctx context.Context, p domain.SetProfile, c domain.Category) (*domain.GenerationResult, error) {
	m.mu.Lock()
	m.setCalled++
	m.mu.Unlock()
	if err := m.record(c, p.Seed); err != nil {
		return nil, err
	}
	return &domain.GenerationResult{URL: "https://img/" + string(c), Prompt: string(c)}, nil
}

func (m *mockGenerator) GenerateCompositeImage(ctx context.Context, ch domain.CharacterProfile, set domain.SetProfile, cfg domain.CompositeConfig) (*domain.GenerationResult, error) {
	return nil, generator.ErrNoResult
}

type mockResolver struct {
	img *generator.ResolvedImage
	err error
}

func (m *mockResolver) Resolve(ctx context.Context, locator string) (*generator.ResolvedImage, error) {
	return m.img, m.err
}

type mockWriter struct {
	files map[string][]byte
	types map[string]string
	err   error
}

func newMockWriter() *mockWriter {
	return &mockWriter{files: map[string][]byte{}, types: map[string]string{}}
}

func (m *mockWriter) Write(ctx context.Context, path string, r io.Reader, contentType string) error {
	if m.err != nil {
		return m.err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	m.files[path] = buf.Bytes()
	m.types[path] = contentType
	return nil
}
