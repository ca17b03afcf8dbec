package server

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"github.com/shouni/canon-forge-kit/pkg/domain"
)

type mockGenerator struct {
	err error
}

func (m *mockGenerator) GenerateCharacterImage(ctx context.Context, p domain.CharacterProfile, c domain.Category) (*domain.GenerationResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.GenerationResult{URL: "https://img/" + string(c), Prompt: "character " + p.Name}, nil
}

func (m *mockGenerator) GenerateSetImage(ctx context.Context, p domain.SetProfile, c domain.Category) (*domain.GenerationResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.GenerationResult{URL: "https://img/" + string(c), Prompt: "set " + p.Name}, nil
}

func (m *mockGenerator) GenerateCompositeImage(ctx context.Context, ch domain.CharacterProfile, set domain.SetProfile, cfg domain.CompositeConfig) (*domain.GenerationResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.GenerationResult{URL: "https://img/composite", Prompt: cfg.Action}, nil
}

type memoryRepo struct {
	mu    sync.Mutex
	chars []domain.CharacterProfile
	sets  []domain.SetProfile
	fail  bool
}

func (m *memoryRepo) LoadCharacters(ctx context.Context) []domain.CharacterProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CharacterProfile{}, m.chars...)
}

func (m *memoryRepo) LoadSets(ctx context.Context) []domain.SetProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SetProfile{}, m.sets...)
}

func (m *memoryRepo) FindCharacter(ctx context.Context, id string) (domain.CharacterProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lo.Find(m.chars, func(p domain.CharacterProfile) bool { return p.ID == id })
}

func (m *memoryRepo) FindSet(ctx context.Context, id string) (domain.SetProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lo.Find(m.sets, func(p domain.SetProfile) bool { return p.ID == id })
}

func (m *memoryRepo) SaveCharacter(ctx context.Context, p domain.CharacterProfile) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false
	}
	m.chars = append(lo.Reject(m.chars, func(c domain.CharacterProfile, _ int) bool { return c.ID == p.ID }), p)
	return true
}

func (m *memoryRepo) SaveSet(ctx context.Context, p domain.SetProfile) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false
	}
	m.sets = append(lo.Reject(m.sets, func(c domain.SetProfile, _ int) bool { return c.ID == p.ID }), p)
	return true
}

func (m *memoryRepo) DeleteCharacter(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false
	}
	m.chars = lo.Reject(m.chars, func(c domain.CharacterProfile, _ int) bool { return c.ID == id })
	return true
}

func (m *memoryRepo) DeleteSet(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false
	}
	m.sets = lo.Reject(m.sets, func(c domain.SetProfile, _ int) bool { return c.ID == id })
	return true
}
