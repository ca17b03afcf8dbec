package workspace

import (
	"context"

	"github.com/samber/lo"
	"github.com/shouni/canon-forge-kit/pkg/domain"
)

type mockGenerator struct {
	characterFunc func(ctx context.Context, p domain.CharacterProfile, c domain.Category) (*domain.GenerationResult, error)
	setFunc       func(ctx context.Context, p domain.SetProfile, c domain.Category) (*domain.GenerationResult, error)
	compositeFunc func(ctx context.Context, ch domain.CharacterProfile, set domain.SetProfile, cfg domain.CompositeConfig) (*domain.GenerationResult, error)
}

func (m *mockGenerator) GenerateCharacterImage(ctx context.Context, p domain.CharacterProfile, c domain.Category) (*domain.GenerationResult, error) {
	if m.characterFunc != nil {
		return m.characterFunc(ctx, p, c)
	}
	return &domain.GenerationResult{URL: "https://img/" + string(c), Prompt: "character " + p.Name}, nil
}

func (m *mockGenerator) GenerateSetImage(ctx context.Context, p domain.SetProfile, c domain.Category) (*domain.GenerationResult, error) {
	if m.setFunc != nil {
		return m.setFunc(ctx, p, c)
	}
	return &domain.GenerationResult{URL: "https://img/" + string(c), Prompt: "set " + p.Name}, nil
}

func (m *mockGenerator) GenerateCompositeImage(ctx context.Context, ch domain.CharacterProfile, set domain.SetProfile, cfg domain.CompositeConfig) (*domain.GenerationResult, error) {
	if m.compositeFunc != nil {
		return m.compositeFunc(ctx, ch, set, cfg)
	}
	return &domain.GenerationResult{URL: "https://img/composite", Prompt: cfg.Action}, nil
}

type mockRepo struct {
	chars []domain.CharacterProfile
	sets  []domain.SetProfile
	fail  bool
}

func (m *mockRepo) LoadCharacters(ctx context.Context) []domain.CharacterProfile {
	return append([]domain.CharacterProfile{}, m.chars...)
}

func (m *mockRepo) LoadSets(ctx context.Context) []domain.SetProfile {
	return append([]domain.SetProfile{}, m.sets...)
}

func (m *mockRepo) FindCharacter(ctx context.Context, id string) (domain.CharacterProfile, bool) {
	return lo.Find(m.chars, func(p domain.CharacterProfile) bool { return p.ID == id })
}

func (m *mockRepo) FindSet(ctx context.Context, id string) (domain.SetProfile, bool) {
	return lo.Find(m.sets, func(p domain.SetProfile) bool { return p.ID == id })
}

func (m *mockRepo) SaveCharacter(ctx context.Context, p domain.CharacterProfile) bool {
	if m.fail {
		return false
	}
	m.chars = append(lo.Reject(m.chars, func(c domain.CharacterProfile, _ int) bool { return c.ID == p.ID }), p)
	return true
}

func (m *mockRepo) SaveSet(ctx context.Context, p domain.SetProfile) bool {
	if m.fail {
		return false
	}
	m.sets = append(lo.Reject(m.sets, func(c domain.SetProfile, _ int) bool { return c.ID == p.ID }), p)
	return true
}

func (m *mockRepo) DeleteCharacter(ctx context.Context, id string) bool {
	if m.fail {
		return false
	}
	m.chars = lo.Reject(m.chars, func(c domain.CharacterProfile, _ int) bool { return c.ID == id })
	return true
}

func (m *mockRepo) DeleteSet(ctx context.Context, id string) bool {
	if m.fail {
		return false
	}
	m.sets = lo.Reject(m.sets, func(c domain.SetProfile, _ int) bool { return c.ID == id })
	return true
}
