package workspace

import (
	"slices"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// State は編集セッションの状態です。Workspace.Snapshot で複製を受け取ります。
type State struct {
	Character       domain.CharacterProfile   `json:"character"`
	Set             domain.SetProfile         `json:"set"`
	Composite       domain.CompositeConfig    `json:"composite"`
	CharacterImages []domain.ReferenceImage   `json:"characterImages"`
	SetImages       []domain.ReferenceImage   `json:"setImages"`
	CompositeImages []domain.ReferenceImage   `json:"compositeImages"`
	SavedCharacters []domain.CharacterProfile `json:"savedCharacters"`
	SavedSets       []domain.SetProfile       `json:"savedSets"`
	Generating      bool                      `json:"generating"`
	AuthRequired    bool                      `json:"authRequired"`
	LastError       string                    `json:"lastError,omitempty"`
}

// NewState は新規プロファイルで初期化した状態を返します。
func NewState() State {
	ch := domain.NewCharacterProfile()
	set := domain.NewSetProfile()
	return State{
		Character:       ch,
		Set:             set,
		Composite:       domain.NewCompositeConfig(ch.ID, set.ID),
		CharacterImages: []domain.ReferenceImage{},
		SetImages:       []domain.ReferenceImage{},
		CompositeImages: []domain.ReferenceImage{},
		SavedCharacters: []domain.CharacterProfile{},
		SavedSets:       []domain.SetProfile{},
	}
}

func (s State) clone() State {
	s.CharacterImages = slices.Clone(s.CharacterImages)
	s.SetImages = slices.Clone(s.SetImages)
	s.CompositeImages = slices.Clone(s.CompositeImages)
	s.SavedCharacters = slices.Clone(s.SavedCharacters)
	s.SavedSets = slices.Clone(s.SavedSets)
	return s
}
