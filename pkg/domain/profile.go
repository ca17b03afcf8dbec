package domain

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// MaxSeed はプロバイダーが受け付けるシード値の上限です。
const MaxSeed = 2147483647

const (
	DefaultGender           = "Non-binary"
	DefaultAesthetic        = "Urban Spiritual Realism"
	DefaultCompositionStyle = "High-fidelity cinematic shot"
)

// LocationType はセットが屋内か屋外かを表します。
type LocationType string

const (
	LocationIndoor  LocationType = "Indoor"
	LocationOutdoor LocationType = "Outdoor"
)

// IsValid は既知の LocationType かどうかを返します。
func (l LocationType) IsValid() bool {
	return l == LocationIndoor || l == LocationOutdoor
}

// CharacterProfile はキャラクターの外見と人物像を保持します。
// Seed は生成時に一度だけ割り当てられ、ランダム化でのみ更新されるのだ。
type CharacterProfile struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Age                 string `json:"age"`
	Gender              string `json:"gender"`
	Build               string `json:"build"`
	Eyes                string `json:"eyes"`
	Hair                string `json:"hair"`
	SkinTone            string `json:"skinTone"`
	DistinctiveFeatures string `json:"distinctiveFeatures"`
	Personality         string `json:"personality"`
	Backstory           string `json:"backstory"`
	Aesthetic           string `json:"aesthetic"`
	Seed                int64  `json:"seed"` // DB保存等のために広い型を維持
}

// SetProfile は舞台となる環境の定義を保持します。
type SetProfile struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	LocationType LocationType `json:"locationType"`
	Lighting     string       `json:"lighting"`
	Ambiance     string       `json:"ambiance"`
	Style        string       `json:"style"`
	Details      string       `json:"details"`
	Seed         int64        `json:"seed"`
}

// CompositeConfig は合成リクエスト1回分の演出指定です。永続化はしません。
type CompositeConfig struct {
	CharacterID      string `json:"characterId"`
	SetID            string `json:"setId"`
	Action           string `json:"action"`
	ExtraActors      string `json:"extraActors"`
	CompositionStyle string `json:"compositionStyle"`
}

// GenerateSeed は [0, MaxSeed) の新しいシード値を返します。
func GenerateSeed() int64 {
	return rand.Int64N(MaxSeed)
}

// NewID は新しいプロファイル識別子を返します。
func NewID() string {
	return uuid.NewString()
}

// NewCharacterProfile はデフォルト値を埋めた新規キャラクターを生成します。
func NewCharacterProfile() CharacterProfile {
	return CharacterProfile{
		ID:        NewID(),
		Gender:    DefaultGender,
		Aesthetic: DefaultAesthetic,
		Seed:      GenerateSeed(),
	}
}

// NewSetProfile はデフォルト値を埋めた新規セットを生成します。
func NewSetProfile() SetProfile {
	return SetProfile{
		ID:           NewID(),
		LocationType: LocationIndoor,
		Seed:         GenerateSeed(),
	}
}

// NewCompositeConfig は指定キャラクターとセットを参照する合成設定を生成します。
func NewCompositeConfig(characterID, setID string) CompositeConfig {
	return CompositeConfig{
		CharacterID:      characterID,
		SetID:            setID,
		CompositionStyle: DefaultCompositionStyle,
	}
}
