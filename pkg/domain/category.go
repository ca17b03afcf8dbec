package domain

import "github.com/samber/lo"

// Category は参照画像の種別タグです。
type Category string

// キャラクター用カテゴリ
const (
	CategoryHeadshot     Category = "HEADSHOT"
	CategoryBodyReverse  Category = "BODY_REVERSE"
	CategoryWardrobe     Category = "WARDROBE"
	CategoryAction       Category = "ACTION"
	CategoryExpression   Category = "EXPRESSION"
	CategoryNeutralSheet Category = "NEUTRAL_SHEET"
)

// セット用カテゴリ
const (
	CategoryWide     Category = "WIDE"
	CategoryMedium   Category = "MEDIUM"
	CategoryPOV      Category = "POV"
	CategoryDetail   Category = "DETAIL"
	CategoryPlan     Category = "PLAN"
	CategoryLighting Category = "LIGHTING"
)

// CategoryComposite は合成画像に付与するタグです。テンプレートは持ちません。
const CategoryComposite Category = "CINEMATIC_COMPOSITE"

// CharacterCategories は表示順に並べたキャラクター用カテゴリです。
var CharacterCategories = []Category{
	CategoryHeadshot,
	CategoryBodyReverse,
	CategoryWardrobe,
	CategoryAction,
	CategoryExpression,
	CategoryNeutralSheet,
}

// SetCategories は表示順に並べたセット用カテゴリです。
var SetCategories = []Category{
	CategoryWide,
	CategoryMedium,
	CategoryPOV,
	CategoryDetail,
	CategoryPlan,
	CategoryLighting,
}

// IsCharacter はキャラクター用カテゴリかどうかを返します。
func (c Category) IsCharacter() bool {
	return lo.Contains(CharacterCategories, c)
}

// IsSet はセット用カテゴリかどうかを返します。
func (c Category) IsSet() bool {
	return lo.Contains(SetCategories, c)
}
