package prompts

import (
	"fmt"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// AestheticCore はすべてのプロンプトの先頭に付与される共通の画風定義です。
const AestheticCore = "Primary aesthetic: Urban spiritual realism.\n" +
	"Visual Style: Indigo, cyan, ultramarine shadows with warm amber and fuchsia accents.\n" +
	"Lighting: Deep, painterly precision, subconscious mood, subtle specular reflections on surfaces, soft organic scattering.\n" +
	"Cinematography: 35mm prime equivalent, shallow depth of field with bokeh, slight film grain, high fidelity textures.\n" +
	"Mood: Serenity mixed with anticipation, cinematic lighting (5200K)."

var characterTemplates = map[domain.Category]string{
	domain.CategoryHeadshot: "Extreme close-up cinematic headshot, neutral expression, microscopic skin texture and iris detail, " +
		"neutral studio background, soft key lighting, character focus.",
	domain.CategoryBodyReverse: "Full body anatomical character reference sheet showing 3 distinct poses side-by-side: " +
		"Front view, 3/4 profile view, and strict Profile view. The character is wearing character-appropriate minimal athletic briefs " +
		"to clearly define musculature, skeletal structure, and defining physical traits. " +
		"Clinical but cinematic lighting, clean simple studio background, high-detail skin rendering.",
	domain.CategoryWardrobe: "Full body reference in iconic character wardrobe, urban spiritual style clothing, " +
		"visible fabric textures (cotton, canvas), standing in a softly lit nocturnal street under overpass.",
	domain.CategoryAction: "Action pose reference, character in mid-motion, cinematic dynamic energy, " +
		"fluid handheld camera perspective, interacting with urban environment.",
	domain.CategoryExpression: "Facial expression sheet showing range of 3 emotions: calm, determination, and subtle smile. " +
		"Close-up portraits.",
	domain.CategoryNeutralSheet: "Professional character design sheet, neutral flat studio lighting, solid light grey background, " +
		"no shadows, full body front view, high-fidelity details, clearly visible features and colors without cinematic bloom.",
}

var setTemplates = map[domain.Category]string{
	domain.CategoryWide: "Establishing wide-angle landscape shot of the environment, capturing the full scale and architecture, " +
		"deep depth of field, atmospheric perspective.",
	domain.CategoryMedium: "Medium shot focusing on the primary acting area or central hub of the set, " +
		"showing functional elements and spatial relationships.",
	domain.CategoryPOV: "Immersive point-of-view shot from the perspective of someone standing in the space, eye-level, " +
		"capturing the immediate surroundings and tactile atmosphere.",
	domain.CategoryDetail: "Macro detail shot focusing on specific textures, props, or unique environmental elements " +
		"(e.g., moss on concrete, glowing circuitry, rain on glass).",
	domain.CategoryPlan: "Top-down architectural plan view of the set, schematic-like but visually rich, " +
		"showing layout and furniture/environmental placement.",
	domain.CategoryLighting: "Abstract lighting and ambiance study focusing purely on how light interacts with the space, " +
		"emphasizing shadows, glows, and the color palette.",
}

// CharacterTemplate はキャラクター用カテゴリのテンプレート文を返します。
// 未知のカテゴリはプログラムの誤りなので panic するのだ。
func CharacterTemplate(c domain.Category) string {
	tpl, ok := characterTemplates[c]
	if !ok {
		panic(fmt.Sprintf("prompts: unknown character category %q", c))
	}
	return tpl
}

// SetTemplate はセット用カテゴリのテンプレート文を返します。
func SetTemplate(c domain.Category) string {
	tpl, ok := setTemplates[c]
	if !ok {
		panic(fmt.Sprintf("prompts: unknown set category %q", c))
	}
	return tpl
}
