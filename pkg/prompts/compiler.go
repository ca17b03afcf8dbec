package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

const (
	characterStyleDirective = "Style: High-fidelity cinematic photography. Strict facial and anatomical consistency."
	setStyleDirective       = "Style: High-fidelity architectural photography."
	noExtraActors           = "None"
)

// CompileCharacterPrompt はキャラクター情報とカテゴリからプロンプトとアスペクト比を組み立てます。
// 空の属性も省略せず、そのまま空文字として埋め込むのだ。
func CompileCharacterPrompt(p domain.CharacterProfile, c domain.Category) (string, string) {
	tpl := CharacterTemplate(c)

	var sb strings.Builder
	sb.WriteString(AestheticCore)
	sb.WriteString("\n")
	sb.WriteString("Subject: Character ")
	writeIdentity(&sb, p)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Persona: %s %s Aesthetic: %s.\n", p.Personality, p.Backstory, p.Aesthetic)
	fmt.Fprintf(&sb, "Scene: %s\n", tpl)
	sb.WriteString(characterStyleDirective)

	ratio := domain.AspectWide
	if c == domain.CategoryBodyReverse {
		ratio = domain.AspectPortrait
	}
	return sb.String(), ratio
}

// CompileSetPrompt はセット情報とカテゴリからプロンプトを組み立てます。アスペクト比は常に 16:9 です。
func CompileSetPrompt(p domain.SetProfile, c domain.Category) (string, string) {
	tpl := SetTemplate(c)

	var sb strings.Builder
	sb.WriteString(AestheticCore)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Environment: %s, a %s location.\n", p.Name, p.LocationType)
	fmt.Fprintf(&sb, "Aesthetic: %s. Ambiance: %s.\n", p.Style, p.Ambiance)
	fmt.Fprintf(&sb, "Lighting Specs: %s. Details: %s.\n", p.Lighting, p.Details)
	fmt.Fprintf(&sb, "Composition: %s\n", tpl)
	sb.WriteString(setStyleDirective)

	return sb.String(), domain.AspectWide
}

// CompileCompositePrompt はキャラクターをセットに配置する合成プロンプトを組み立てます。
// キャラクターの外見は毎回そのまま繰り返し、顔の一致を必須として明記するのだ。
func CompileCompositePrompt(ch domain.CharacterProfile, set domain.SetProfile, cfg domain.CompositeConfig) (string, string) {
	extras := cfg.ExtraActors
	if strings.TrimSpace(extras) == "" {
		extras = noExtraActors
	}
	style := cfg.CompositionStyle
	if strings.TrimSpace(style) == "" {
		style = domain.DefaultCompositionStyle
	}

	var sb strings.Builder
	sb.WriteString(AestheticCore)
	sb.WriteString("\n")
	sb.WriteString("Scene Composition: Merge Character and Environment seamlessly.\n")
	sb.WriteString("Character Visual Identity (MANDATORY): ")
	writeIdentity(&sb, ch)
	sb.WriteString("\n")
	sb.WriteString("Note: The face must match exactly with the character's core facial traits.\n\n")

	fmt.Fprintf(&sb, "Environment Context: %s, %s, style %s, %s lighting. %s.\n\n",
		set.Name, set.LocationType, set.Style, set.Lighting, set.Details)

	fmt.Fprintf(&sb, "Action: %s.\n", cfg.Action)
	fmt.Fprintf(&sb, "Additional Details/Actors: %s.\n\n", extras)

	fmt.Fprintf(&sb, "Integration Logic: Place the character physically in the environment. "+
		"Match local lighting, shadows, and color bounce from the %s.\n", set.Lighting)
	fmt.Fprintf(&sb, "Atmospheric depth should match the %s.\n\n", set.Ambiance)

	fmt.Fprintf(&sb, "Style: %s.", style)

	return sb.String(), domain.AspectWide
}

// writeIdentity はキャラクターの外見を固定の文型で書き出します。
func writeIdentity(sb *strings.Builder, p domain.CharacterProfile) {
	fmt.Fprintf(sb, "%s, %sy/o %s, %s build, %s skin, %s eyes, %s hair. %s.",
		p.Name, p.Age, p.Gender, p.Build, p.SkinTone, p.Eyes, p.Hair, p.DistinctiveFeatures)
}
