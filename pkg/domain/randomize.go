package domain

import "github.com/samber/lo"

var (
	characterNames    = []string{"Silas Thorne", "Kora Vance", "Malachi Quinn", "Lyra Skye", "Dante Rios"}
	characterAges     = []string{"21", "28", "35", "42", "56"}
	characterBuilds   = []string{"Lithe & Graceful", "Broad & Athletic", "Wiry & Powerful", "Compact & Agile"}
	characterEyes     = []string{"Glowing Indigo", "Cybernetic Emerald", "Deep Obsidian", "Mismatched Amber"}
	characterHair     = []string{"Braided coils", "Silver-white fade", "Neon blue undercut", "Long flowing black"}
	characterSkin     = []string{"Pale ivory", "Deep mahogany", "Warm olive", "Rich bronze"}
	characterFeatures = []string{"Faint neck tattoo", "Mechanical right eye", "Surgical scar on temple", "Clockwork left hand"}

	indoorSetNames = []string{
		"Neon Cyber-Cafe",
		"Subterranean Shrine",
		"Luxury Sky-Loft",
		"Derelict Laboratory",
		"Alien Spaceship Bridge",
		"High-Tech Monastery",
	}
	outdoorSetNames = []string{
		"Floating Rain-District",
		"Abandoned Sprawl-Park",
		"Ritual Rooftop",
		"Monolithic Overpass",
		"Magma-Side Industrial Outpost",
	}
	setLightings = []string{
		"Cold cyan fluorescents with warm back-glow",
		"Natural filtered moonlight through smog",
		"Dashing strobe pulses of amber",
		"Eternal dusk soft indigo wash",
		"Bioluminescent pulsing organic light",
	}
	setAmbiances = []string{
		"Thrumming industrial silence",
		"Hushed spiritual reverence",
		"Chaotic urban bustle",
		"Melancholic solitude",
		"Tense high-tech hum",
	}

	compositeActions = []string{
		"Actively piloting the ship while sitting in the captain's seat",
		"Meditating on a ritual rooftop as rain falls upwards",
		"Engaged in a tense negotiation with a shadowy figure",
		"Repairing a complex mechanical prosthetic in the glow of a neon sign",
		"Standing stoically while wind whips their cloak against a monolithic sky",
	}
	compositeActors = []string{
		"A hovering security drone",
		"Two hooded acolytes in the background",
		"A translucent holographic guide",
		"None",
	}
)

const (
	randomPersonality = "Stoic wanderer with a sense of purpose."
	randomSetDetails  = "Rain-slicked surfaces, floating holographic talismans, intricate brutalist architecture."
)

// RandomizeCharacter はプールから属性を選び直し、新しいシードを割り当てます。
// ID と Backstory は引き継ぐのだ。
func RandomizeCharacter(p CharacterProfile) CharacterProfile {
	p.Name = lo.Sample(characterNames)
	p.Age = lo.Sample(characterAges)
	p.Build = lo.Sample(characterBuilds)
	p.Eyes = lo.Sample(characterEyes)
	p.Hair = lo.Sample(characterHair)
	p.SkinTone = lo.Sample(characterSkin)
	p.DistinctiveFeatures = lo.Sample(characterFeatures)
	p.Personality = randomPersonality
	p.Seed = GenerateSeed()
	if p.ID == "" {
		p.ID = NewID()
	}
	return p
}

// RandomizeSet は屋内外の指定を保ったまま、それに合う名前と照明・雰囲気を選びます。
// 不正な LocationType は Indoor に戻すのだ。
func RandomizeSet(p SetProfile) SetProfile {
	if !p.LocationType.IsValid() {
		p.LocationType = LocationIndoor
	}
	p.Name = lo.Sample(lo.Ternary(p.LocationType == LocationIndoor, indoorSetNames, outdoorSetNames))
	p.Lighting = lo.Sample(setLightings)
	p.Ambiance = lo.Sample(setAmbiances)
	p.Style = DefaultAesthetic
	p.Details = randomSetDetails
	p.Seed = GenerateSeed()
	if p.ID == "" {
		p.ID = NewID()
	}
	return p
}

// RandomizeComposite は演出とエキストラを選び直します。参照先と画風はそのまま。
func RandomizeComposite(c CompositeConfig) CompositeConfig {
	c.Action = lo.Sample(compositeActions)
	c.ExtraActors = lo.Sample(compositeActors)
	return c
}
