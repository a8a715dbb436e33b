package aesthetic

import "github.com/kailas-cloud/designdex/internal/domain"

// presets are the built-in aesthetic directions. Each one is a complete
// direction the generator can hand out as-is; the point of the catalog
// is to steer consumers away from generic, interchangeable visuals.
var presets = []domain.AestheticDirection{
	{
		Name:            "brutalist_minimal",
		Description:     "Raw minimalism: rough, direct, undecorated",
		Differentiation: "Heavy type, monochrome contrast, zero ornament",
	},
	{
		Name:            "japanese_zen",
		Description:     "Quiet balance built on emptiness and restraint",
		Differentiation: "Generous negative space, muted ink tones, single accent",
	},
	{
		Name:            "scandinavian",
		Description:     "Functional warmth with light, honest materials",
		Differentiation: "Pale woods, soft grays, practical geometry",
	},
	{
		Name:            "swiss_international",
		Description:     "Grid-first typographic order",
		Differentiation: "Strict columns, flush-left type, primary red",
	},
	{
		Name:            "maximalist_chaos",
		Description:     "Maximal visual impact, deliberately overloaded",
		Differentiation: "Saturated clashes, layered collage, dense composition",
	},
	{
		Name:            "memphis_group",
		Description:     "Postmodern play with pattern and primary shapes",
		Differentiation: "Squiggles, terrazzo, clashing pastels",
	},
	{
		Name:            "pop_art",
		Description:     "Loud, commercial, comic-book bold",
		Differentiation: "Halftone dots, thick outlines, billboard color",
	},
	{
		Name:            "vaporwave",
		Description:     "Retro digital nostalgia",
		Differentiation: "Purple-pink gradients, retro grids, statuary motifs",
	},
	{
		Name:            "retro_futurism",
		Description:     "Yesterday's tomorrow, optimistic and streamlined",
		Differentiation: "Atomic patterns, streamlined forms, vintage tech",
	},
	{
		Name:            "cyberpunk",
		Description:     "High tech, low life",
		Differentiation: "Neon glow, glitch effects, digital grain",
	},
	{
		Name:            "art_deco",
		Description:     "Geometric luxury of the machine age",
		Differentiation: "Gold sunbursts, stepped forms, symmetrical ornament",
	},
	{
		Name:            "organic_natural",
		Description:     "Earthy and hand-touched",
		Differentiation: "Organic curves, earth tones, natural texture",
	},
	{
		Name:            "biophilic",
		Description:     "Design that behaves like a living system",
		Differentiation: "Leaf structures, moss greens, daylight palettes",
	},
	{
		Name:            "luxury_refined",
		Description:     "Elegance and quality over volume",
		Differentiation: "Gold accents, refined serifs, generous whitespace",
	},
	{
		Name:            "french_elegance",
		Description:     "Understated couture sensibility",
		Differentiation: "Hairline rules, cream and noir, editorial serifs",
	},
	{
		Name:            "playful_toy",
		Description:     "Bright, rounded, toy-like friendliness",
		Differentiation: "Bright colors, rounded shapes, playful icons",
	},
	{
		Name:            "kawaii",
		Description:     "Cute pushed to a system",
		Differentiation: "Blush pinks, mascot faces, bubble type",
	},
	{
		Name:            "neon_pop",
		Description:     "Nightlife energy in interface form",
		Differentiation: "Electric accents on near-black, glow on hover",
	},
	{
		Name:            "editorial_magazine",
		Description:     "Print-grade editorial confidence",
		Differentiation: "Bold headlines, asymmetric layouts, pull quotes",
	},
	{
		Name:            "typography_centric",
		Description:     "Type is the interface",
		Differentiation: "Oversized wordmarks, variable weights, no imagery",
	},
	{
		Name:            "raw_industrial",
		Description:     "Unfinished surfaces as a feature",
		Differentiation: "Exposed grids, concrete grays, stencil labels",
	},
	{
		Name:            "utilitarian",
		Description:     "Every pixel earns its place",
		Differentiation: "Dense tables, monospace details, zero decoration",
	},
	{
		Name:            "soft_pastel",
		Description:     "Pastel softness and dreamlike calm",
		Differentiation: "Soft pastels, rounded forms, dreamy atmosphere",
	},
	{
		Name:            "dreamy",
		Description:     "Blurred edges between surfaces",
		Differentiation: "Gradient mists, floating cards, slow easing",
	},
	{
		Name:            "glass_morphism",
		Description:     "Layered translucency over depth",
		Differentiation: "Frosted panels, backdrop blur, thin light borders",
	},
}
