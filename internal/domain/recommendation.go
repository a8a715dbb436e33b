package domain

// AestheticDirection is the fixed-shape output of the aesthetic
// generator: a named direction, a description, and the element that
// makes it memorable.
type AestheticDirection struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Differentiation string `json:"differentiation"`
}

// Stack is the implementation-stack hint for a target platform.
type Stack struct {
	DefaultFramework     string `json:"default_framework"`
	AlternativeFramework string `json:"alternative_framework"`
	Styling              string `json:"styling"`
	UILibrary            string `json:"ui_library"`
}

// Recommendation is the composite built from five independent domain
// searches, one aesthetic generator call, and the platform stack
// lookup. Read-only after construction; individual facets may be empty
// when their sub-search returned no results.
type Recommendation struct {
	Product      ScoredResult       `json:"product"`
	Style        ScoredResult       `json:"style"`
	Color        ScoredResult       `json:"color"`
	Typography   ScoredResult       `json:"typography"`
	Aesthetic    AestheticDirection `json:"aesthetic"`
	UXGuidelines []ScoredResult     `json:"ux_guidelines"`
	Stack        Stack              `json:"stack"`
}
