package domain

// DefaultDomain is returned by the router when no keyword matches.
const DefaultDomain = "style"

// Config describes one searchable domain: its corpus file, the fields
// indexed for ranking, the fields projected into result payloads, and
// the keywords used for domain auto-detection.
type Config struct {
	name         string
	file         string
	searchFields []string
	outputFields []string
	keywords     []string
}

// Name returns the domain name.
func (c Config) Name() string { return c.name }

// File returns the corpus file name within the corpus directory.
func (c Config) File() string { return c.file }

// SearchFields returns the fields concatenated into the indexed document.
func (c Config) SearchFields() []string { return c.searchFields }

// OutputFields returns the fields projected into result payloads.
func (c Config) OutputFields() []string { return c.outputFields }

// Keywords returns the router keywords for this domain.
func (c Config) Keywords() []string { return c.keywords }

// domains is the fixed domain table. Order matters: the router breaks
// ties by declaration order.
var domains = []Config{
	{
		name:         "color",
		file:         "colors.yaml",
		searchFields: []string{"name", "category", "product_type", "keywords", "mood"},
		outputFields: []string{
			"name", "category", "primary", "secondary", "accent",
			"background", "surface", "text", "text_muted", "border",
			"keywords", "mood", "best_for", "css_vars",
		},
		keywords: []string{"color", "palette", "hex", "#", "rgb", "hsl", "主题色", "配色"},
	},
	{
		name:         "typography",
		file:         "typography.yaml",
		searchFields: []string{"name", "category", "mood", "heading_font", "body_font", "keywords"},
		outputFields: []string{
			"name", "category", "heading_font", "body_font", "accent_font",
			"mood", "keywords", "best_for", "google_fonts_url", "css_import",
			"tailwind_config", "notes",
		},
		keywords: []string{"font", "type", "typography", "heading", "body", "serif", "sans", "字体", "排版"},
	},
	{
		name:         "component",
		file:         "components.yaml",
		searchFields: []string{"name", "type", "keywords", "use_case", "complexity"},
		outputFields: []string{
			"name", "type", "description", "keywords", "use_case",
			"complexity", "accessibility", "responsive", "frameworks",
			"code_example", "props",
		},
		keywords: []string{"component", "button", "modal", "navbar", "card", "form", "组件", "按钮"},
	},
	{
		name:         "layout",
		file:         "layouts.yaml",
		searchFields: []string{"name", "type", "keywords", "best_for"},
		outputFields: []string{
			"name", "type", "description", "keywords", "structure",
			"responsive", "best_for", "css_grid",
		},
		keywords: []string{"layout", "grid", "flex", "structure", "布局", "网格"},
	},
	{
		name:         "animation",
		file:         "animations.yaml",
		searchFields: []string{"name", "type", "keywords", "effect"},
		outputFields: []string{
			"name", "type", "description", "keywords", "css_code",
			"duration", "easing", "best_for", "accessibility",
		},
		keywords: []string{"animation", "transition", "motion", "effect", "动画", "过渡", "特效"},
	},
	{
		name:         "chart",
		file:         "charts.yaml",
		searchFields: []string{"name", "data_type", "keywords", "best_for"},
		outputFields: []string{
			"name", "data_type", "description", "keywords", "library",
			"accessibility", "interactive", "example_code",
		},
		keywords: []string{"chart", "graph", "visualization", "trend", "data", "图表", "可视化", "数据"},
	},
	{
		name:         "ux",
		file:         "ux_guidelines.yaml",
		searchFields: []string{"category", "topic", "keywords", "platform"},
		outputFields: []string{
			"category", "topic", "description", "do", "dont",
			"code_good", "code_bad", "severity", "platform", "references",
		},
		keywords: []string{"ux", "usability", "accessibility", "wcag", "experience", "体验", "可用性", "无障碍"},
	},
	{
		name:         "product",
		file:         "products.yaml",
		searchFields: []string{"product_type", "keywords", "industry", "target_audience"},
		outputFields: []string{
			"product_type", "keywords", "industry", "recommended_style",
			"color_strategy", "typography_strategy", "layout_patterns",
			"key_features", "anti_patterns",
		},
		keywords: []string{"saas", "ecommerce", "fintech", "healthcare", "portfolio", "dashboard", "产品"},
	},
	{
		name:         "style",
		file:         "styles.yaml",
		searchFields: []string{"name", "category", "keywords", "best_for", "tags"},
		outputFields: []string{
			"name", "category", "keywords", "description", "primary_colors",
			"effects", "animations", "best_for", "complexity", "accessibility",
			"performance", "frameworks", "example_prompt",
		},
		keywords: []string{"style", "design", "ui", "minimalism", "glassmorphism", "brutalism", "风格", "设计"},
	},
	{
		name:         "stack",
		file:         "stacks.yaml",
		searchFields: []string{"stack", "category", "keywords", "topic"},
		outputFields: []string{
			"stack", "category", "topic", "guideline", "do", "dont",
			"code_example", "references", "severity",
		},
		keywords: []string{"react", "vue", "nextjs", "tailwind", "framework", "框架"},
	},
}

// Domains returns the domain table in declaration order.
func Domains() []Config { return domains }

// DomainNames returns the domain names in declaration order.
func DomainNames() []string {
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = d.name
	}
	return names
}

// LookupDomain returns the configuration for a domain name.
func LookupDomain(name string) (Config, bool) {
	for _, d := range domains {
		if d.name == name {
			return d, true
		}
	}
	return Config{}, false
}
