package recommend

import "github.com/kailas-cloud/designdex/internal/domain"

// stackTable maps a target platform to its implementation-stack hint.
// Unknown platforms fall back to the web row.
var stackTable = map[string]domain.Stack{
	"web": {
		DefaultFramework:     "nextjs",
		AlternativeFramework: "react",
		Styling:              "tailwindcss",
		UILibrary:            "shadcn-ui",
	},
	"mobile": {
		DefaultFramework:     "react-native",
		AlternativeFramework: "flutter",
		Styling:              "styled-components",
		UILibrary:            "react-native-paper",
	},
	"desktop": {
		DefaultFramework:     "electron",
		AlternativeFramework: "tauri",
		Styling:              "css",
		UILibrary:            "mui",
	},
}

// StackFor returns the stack hint for a platform.
func StackFor(platform string) domain.Stack {
	if s, ok := stackTable[platform]; ok {
		return s
	}
	return stackTable["web"]
}
