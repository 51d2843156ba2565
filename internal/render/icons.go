package render

import (
	"strings"
	"unicode"
)

// iconNames maps lowercased skill names to devicon directory names.
var iconNames = map[string]string{
	"c++":        "cplusplus",
	"c#":         "csharp",
	"node.js":    "nodejs",
	"vue":        "vuejs",
	"next.js":    "nextjs",
	"angular":    "angularjs",
	"aws":        "amazonwebservices",
	"docker":     "docker",
	"jenkins":    "jenkins",
	"kubernetes": "kubernetes",
	"linux":      "linux",
	"sass":       "sass",
	"tailwind":   "tailwindcss",
	"html5":      "html5",
	"css3":       "css3",
	"javascript": "javascript",
	"typescript": "typescript",
	"python":     "python",
	"java":       "java",
	"go":         "go",
	"rust":       "rust",
	"php":        "php",
	"ruby":       "ruby",
	"swift":      "swift",
	"kotlin":     "kotlin",
	"dart":       "dart",
	"flutter":    "flutter",
	"react":      "react",
	"firebase":   "firebase",
	"git":        "git",
	"figma":      "figma",
}

// IconName resolves the devicon identifier for a skill. Names outside the
// table are lowercased with periods and whitespace removed.
func IconName(skill string) string {
	lower := strings.ToLower(skill)
	if name, ok := iconNames[lower]; ok {
		return name
	}
	return strings.Map(func(r rune) rune {
		if r == '.' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, lower)
}
