package content

import (
	"embed"
	"strconv"
)

//go:embed labels/*.html
var LabelsFS embed.FS

// Skill names shown on the flower grid.
var skills = []string{
	"Go", "TypeScript", "Three.js",
	"Embedded C", "Python", "Docker",
	"PostgreSQL", "CI/CD", "Computer vision",
}

// Defaults is the embedded source backed by canned fallbacks.
func Defaults() Source {
	canned := Canned{}
	for i, s := range skills {
		canned["skillFlower"+strconv.Itoa(i+1)] = s
	}
	return Chain{FSSource{FS: LabelsFS, Dir: "labels"}, canned}
}

// WithRemote puts an HTTP source in front of the embedded one.
func WithRemote(baseURL string) Source {
	if baseURL == "" {
		return Defaults()
	}
	return Chain{HTTPSource{BaseURL: baseURL}, Defaults()}
}
