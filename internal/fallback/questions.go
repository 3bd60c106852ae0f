// Package fallback holds the deterministic substitutes used whenever the
// language model is unavailable or returns something unusable.
package fallback

import (
	_ "embed"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"alfredoptarigan/virtual-panel/internal/models"
)

// DefaultCategory answers any role no other category claims.
const DefaultCategory = "default"

//go:embed catalog.yaml
var catalogYAML []byte

type Category struct {
	Name      string   `yaml:"name"`
	Questions []string `yaml:"questions"`
}

type catalogFile struct {
	Categories []Category `yaml:"categories"`
}

var (
	categories      []Category
	defaultQuestion []string
)

func init() {
	cats, def, err := parseCatalog(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("invalid fallback catalog: %v", err))
	}
	categories = cats
	defaultQuestion = def
}

func parseCatalog(data []byte) ([]Category, []string, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	var cats []Category
	var def []string
	for _, c := range file.Categories {
		if len(c.Questions) != models.QuestionCount {
			return nil, nil, fmt.Errorf("category %q has %d questions, want %d", c.Name, len(c.Questions), models.QuestionCount)
		}
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == DefaultCategory {
			def = c.Questions
			continue
		}
		cats = append(cats, Category{Name: name, Questions: c.Questions})
	}

	if def == nil {
		return nil, nil, fmt.Errorf("catalog has no %q category", DefaultCategory)
	}

	return cats, def, nil
}

// Categories lists the matchable categories in match order.
func Categories() []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

// SelectQuestions picks a question list for role. Categories are tried in
// catalog order and the first one whose name contains the role, or is
// contained in it, wins.
func SelectQuestions(role string) []string {
	normalized := strings.ToLower(strings.TrimSpace(role))
	if normalized == "" {
		return clone(defaultQuestion)
	}

	for _, c := range categories {
		if strings.Contains(normalized, c.Name) || strings.Contains(c.Name, normalized) {
			return clone(c.Questions)
		}
	}

	return clone(defaultQuestion)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
