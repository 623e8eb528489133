package scaffold

import (
	"fmt"
	"path"

	"github.com/kjuulh/mkcomponent/internal/naming"
	"github.com/kjuulh/mkcomponent/internal/templates"
)

type PlannedComponent struct {
	Name      string   `yaml:"name"`
	Directory string   `yaml:"directory"`
	Files     []string `yaml:"files"`
}

// Plan describes what a run would write, without touching the filesystem
type Plan struct {
	Components []PlannedComponent `yaml:"components"`
}

// NewPlan validates names the same way Run does, and lists the files each component would get.
func NewPlan(names []string) (*Plan, error) {
	if len(names) == 0 {
		return nil, &UsageError{}
	}

	if err := naming.ValidateAll(names); err != nil {
		return nil, err
	}

	plan := &Plan{
		Components: make([]PlannedComponent, 0, len(names)),
	}
	for _, name := range names {
		fileNames, err := templates.FileNames(name)
		if err != nil {
			return nil, fmt.Errorf("failed to template file names for: %s, %w", name, err)
		}

		files := make([]string, 0, len(fileNames))
		for _, fileName := range fileNames {
			files = append(files, path.Join(name, fileName))
		}

		plan.Components = append(plan.Components, PlannedComponent{
			Name:      name,
			Directory: name,
			Files:     files,
		})
	}

	return plan, nil
}
