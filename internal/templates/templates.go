package templates

import (
	"embed"
	"fmt"
	"path"
	gotmpl "text/template"
)

//go:embed files/*.gotmpl
var templateFS embed.FS

// Role identifies which of the component files a template produces
type Role string

const (
	RoleComponent Role = "component"
	RoleTest      Role = "test"
	RoleStyled    Role = "styled"
	RoleIndex     Role = "index"
)

// Template is one of the fixed component file templates. Path is itself a go template, rendered with the same data as the content.
type Template struct {
	Role Role
	Path string

	source string
	tmpl   *gotmpl.Template
}

// TemplateData is what every template gets executed with
type TemplateData struct {
	Name string
}

// componentTemplates is in write order, the files of a component are always written component -> test -> styled -> index
var componentTemplates = mustIndex([]Template{
	{Role: RoleComponent, Path: "{{.Name}}.tsx", source: "component.tsx.gotmpl"},
	{Role: RoleTest, Path: "{{.Name}}.test.tsx", source: "test.tsx.gotmpl"},
	{Role: RoleStyled, Path: "styled.tsx", source: "styled.tsx.gotmpl"},
	{Role: RoleIndex, Path: "index.ts", source: "index.ts.gotmpl"},
})

// Templates returns the fixed template set in write order
func Templates() []Template {
	out := make([]Template, len(componentTemplates))
	copy(out, componentTemplates)

	return out
}

func mustIndex(templates []Template) []Template {
	indexed, err := index(templates)
	if err != nil {
		panic(err)
	}

	return indexed
}

func index(templates []Template) ([]Template, error) {
	for i, template := range templates {
		content, err := templateFS.ReadFile(path.Join("files", template.source))
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded template: %s, %w", template.source, err)
		}

		tmpl, err := gotmpl.New(template.source).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template file: %s, %w", template.source, err)
		}

		templates[i].tmpl = tmpl
	}

	return templates, nil
}
