package templates

import (
	"bytes"
	"fmt"
	"strings"
	gotmpl "text/template"
)

// File is a rendered template, ready to be written inside the component directory
type File struct {
	Role    Role
	RelPath string
	Content []byte
}

// TemplatePath formats the template file path using go templates
func TemplatePath(template Template, data TemplateData) (string, error) {
	tmpl, err := gotmpl.New("path").Parse(template.Path)
	if err != nil {
		return "", err
	}

	output := bytes.NewBufferString("")
	if err := tmpl.Execute(output, data); err != nil {
		return "", err
	}

	return strings.TrimSpace(output.String()), nil
}

// Render runs the templating for a single component name. The writes doesn't happen here yet.
func Render(name string) ([]File, error) {
	data := TemplateData{Name: name}

	files := make([]File, 0, len(componentTemplates))
	for _, template := range componentTemplates {
		relPath, err := TemplatePath(template, data)
		if err != nil {
			return nil, fmt.Errorf("failed to template path for: %s, %w", template.Role, err)
		}

		output := bytes.NewBufferString("")
		if err := template.tmpl.Execute(output, data); err != nil {
			return nil, fmt.Errorf("failed to template file: %s, %w", relPath, err)
		}

		files = append(files, File{
			Role:    template.Role,
			RelPath: relPath,
			Content: output.Bytes(),
		})
	}

	return files, nil
}

// FileNames lists the files that would be created for name, relative to its directory
func FileNames(name string) ([]string, error) {
	data := TemplateData{Name: name}

	names := make([]string, 0, len(componentTemplates))
	for _, template := range componentTemplates {
		relPath, err := TemplatePath(template, data)
		if err != nil {
			return nil, err
		}

		names = append(names, relPath)
	}

	return names, nil
}
