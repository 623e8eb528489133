package scaffold

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/kjuulh/mkcomponent/internal/templates"
)

const readWriteExec = 0o755

// Generator creates component directories and their files. Paths are relative to the root of fs, which is the current working directory for the cli.
type Generator struct {
	fs     afero.Fs
	ui     *slog.Logger
	writer *templates.FileWriter
}

func NewGenerator(fs afero.Fs, ui *slog.Logger) *Generator {
	return &Generator{
		fs:     fs,
		ui:     ui,
		writer: templates.NewFileWriter(fs),
	}
}

// CreateDirectory creates the directory for a single component. An existing directory is an error.
func (g *Generator) CreateDirectory(_ context.Context, name string) error {
	if name == "" {
		g.ui.Error("Error while creating directory")
		return &EmptyNameError{Op: "create directory"}
	}

	g.ui.Info("Creating directory", "name", name)
	if err := g.fs.Mkdir(name, readWriteExec); err != nil {
		g.ui.Error("Error while creating directory", "name", name, "error", err)
		return &DirectoryCreationError{Name: name, Err: err}
	}

	g.ui.Info("Directory created successfully", "name", name)

	return nil
}

// CreateFiles writes the component, test, styled and index files into the directory of name, in that order.
// The first failed write is returned, and the remaining files aren't attempted.
func (g *Generator) CreateFiles(ctx context.Context, name string) error {
	if name == "" {
		g.ui.Error("Error while creating file")
		return &EmptyNameError{Op: "create files"}
	}

	files, err := templates.Render(name)
	if err != nil {
		g.ui.Error("Error while creating file", "name", name, "error", err)
		return err
	}

	if err := g.writer.Write(ctx, g.ui, name, name, files); err != nil {
		g.ui.Error("Error while creating file", "name", name, "error", err)
		return err
	}

	g.ui.Info("File created successfully", "name", name)

	return nil
}
