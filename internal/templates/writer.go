package templates

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/spf13/afero"
)

const readWrite = 0o644

// FileWriteError is returned when one of the files of a component couldn't be written
type FileWriteError struct {
	Name string
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write file: %s, %s", e.Path, e.Err.Error())
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

// FileWriter writes the rendered files of a single component to disk. Files are written one after another, and the first failure stops the rest.
type FileWriter struct {
	fs afero.Fs
}

func NewFileWriter(fs afero.Fs) *FileWriter {
	return &FileWriter{
		fs: fs,
	}
}

// Write replaces the content of each file inside dir. It expects dir to exist already, and files written before a failure are left as is.
func (f *FileWriter) Write(_ context.Context, ui *slog.Logger, name string, dir string, files []File) error {
	for _, file := range files {
		destinationPath := path.Join(dir, file.RelPath)

		ui.Info("Creating file", "file", file.RelPath)
		if err := afero.WriteFile(f.fs, destinationPath, file.Content, readWrite); err != nil {
			return &FileWriteError{
				Name: name,
				Path: destinationPath,
				Err:  err,
			}
		}
		ui.Debug("wrote file", "path", destinationPath, "role", file.Role, "bytes", len(file.Content))
	}

	return nil
}
