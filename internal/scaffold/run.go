package scaffold

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/kjuulh/mkcomponent/internal/naming"
)

// Creator creates the directory and the files of a single component
type Creator interface {
	CreateDirectory(ctx context.Context, name string) error
	CreateFiles(ctx context.Context, name string) error
}

// DirectoryResult is the outcome of creating the directory of a single component
type DirectoryResult struct {
	Name string
	Err  error
}

// FileResult is the outcome of writing the files of a single component
type FileResult struct {
	Name string
	Err  error
}

// Report holds the per component outcome of a run, in the order the names were given
type Report struct {
	Directories []DirectoryResult
	Files       []FileResult
}

// Scaffolder runs a batch of component names through validation, directory creation and file creation.
type Scaffolder struct {
	creator Creator
	ui      *slog.Logger
}

func NewScaffolder(creator Creator, ui *slog.Logger) *Scaffolder {
	return &Scaffolder{
		creator: creator,
		ui:      ui,
	}
}

// Run scaffolds every name. All names are validated before anything is touched.
// Directory failures are logged and the run carries on, an existing directory simply gets its files overwritten.
// A file failure fails the run, but other components already being written are allowed to finish.
func (s *Scaffolder) Run(ctx context.Context, names []string) (*Report, error) {
	if len(names) == 0 {
		return nil, &UsageError{}
	}

	if err := naming.ValidateAll(names); err != nil {
		return nil, err
	}

	report := &Report{
		Directories: s.createDirectories(ctx, names),
	}

	files, err := s.createFiles(ctx, names)
	report.Files = files
	if err != nil {
		return report, fmt.Errorf("failed to create files: %w", err)
	}

	s.ui.Info("All files and directories created successfully", "components", len(names))

	return report, nil
}

func (s *Scaffolder) createDirectories(ctx context.Context, names []string) []DirectoryResult {
	results := make([]DirectoryResult, len(names))

	var egrp errgroup.Group
	for i, name := range names {
		egrp.Go(func() error {
			results[i] = DirectoryResult{
				Name: name,
				Err:  s.creator.CreateDirectory(ctx, name),
			}

			// directory failures never fail the phase
			return nil
		})
	}
	_ = egrp.Wait()

	return results
}

func (s *Scaffolder) createFiles(ctx context.Context, names []string) ([]FileResult, error) {
	results := make([]FileResult, len(names))

	// The group context is not handed to the writers, an in flight component is never cancelled by a sibling failing
	egrp, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		egrp.Go(func() error {
			err := s.creator.CreateFiles(ctx, name)
			results[i] = FileResult{
				Name: name,
				Err:  err,
			}

			return err
		})
	}

	if err := egrp.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
