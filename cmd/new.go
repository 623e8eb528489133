package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/kjuulh/mkcomponent/internal/config"
	"github.com/kjuulh/mkcomponent/internal/output"
	"github.com/kjuulh/mkcomponent/internal/scaffold"
)

func runScaffold(ctx context.Context, cfg *config.Config, fsys afero.Fs, stdout, stderr io.Writer, names []string) error {
	ui := output.NewUI(stderr, output.LogConfig{
		Verbose: cfg.Verbose,
		NoColor: cfg.NoColor,
	})

	if cfg.DryRun {
		plan, err := scaffold.NewPlan(names)
		if err != nil {
			return err
		}

		return printPlan(stdout, plan)
	}

	ui.Debug("scaffolding components", "names", names)

	scaffolder := scaffold.NewScaffolder(scaffold.NewGenerator(fsys, ui), ui)

	report, err := scaffolder.Run(ctx, names)
	if report != nil {
		printSummary(stdout, output.NewStyles(stdout, cfg.NoColor), report)
	}
	return err
}

func printPlan(w io.Writer, plan *scaffold.Plan) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(plan); err != nil {
		return fmt.Errorf("failed to format plan: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to format plan: %w", err)
	}

	return nil
}

func printSummary(w io.Writer, styles *output.Styles, report *scaffold.Report) {
	statuses := make(map[string]string, len(report.Directories))
	for _, dir := range report.Directories {
		switch {
		case dir.Err == nil:
			statuses[dir.Name] = output.StatusCreated
		case errors.Is(dir.Err, fs.ErrExist):
			statuses[dir.Name] = output.StatusExisted
		default:
			statuses[dir.Name] = output.StatusFailed
		}
	}

	for _, file := range report.Files {
		if file.Err != nil {
			statuses[file.Name] = output.StatusFailed
		}
	}

	for _, dir := range report.Directories {
		fmt.Fprintln(w, styles.StatusLine(dir.Name, statuses[dir.Name]))
	}
}
