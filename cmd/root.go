package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kjuulh/mkcomponent/internal/config"
	"github.com/kjuulh/mkcomponent/internal/scaffold"
)

const exampleUsage = "mkcomponent MyContainer"

// Execute runs mkcomponent against the current working directory
func Execute() error {
	rootCmd := NewRootCmd(os.Stdout, os.Stderr, afero.NewOsFs())

	return rootCmd.Execute()
}

// NewRootCmd builds the root command. Components are created relative to the root of fs.
func NewRootCmd(stdout, stderr io.Writer, fs afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mkcomponent <Name> [Name...]",
		Short:   "scaffold react components, one directory per name",
		Example: exampleUsage + "\n" + "mkcomponent UserCard HeaderBar",
		Long: `Scaffold one or more react components.

Every name must be in PascalCase, and gets a directory in the current working directory containing:
  <Name>.tsx       a component rendering "Hello world"
  <Name>.test.tsx  a test asserting "Hello world" is rendered
  styled.tsx       an empty styled container
  index.ts         re-exports the component`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &scaffold.UsageError{}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			return runScaffold(cmd.Context(), cfg, fs, stdout, stderr, args)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolP(config.KeyVerbose, "v", false, "enable debug logging")
	rootCmd.Flags().Bool(config.KeyDryRun, false, "print the files that would be created, without writing anything")
	rootCmd.Flags().Bool(config.KeyNoColor, false, "disable colored output")

	return rootCmd
}

// PrintError reports a failed run, a missing name gets the usage example instead of the error itself
func PrintError(w io.Writer, err error) {
	var usageErr *scaffold.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(w, "Error: No arguments were provided")
		fmt.Fprintln(w, "Example usage:")
		fmt.Fprintln(w, exampleUsage)
		return
	}

	fmt.Fprintf(w, "mkcomponent failed: %s\n", err.Error())
}
