// Package cli provides the command-line interface for wordbase.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wordbase-dev/wordbase/internal/config"
	"github.com/wordbase-dev/wordbase/internal/mysql"
	"github.com/wordbase-dev/wordbase/internal/shell"
	"github.com/wordbase-dev/wordbase/internal/store"
)

// defaultEnvFile is looked for in the working directory when no env
// file is given explicitly.
const defaultEnvFile = "default.env"

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)

var (
	envFile        string
	nonInteractive bool
	verbose        bool
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordbase",
		Short: "Interactive dictionary maintenance shell",
		Long: `Wordbase maintains a single-table dictionary of words in MySQL.

It looks up each word you enter and either inserts it as new or
updates it to a corrected spelling, driven by a read-prompt-act loop.

Connection parameters are resolved from an env file given with --file,
from default.env in the working directory, or from the MYSQL_* process
environment variables, falling back to a localhost root login.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShell,
	}

	rootCmd.SetVersionTemplate(`wordbase {{.Version}}
`)

	rootCmd.Flags().StringVarP(&envFile, "file", "f", "", "environment file with KEY=value pairs")
	rootCmd.Flags().BoolVarP(&nonInteractive, "non-interactive", "n", false, "skip login prompts and use resolved parameters")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(NewVersionCommand(Version, BuildDate))

	return rootCmd
}

func runShell(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr())

	path := envFile
	switch {
	case path != "":
		_, _ = fmt.Fprintf(out, "Loading env from %s\n", path)
	case fileExists(defaultEnvFile):
		path = defaultEnvFile
		_, _ = fmt.Fprintln(out, "Loading default env from file.")
	default:
		_, _ = fmt.Fprintln(out, "Loading environment variables.")
	}

	params, source, err := config.Resolve(path)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved", slog.String("source", source.String()))

	shell.Banner(out)

	prompter, err := shell.NewReadlinePrompter()
	if err != nil {
		return fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = prompter.Close() }()

	params, err = shell.Login(prompter, out, params, !nonInteractive)
	if err != nil {
		return err
	}

	conn, err := mysql.Connect(ctx, params, out, logger)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	dict, err := store.New(ctx, conn.DB(), out, logger)
	if err != nil {
		return err
	}

	return shell.New(prompter, out, dict, logger).Run(ctx)
}

// newLogger returns a text logger on w under --verbose, a discard
// logger otherwise.
func newLogger(w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
