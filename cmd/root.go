package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/wahlandcase/zpick/internal/config"
	"github.com/wahlandcase/zpick/internal/git"
)

const version = "0.3.0"

var noColor bool

var rootCmd = &cobra.Command{
	Use:     "zpick",
	Short:   "Manage ticket branches and cherry-pick commits between prd and hml",
	Long:    "zpick automates the <prefix><ticket>-prd / <prefix><ticket>-hml branch workflow:\nstarting a production branch for a ticket, listing the commits production has\nthat homologation lacks, and replaying them in order.",
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.SilenceUsage = true
}

// setup loads the configuration, applies the color settings and builds the
// git client for the working directory.
func setup() (*config.Config, *git.CLI, error) {
	cfg := config.Load()

	if noColor || !cfg.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}

	return cfg, git.NewCLI(dir), nil
}
