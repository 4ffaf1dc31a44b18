package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/zpick/internal/ui"
)

var startDebug bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Create a production branch for a new ticket off the mainline",
	RunE:  runStart,
}

func init() {
	startCmd.Flags().BoolVar(&startDebug, "debug", false, "Skip the uncommitted-changes check")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}

	if !startDebug {
		clean, err := client.StatusClean()
		if err != nil {
			return err
		}
		if !clean {
			return fmt.Errorf("you have uncommitted changes; commit them before starting a new ticket")
		}
	}

	ticket, ok, err := ui.Prompt("Ticket number?", "", func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return fmt.Errorf("please enter a valid number")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	branch := cfg.Prefix + ticket + cfg.SuffixPrd
	mainline := client.DefaultBranch()

	if err := client.Switch(mainline); err != nil {
		return fmt.Errorf("switching to %s: %w", mainline, err)
	}
	if err := client.Fetch(); err != nil {
		return err
	}
	if err := client.Pull(); err != nil {
		return err
	}
	if err := client.SwitchCreate(branch); err != nil {
		return fmt.Errorf("creating %s: %w", branch, err)
	}

	fmt.Printf("Created %s off %s.\n", ui.Label(branch), mainline)
	return nil
}
