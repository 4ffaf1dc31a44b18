package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/zpick/internal/picker"
	"github.com/wahlandcase/zpick/internal/ui"
)

var (
	pickCount  int
	pickLatest bool
	pickShow   bool
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "List commits on the prd branch missing from hml and cherry-pick them",
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().IntVarP(&pickCount, "count", "c", 5, "Number of commits to list")
	pickCmd.Flags().BoolVar(&pickLatest, "latest", false, "Only your own commits, searching the last 100 exclusive commits")
	pickCmd.Flags().BoolVar(&pickShow, "show", false, "Display only, never cherry-pick")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}

	pair, sel, err := picker.Prepare(client, cfg, pickCount, pickLatest)
	if err != nil {
		return err
	}

	if sel.Empty() {
		if sel.Author != "" {
			fmt.Printf("No commits by %s between %s and %s.\n", sel.Author, pair.Production, pair.Homologation)
		} else {
			fmt.Printf("No commits between %s and %s.\n", pair.Production, pair.Homologation)
		}
		return nil
	}

	user, err := client.UserName()
	if err != nil {
		return fmt.Errorf("reading git identity: %w", err)
	}

	fmt.Printf("Commits on %s not on %s:\n\n", ui.Label(pair.Production), ui.Label(pair.Homologation))
	for _, c := range sel.Commits {
		fmt.Println(ui.CommitLine(c, user))
	}

	if pickShow {
		return nil
	}

	picked := sel.Picked()
	if len(picked) == 0 {
		return nil
	}

	fmt.Println()
	ok, err := ui.Confirm(fmt.Sprintf("Cherry-pick %d commit(s) onto the current branch?", len(picked)))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Nothing picked.")
		return nil
	}

	if err := picker.Apply(client, sel); err != nil {
		// git leaves the working tree mid-pick; the user finishes by hand
		fmt.Println("Cherry-pick stopped. Resolve the conflicts, then run" +
			" 'git cherry-pick --continue' (or --abort to undo).")
		return err
	}

	fmt.Printf("Cherry-picked %d commit(s).\n", len(picked))
	return nil
}
