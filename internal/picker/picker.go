// Package picker implements the commit-diffing pipeline: deriving the
// prd/hml branch pair from the current branch, selecting the commits unique
// to production, and replaying them onto the current branch oldest first.
package picker

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/zpick/internal/config"
	"github.com/wahlandcase/zpick/internal/models"
)

// latestHistoryDepth bounds the log window used by --latest. "All of the
// user's unpicked commits" is in practice approximated by the most recent
// 100 commits exclusive to production.
const latestHistoryDepth = 100

// GitClient is the version-control capability the pipeline needs. The real
// implementation shells out to git; tests substitute a fake.
type GitClient interface {
	CurrentBranch() (string, error)
	UserName() (string, error)
	BranchExists(branch string) bool
	ExclusiveLog(exclude, include string, limit int) ([]string, error)
	CherryPickRange(oldest, newest string) error
}

// BranchFormatError reports a current branch that does not follow the
// <prefix><ticket><suffix> convention.
type BranchFormatError struct {
	Branch  string
	Pattern string
}

func (e *BranchFormatError) Error() string {
	return fmt.Sprintf("branch %q does not match the expected pattern %q", e.Branch, e.Pattern)
}

// BranchNotFoundError reports a derived branch missing from the repository.
type BranchNotFoundError struct {
	Branch string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %q does not exist", e.Branch)
}

// Resolve derives the production/homologation pair for the ticket encoded in
// currentBranch. The ticket id is the second "-"-delimited component, so a
// prefix that itself contains "-" yields a wrong id; known limitation of
// the naming convention.
func Resolve(currentBranch string, cfg *config.Config) (models.BranchPair, error) {
	parts := strings.Split(currentBranch, "-")
	if len(parts) < 2 || !strings.HasPrefix(currentBranch, cfg.Prefix) {
		return models.BranchPair{}, &BranchFormatError{
			Branch:  currentBranch,
			Pattern: cfg.Prefix + "<ticket>" + cfg.SuffixPrd,
		}
	}

	ticket := parts[1]
	return models.BranchPair{
		Production:   cfg.Prefix + ticket + cfg.SuffixPrd,
		Homologation: cfg.Prefix + ticket + cfg.SuffixHml,
	}, nil
}

// Selection is the ordered (newest-first) result of one exclusive-log query.
type Selection struct {
	// Commits holds parsed records and pass-through lines, newest first
	Commits []models.Commit
	// Author is set when the listing was restricted to one author
	Author string
}

// Picked returns the hash-bearing records eligible for cherry-picking,
// newest first.
func (s Selection) Picked() []models.Commit {
	picked := make([]models.Commit, 0, len(s.Commits))
	for _, c := range s.Commits {
		if !c.IsPassthrough() {
			picked = append(picked, c)
		}
	}
	return picked
}

// Empty reports whether nothing survived selection, pass-through included.
func (s Selection) Empty() bool {
	return len(s.Commits) == 0
}

// Select lists the commits reachable from pair.Production but not
// pair.Homologation, newest first, bounded to limit. When author is
// non-empty only records by exactly that author are kept; lines that do not
// parse carry no author and are then dropped as well. An empty result is a
// valid selection, not an error.
func Select(client GitClient, pair models.BranchPair, limit int, author string) (Selection, error) {
	lines, err := client.ExclusiveLog(pair.Homologation, pair.Production, limit)
	if err != nil {
		return Selection{}, fmt.Errorf("listing commits on %s not on %s: %w", pair.Production, pair.Homologation, err)
	}

	sel := Selection{Author: author}
	for _, line := range lines {
		if line == "" {
			continue
		}
		c := models.ParseCommit(line)
		if author != "" {
			if c.IsPassthrough() || c.Author != author {
				continue
			}
		}
		sel.Commits = append(sel.Commits, c)
	}

	return sel, nil
}

// SelectLatest lists all of the author's unpicked commits within the
// latestHistoryDepth window.
func SelectLatest(client GitClient, pair models.BranchPair, author string) (Selection, error) {
	return Select(client, pair, latestHistoryDepth, author)
}

// Apply replays the selected commits onto the current branch. The selection
// is newest-first, so the inclusive range is last^..first; git expands it
// oldest first and cherry-picks in that order. A selection with no
// hash-bearing records is a no-op.
func Apply(client GitClient, sel Selection) error {
	picked := sel.Picked()
	if len(picked) == 0 {
		return nil
	}

	oldest := picked[len(picked)-1].ShortHash
	newest := picked[0].ShortHash

	if err := client.CherryPickRange(oldest, newest); err != nil {
		return fmt.Errorf("cherry-picking %s^..%s: %w", oldest, newest, err)
	}
	return nil
}

// Prepare runs the resolving and selecting steps for one pick invocation:
// current branch, branch pair, existence checks, then the commit listing.
func Prepare(client GitClient, cfg *config.Config, count int, latest bool) (models.BranchPair, Selection, error) {
	current, err := client.CurrentBranch()
	if err != nil {
		return models.BranchPair{}, Selection{}, fmt.Errorf("reading current branch: %w", err)
	}

	pair, err := Resolve(current, cfg)
	if err != nil {
		return models.BranchPair{}, Selection{}, err
	}

	for _, branch := range []string{pair.Production, pair.Homologation} {
		if !client.BranchExists(branch) {
			return models.BranchPair{}, Selection{}, &BranchNotFoundError{Branch: branch}
		}
	}

	if latest {
		user, err := client.UserName()
		if err != nil {
			return models.BranchPair{}, Selection{}, fmt.Errorf("reading git identity: %w", err)
		}
		sel, err := SelectLatest(client, pair, user)
		return pair, sel, err
	}

	sel, err := Select(client, pair, count, "")
	return pair, sel, err
}
