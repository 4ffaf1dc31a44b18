package git

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// BranchExists checks whether branch resolves to a reference in the
// repository, trying the local ref first and then origin.
func (c *CLI) BranchExists(branch string) bool {
	repo, err := gogit.PlainOpenWithOptions(c.Dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return false
	}

	if _, err := repo.Reference(plumbing.NewBranchReferenceName(branch), true); err == nil {
		return true
	}
	_, err = repo.Reference(plumbing.NewRemoteReferenceName("origin", branch), true)
	return err == nil
}

// DefaultBranch determines the repository mainline, preferring remote refs:
// origin/main, origin/master, local main, local master, then "main".
func (c *CLI) DefaultBranch() string {
	repo, err := gogit.PlainOpenWithOptions(c.Dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "main"
	}

	refs, err := repo.References()
	if err != nil {
		return "main"
	}

	var remoteMain, remoteMaster, localMain, localMaster bool
	refs.ForEach(func(ref *plumbing.Reference) error {
		switch ref.Name().String() {
		case "refs/remotes/origin/main":
			remoteMain = true
		case "refs/remotes/origin/master":
			remoteMaster = true
		case "refs/heads/main":
			localMain = true
		case "refs/heads/master":
			localMaster = true
		}
		return nil
	})

	switch {
	case remoteMain:
		return "main"
	case remoteMaster:
		return "master"
	case localMain:
		return "main"
	case localMaster:
		return "master"
	}
	return "main"
}
