package git

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CLI runs git commands against a single repository. It is the only
// non-deterministic boundary of the tool: stdout is the structured data
// channel, the exit status the success signal.
type CLI struct {
	// Dir is the repository working directory
	Dir string
}

// NewCLI creates a client for the repository at dir.
func NewCLI(dir string) *CLI {
	return &CLI{Dir: dir}
}

// GitError provides context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	if e.Output == "" {
		return "git " + e.Command + " failed"
	}
	return "git " + e.Command + ": " + e.Output
}

// output runs a git subcommand and returns its trimmed stdout.
func (c *CLI) output(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.Dir
	out, err := cmd.Output()
	if err != nil {
		return "", &GitError{Command: args[0], Output: stderrOf(err)}
	}
	return strings.TrimSpace(string(out)), nil
}

// run runs a git subcommand forwarding its output to the terminal.
func (c *CLI) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &GitError{Command: args[0]}
	}
	return nil
}

func stderrOf(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return err.Error()
}

// CurrentBranch returns the checked-out branch name.
func (c *CLI) CurrentBranch() (string, error) {
	return c.output("branch", "--show-current")
}

// UserName returns the configured git identity display name.
func (c *CLI) UserName() (string, error) {
	return c.output("config", "user.name")
}

// StatusClean reports whether the working tree has no uncommitted changes.
func (c *CLI) StatusClean() (bool, error) {
	out, err := c.output("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}

// ExclusiveLog returns the raw log lines for commits reachable from include
// but not from exclude, newest first, at most limit entries. Each line is
// formatted as "hash|author|subject". An empty range is an empty listing,
// not an error; git only exits non-zero here when a ref is broken.
func (c *CLI) ExclusiveLog(exclude, include string, limit int) ([]string, error) {
	out, err := c.output("log",
		"^"+exclude,
		include,
		fmt.Sprintf("-%d", limit),
		"--format=%h|%an|%s",
	)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// CherryPickRange replays the commits of oldest^..newest, oldest first, onto
// the current branch. The rev-list output is streamed directly into
// cherry-pick --stdin; on conflict the working tree is left as git leaves it.
func (c *CLI) CherryPickRange(oldest, newest string) error {
	revList := exec.Command("git", "rev-list", "--reverse", oldest+"^.."+newest)
	revList.Dir = c.Dir

	pick := exec.Command("git", "cherry-pick", "--stdin")
	pick.Dir = c.Dir
	pick.Stdout = os.Stdout
	pick.Stderr = os.Stderr

	pipe, err := revList.StdoutPipe()
	if err != nil {
		return &GitError{Command: "rev-list", Output: err.Error()}
	}
	pick.Stdin = pipe

	if err := revList.Start(); err != nil {
		return &GitError{Command: "rev-list", Output: err.Error()}
	}
	if err := pick.Start(); err != nil {
		_ = revList.Wait()
		return &GitError{Command: "cherry-pick", Output: err.Error()}
	}

	pickErr := pick.Wait()
	listErr := revList.Wait()

	if listErr != nil {
		return &GitError{Command: "rev-list", Output: stderrOf(listErr)}
	}
	if pickErr != nil {
		return &GitError{Command: "cherry-pick"}
	}
	return nil
}

// Switch checks out an existing branch.
func (c *CLI) Switch(branch string) error {
	return c.run("switch", branch)
}

// SwitchCreate creates a branch off the current HEAD and checks it out.
func (c *CLI) SwitchCreate(branch string) error {
	return c.run("switch", "-c", branch)
}

// Fetch updates remote-tracking refs from origin.
func (c *CLI) Fetch() error {
	return c.run("fetch")
}

// Pull fast-forwards the current branch.
func (c *CLI) Pull() error {
	return c.run("pull")
}
