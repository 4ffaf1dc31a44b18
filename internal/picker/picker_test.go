package picker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/zpick/internal/config"
	"github.com/wahlandcase/zpick/internal/models"
)

// fakeClient is an in-memory GitClient recording what the pipeline asked for.
type fakeClient struct {
	branch   string
	user     string
	branches map[string]bool
	logLines []string
	logErr   error

	gotExclude string
	gotInclude string
	gotLimit   int

	pickedOldest string
	pickedNewest string
	pickErr      error
}

func (f *fakeClient) CurrentBranch() (string, error) { return f.branch, nil }
func (f *fakeClient) UserName() (string, error)      { return f.user, nil }

func (f *fakeClient) BranchExists(branch string) bool {
	return f.branches[branch]
}

func (f *fakeClient) ExclusiveLog(exclude, include string, limit int) ([]string, error) {
	f.gotExclude = exclude
	f.gotInclude = include
	f.gotLimit = limit
	if f.logErr != nil {
		return nil, f.logErr
	}
	if limit < len(f.logLines) {
		return f.logLines[:limit], nil
	}
	return f.logLines, nil
}

func (f *fakeClient) CherryPickRange(oldest, newest string) error {
	f.pickedOldest = oldest
	f.pickedNewest = newest
	return f.pickErr
}

func TestResolve(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		name   string
		branch string
		want   models.BranchPair
		bad    bool
	}{
		{
			name:   "prd branch",
			branch: "ZUP-42-prd",
			want:   models.BranchPair{Production: "ZUP-42-prd", Homologation: "ZUP-42-hml"},
		},
		{
			name:   "hml branch resolves to the same pair",
			branch: "ZUP-42-hml",
			want:   models.BranchPair{Production: "ZUP-42-prd", Homologation: "ZUP-42-hml"},
		},
		{name: "wrong prefix", branch: "FEAT-42-prd", bad: true},
		{name: "no separator", branch: "main", bad: true},
		{name: "prefix only", branch: "ZUP", bad: true},
		{name: "empty", branch: "", bad: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := Resolve(tt.branch, cfg)
			if tt.bad {
				var formatErr *BranchFormatError
				require.ErrorAs(t, err, &formatErr)
				assert.Contains(t, formatErr.Error(), "ZUP-<ticket>-prd")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pair)
		})
	}
}

func TestResolveCustomScheme(t *testing.T) {
	cfg := &config.Config{Prefix: "ACME-", SuffixPrd: "-prod", SuffixHml: "-stage"}

	pair, err := Resolve("ACME-7-prod", cfg)
	require.NoError(t, err)
	assert.Equal(t, "ACME-7-prod", pair.Production)
	assert.Equal(t, "ACME-7-stage", pair.Homologation)
}

func TestSelectParsesNewestFirst(t *testing.T) {
	client := &fakeClient{logLines: []string{
		"c3adbee|alice|feat: three",
		"c2adbee|bob|fix: two",
		"c1adbee|alice|feat: one",
	}}
	pair := models.BranchPair{Production: "ZUP-42-prd", Homologation: "ZUP-42-hml"}

	sel, err := Select(client, pair, 5, "")
	require.NoError(t, err)

	assert.Equal(t, "ZUP-42-hml", client.gotExclude)
	assert.Equal(t, "ZUP-42-prd", client.gotInclude)
	assert.Equal(t, 5, client.gotLimit)

	require.Len(t, sel.Commits, 3)
	assert.Equal(t, "c3adbee", sel.Commits[0].ShortHash)
	assert.Equal(t, "c1adbee", sel.Commits[2].ShortHash)
	assert.Equal(t, "fix: two", sel.Commits[1].Subject)
	assert.Equal(t, "bob", sel.Commits[1].Author)
}

func TestSelectAuthorFilterIsExact(t *testing.T) {
	client := &fakeClient{logLines: []string{
		"c3adbee|alice|feat: three",
		"c2adbee|Alice|fix: case differs",
		"c1adbee|alice |subject: trailing space author",
		"c0adbee|alice|feat: zero",
	}}
	pair := models.BranchPair{Production: "p", Homologation: "h"}

	sel, err := Select(client, pair, 100, "alice")
	require.NoError(t, err)

	require.Len(t, sel.Commits, 2)
	assert.Equal(t, "c3adbee", sel.Commits[0].ShortHash)
	assert.Equal(t, "c0adbee", sel.Commits[1].ShortHash)
	assert.Equal(t, "alice", sel.Author)
}

func TestSelectPassthroughLines(t *testing.T) {
	client := &fakeClient{logLines: []string{
		"c2adbee|alice|feat: two",
		"Merge branch 'whatever'",
		"c1adbee|alice|feat: one",
	}}
	pair := models.BranchPair{Production: "p", Homologation: "h"}

	sel, err := Select(client, pair, 5, "")
	require.NoError(t, err)

	// pass-through stays visible but is never pick-eligible
	require.Len(t, sel.Commits, 3)
	assert.True(t, sel.Commits[1].IsPassthrough())
	picked := sel.Picked()
	require.Len(t, picked, 2)
	assert.Equal(t, "c2adbee", picked[0].ShortHash)

	// under an author filter the unattributable line is dropped
	filtered, err := Select(client, pair, 5, "alice")
	require.NoError(t, err)
	assert.Len(t, filtered.Commits, 2)
}

func TestSelectEmptyIsNotAnError(t *testing.T) {
	client := &fakeClient{}
	pair := models.BranchPair{Production: "p", Homologation: "h"}

	sel, err := Select(client, pair, 5, "")
	require.NoError(t, err)
	assert.True(t, sel.Empty())
	assert.Nil(t, Apply(client, sel))
	assert.Empty(t, client.pickedOldest)
}

func TestSelectSurfacesLogFailure(t *testing.T) {
	client := &fakeClient{logErr: errors.New("fatal: bad revision")}
	pair := models.BranchPair{Production: "p", Homologation: "h"}

	_, err := Select(client, pair, 5, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad revision")
}

func TestApplyRangeIsOldestToNewest(t *testing.T) {
	client := &fakeClient{}
	sel := Selection{Commits: []models.Commit{
		{ShortHash: "c3adbee", Author: "alice", Subject: "three"},
		{ShortHash: "c2adbee", Author: "alice", Subject: "two"},
		{ShortHash: "c1adbee", Author: "alice", Subject: "one"},
	}}

	require.NoError(t, Apply(client, sel))
	assert.Equal(t, "c1adbee", client.pickedOldest)
	assert.Equal(t, "c3adbee", client.pickedNewest)
}

func TestApplySkipsPassthroughOnly(t *testing.T) {
	client := &fakeClient{}
	sel := Selection{Commits: []models.Commit{
		{Raw: "Merge branch 'a'"},
		{Raw: "Merge branch 'b'"},
	}}

	require.NoError(t, Apply(client, sel))
	assert.Empty(t, client.pickedOldest)
}

func TestApplySurfacesConflict(t *testing.T) {
	client := &fakeClient{pickErr: errors.New("git cherry-pick failed")}
	sel := Selection{Commits: []models.Commit{
		{ShortHash: "c1adbee", Author: "alice", Subject: "one"},
	}}

	err := Apply(client, sel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c1adbee^..c1adbee")
}

func TestPrepare(t *testing.T) {
	cfg := config.DefaultConfig()
	client := &fakeClient{
		branch:   "ZUP-42-prd",
		user:     "alice",
		branches: map[string]bool{"ZUP-42-prd": true, "ZUP-42-hml": true},
		logLines: []string{
			"c3adbee|alice|feat: three",
			"c2adbee|bob|fix: two",
			"c1adbee|alice|feat: one",
		},
	}

	pair, sel, err := Prepare(client, cfg, 5, false)
	require.NoError(t, err)
	assert.Equal(t, "ZUP-42-prd", pair.Production)
	assert.Len(t, sel.Commits, 3)
	assert.Empty(t, sel.Author)
}

func TestPrepareLatestFiltersByUserWithDeepWindow(t *testing.T) {
	cfg := config.DefaultConfig()
	client := &fakeClient{
		branch:   "ZUP-42-prd",
		user:     "alice",
		branches: map[string]bool{"ZUP-42-prd": true, "ZUP-42-hml": true},
		logLines: []string{
			"c3adbee|alice|feat: three",
			"c2adbee|bob|fix: two",
			"c1adbee|alice|feat: one",
		},
	}

	_, sel, err := Prepare(client, cfg, 5, true)
	require.NoError(t, err)
	assert.Equal(t, 100, client.gotLimit)
	assert.Equal(t, "alice", sel.Author)
	require.Len(t, sel.Commits, 2)
	for _, c := range sel.Commits {
		assert.Equal(t, "alice", c.Author)
	}
}

func TestPrepareMissingBranch(t *testing.T) {
	cfg := config.DefaultConfig()
	client := &fakeClient{
		branch:   "ZUP-42-prd",
		branches: map[string]bool{"ZUP-42-prd": true},
	}

	_, _, err := Prepare(client, cfg, 5, false)
	var notFound *BranchNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ZUP-42-hml", notFound.Branch)
}

func TestPrepareBadBranchFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	client := &fakeClient{branch: "main"}

	_, _, err := Prepare(client, cfg, 5, false)
	var formatErr *BranchFormatError
	require.ErrorAs(t, err, &formatErr)
}

// Running the same listing twice against unchanged state yields identical
// output; selection has no hidden state.
func TestSelectIsIdempotent(t *testing.T) {
	client := &fakeClient{logLines: []string{
		"c2adbee|alice|feat: two",
		"c1adbee|bob|feat: one",
	}}
	pair := models.BranchPair{Production: "p", Homologation: "h"}

	first, err := Select(client, pair, 5, "")
	require.NoError(t, err)
	second, err := Select(client, pair, 5, "")
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("%v", first), fmt.Sprintf("%v", second))
}
