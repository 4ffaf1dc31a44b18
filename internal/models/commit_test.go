package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommit(t *testing.T) {
	c := ParseCommit("c1adbee|alice|feat: add the thing")
	assert.Equal(t, "c1adbee", c.ShortHash)
	assert.Equal(t, "alice", c.Author)
	assert.Equal(t, "feat: add the thing", c.Subject)
	assert.False(t, c.IsPassthrough())
}

func TestParseCommitSubjectKeepsPipes(t *testing.T) {
	// only the first two delimiters split; the subject may contain "|"
	c := ParseCommit("c1adbee|alice|feat: a | b | c")
	assert.Equal(t, "feat: a | b | c", c.Subject)
}

func TestParseCommitPassthrough(t *testing.T) {
	for _, line := range []string{
		"Merge branch 'release'",
		"c1adbee|only-author",
		"",
	} {
		c := ParseCommit(line)
		assert.True(t, c.IsPassthrough(), "line %q", line)
		assert.Equal(t, line, c.Raw)
	}
}
