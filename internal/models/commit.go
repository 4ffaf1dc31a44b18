package models

import "strings"

// Commit is one record of the exclusive-log listing, parsed from a
// "hash|author|subject" line of git log output.
type Commit struct {
	// ShortHash is the abbreviated commit hash (%h)
	ShortHash string
	// Author is the author display name (%an)
	Author string
	// Subject is the first line of the commit message (%s)
	Subject string
	// Raw holds the original log line for entries that could not be
	// parsed (e.g. unexpected formats). Such entries are display-only.
	Raw string
}

// ParseCommit parses one line of |-delimited log output. Lines with fewer
// than three fields become pass-through records carrying only Raw.
func ParseCommit(line string) Commit {
	parts := strings.SplitN(line, "|", 3)
	if len(parts) < 3 {
		return Commit{Raw: line}
	}
	return Commit{
		ShortHash: parts[0],
		Author:    parts[1],
		Subject:   parts[2],
	}
}

// IsPassthrough reports whether this record is display-only text that must
// never be selected for cherry-picking.
func (c Commit) IsPassthrough() bool {
	return c.ShortHash == ""
}
