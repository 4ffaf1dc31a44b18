package ui

import (
	"fmt"

	"github.com/wahlandcase/zpick/internal/models"
)

// CommitLine renders one listing entry as "hash | author | subject". The
// author is green when it matches currentUser and red otherwise, so a
// reviewer can tell their own commits at a glance. Pass-through entries are
// rendered verbatim.
func CommitLine(c models.Commit, currentUser string) string {
	if c.IsPassthrough() {
		return c.Raw
	}

	authorStyle := otherAuthorStyle
	if c.Author == currentUser {
		authorStyle = ownAuthorStyle
	}

	return fmt.Sprintf("%s | %s | %s",
		hashStyle.Render(c.ShortHash),
		authorStyle.Render(c.Author),
		c.Subject,
	)
}
