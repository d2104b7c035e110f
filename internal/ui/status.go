package ui

import (
	"fmt"

	"lifeboard/internal/session"
)

// StatusLine summarises the session for display.
func StatusLine(sess *session.Session) string {
	state := "paused"
	if sess.Running() {
		state = "running"
	}
	return fmt.Sprintf("gen %d  pop %d  %s", sess.Generation(), sess.Population(), state)
}
