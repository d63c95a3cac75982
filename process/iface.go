// Package process reports whether a supported simulator is running.
package process

// Monitor is the liveness capability consulted by the Game view.
type Monitor interface {
	// @return true if a supported simulator process was seen by the most
	//         recent check.
	Running() bool

	// @return the short name of the last simulator seen running ("ETS2",
	//         "ATS"), or "" if none has been seen yet. The name is kept after
	//         the process exits.
	GameName() string
}
