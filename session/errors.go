// errors.go — sentinel errors for the session package.
package session

import "errors"

// ErrAlreadyStarted is returned by Start if the Session is not in its
// pre-start state.
var ErrAlreadyStarted = errors.New("session: already started")

// ErrNotInProgress is returned by operations that require InProgress, such
// as Pause.
var ErrNotInProgress = errors.New("session: not in progress")
