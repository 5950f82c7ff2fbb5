package orchestrator

import "errors"

var (
	ErrEmptyMessage      = errors.New("message is empty")
	ErrCompletionFailed  = errors.New("completion request failed")
	ErrTurnLimitExceeded = errors.New("tool step limit exceeded for this turn")
)
