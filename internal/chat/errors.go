package chat

import "errors"

var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrCompletionFailed = errors.New("assistant is unavailable, please try again")
)
