package queue

import "errors"

var (
	ErrNilQueue   = errors.New("queue is nil")
	ErrEmptyQueue = errors.New("queue is empty")
)
