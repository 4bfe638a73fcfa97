package services

import "errors"

var (
	// ErrUpstream covers completion endpoint failures: non-success status,
	// transport errors, and request timeouts.
	ErrUpstream = errors.New("completion upstream error")

	// ErrMalformedResponse means the completion output was not valid JSON
	// after fence stripping.
	ErrMalformedResponse = errors.New("malformed completion response")

	ErrSessionExists     = errors.New("interview session already exists")
	ErrSessionNotFound   = errors.New("interview session not found")
	ErrAnswerOutOfOrder  = errors.New("answer index does not match current question")
	ErrInterviewComplete = errors.New("interview already complete")
)
