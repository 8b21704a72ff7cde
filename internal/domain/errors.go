package domain

import "errors"

var (
	ErrNoRepositories = errors.New("no repositories to aggregate")
	ErrNotFound       = errors.New("account not found")
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrRemote         = errors.New("unexpected response from remote")
	ErrTimedOut       = errors.New("request timed out")
	ErrTransport      = errors.New("request failed")
)
