package tool

import "errors"

var (
	// ErrUnknownTool is returned for names outside the closed tool set.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrToolDenied is returned when the calling agent's ACL does not
	// include the tool. Never retryable.
	ErrToolDenied = errors.New("tool denied")

	// ErrToolFailed wraps a dispatch failure after retries are exhausted.
	// Agent-local: recorded on the invocation, never job-fatal by itself.
	ErrToolFailed = errors.New("tool failed")
)
