package domain

import "errors"

// Domain-specific errors for widget generation and sessions.
var (
	// Generation errors
	ErrNoAgentSelected     = errors.New("no agent selected")
	ErrUnknownArtifactKind = errors.New("unknown artifact kind")

	// Validation errors
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidAgentID  = errors.New("invalid agent id")

	// Agent errors
	ErrAgentNotFound = errors.New("agent not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Runtime errors
	ErrContainerNotFound = errors.New("widget container not found")

	// Clipboard errors
	ErrClipboardWriteFailed = errors.New("clipboard write failed")
)
