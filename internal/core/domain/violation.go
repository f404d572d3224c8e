// Package domain contains the core value types for conform.
package domain

// Violation represents a single reported mismatch between expected and
// actual workspace state.
type Violation struct {
	// WorkspaceViolation is true when the violation applies to the
	// workspace as a whole rather than a specific file or line.
	WorkspaceViolation bool

	// Message is the human-readable description of the mismatch.
	Message string
}

// NewWorkspaceViolation creates a workspace-scoped violation with the given message.
func NewWorkspaceViolation(msg string) Violation {
	return Violation{
		WorkspaceViolation: true,
		Message:            msg,
	}
}
