package runner

import "go.trai.ch/conform/internal/core/ports"

var _ ports.RuleContext = (*WorkspaceContext)(nil)

// WorkspaceContext is the minimal rule context: a workspace root.
type WorkspaceContext struct {
	root string
}

// NewWorkspaceContext creates a RuleContext rooted at the given directory.
func NewWorkspaceContext(root string) *WorkspaceContext {
	return &WorkspaceContext{root: root}
}

// WorkspaceRoot returns the absolute workspace root path.
func (c *WorkspaceContext) WorkspaceRoot() string {
	return c.root
}
