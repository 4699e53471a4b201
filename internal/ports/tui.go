package ports

import "github.com/mcdonaldj/filecheck/internal/config"

// TUICheckResult contains the outcome of one check for display.
type TUICheckResult struct {
	Path       string
	Existed    bool
	Opened     bool
	Kind       string // error kind name, "none" on success
	Error      error
	Diagnostic string // the diagnostic line the check emitted
}

// TUICreateResult contains the outcome of a create-if-absent.
type TUICreateResult struct {
	Path    string
	Created bool // false means the file already existed
	Error   error
}

// TUIService provides operations needed by the TUI.
// This abstraction allows the TUI to be tested without touching the real filesystem.
type TUIService interface {
	// LoadConfig loads the application configuration.
	LoadConfig() (*config.Config, error)

	// Check verifies that path exists and can be opened.
	Check(cfg *config.Config, path string) TUICheckResult

	// Create creates path if it does not exist yet.
	Create(cfg *config.Config, path string) TUICreateResult
}
