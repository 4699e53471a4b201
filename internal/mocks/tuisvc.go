package mocks

import (
	"github.com/mcdonaldj/filecheck/internal/config"
	"github.com/mcdonaldj/filecheck/internal/ports"
)

// MockTUIService implements ports.TUIService for testing.
type MockTUIService struct {
	// ConfigResult is the config to return from LoadConfig
	ConfigResult *config.Config
	// ConfigError is the error to return from LoadConfig
	ConfigError error

	// CheckResults maps paths to check results; unknown paths report not_found
	CheckResults map[string]ports.TUICheckResult
	// CreateResults maps paths to create results; unknown paths report Created
	CreateResults map[string]ports.TUICreateResult

	// Call tracking
	LoadConfigCalls int
	CheckCalls      []string
	CreateCalls     []string
}

// NewMockTUIService creates a new mock TUI service.
func NewMockTUIService() *MockTUIService {
	return &MockTUIService{
		ConfigResult:  &config.Config{},
		CheckResults:  make(map[string]ports.TUICheckResult),
		CreateResults: make(map[string]ports.TUICreateResult),
	}
}

// LoadConfig loads the application configuration.
func (m *MockTUIService) LoadConfig() (*config.Config, error) {
	m.LoadConfigCalls++
	if m.ConfigError != nil {
		return nil, m.ConfigError
	}
	return m.ConfigResult, nil
}

// Check returns the configured result for path.
func (m *MockTUIService) Check(cfg *config.Config, path string) ports.TUICheckResult {
	m.CheckCalls = append(m.CheckCalls, path)
	if result, ok := m.CheckResults[path]; ok {
		return result
	}
	return ports.TUICheckResult{Path: path, Kind: "not_found"}
}

// Create returns the configured result for path.
func (m *MockTUIService) Create(cfg *config.Config, path string) ports.TUICreateResult {
	m.CreateCalls = append(m.CreateCalls, path)
	if result, ok := m.CreateResults[path]; ok {
		return result
	}
	return ports.TUICreateResult{Path: path, Created: true}
}

// Compile-time check that MockTUIService implements ports.TUIService.
var _ ports.TUIService = (*MockTUIService)(nil)
