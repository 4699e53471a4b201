package mocks

import "github.com/mcdonaldj/filecheck/internal/ports"

// MockDiagnosticSink implements ports.DiagnosticSink for testing.
type MockDiagnosticSink struct {
	// Lines holds every emitted line in order
	Lines []string
}

// NewMockDiagnosticSink creates a new recording sink.
func NewMockDiagnosticSink() *MockDiagnosticSink {
	return &MockDiagnosticSink{}
}

// Emit records the line.
func (m *MockDiagnosticSink) Emit(line string) {
	m.Lines = append(m.Lines, line)
}

// Calls returns how many lines were emitted.
func (m *MockDiagnosticSink) Calls() int {
	return len(m.Lines)
}

// Compile-time check that MockDiagnosticSink implements ports.DiagnosticSink.
var _ ports.DiagnosticSink = (*MockDiagnosticSink)(nil)
