// Package tuisvc provides the real implementation of ports.TUIService.
package tuisvc

import (
	"bytes"
	"strings"

	"github.com/mcdonaldj/filecheck/internal/checker"
	"github.com/mcdonaldj/filecheck/internal/config"
	"github.com/mcdonaldj/filecheck/internal/diag"
	"github.com/mcdonaldj/filecheck/internal/ports"
)

// Service implements ports.TUIService on top of a checker.
// It holds no per-call state, so Check and Create may run from concurrent commands.
type Service struct {
	fs ports.FileSystem
}

// New creates a new TUI service backed by fsys.
func New(fsys ports.FileSystem) *Service {
	return &Service{fs: fsys}
}

// LoadConfig loads the application configuration.
func (s *Service) LoadConfig() (*config.Config, error) {
	return config.Load()
}

func (s *Service) checker(cfg *config.Config, sink ports.DiagnosticSink) *checker.Checker {
	chk := checker.New(s.fs, sink)
	chk.CreateParents = cfg.CreateParents
	return chk
}

// Check runs CheckAndOpen on path, with ~ expanded.
func (s *Service) Check(cfg *config.Config, path string) ports.TUICheckResult {
	result := ports.TUICheckResult{Path: path}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		result.Kind = checker.IoFailure.String()
		result.Error = err
		return result
	}

	var diagnostic bytes.Buffer
	attempt, err := s.checker(cfg, diag.NewWriterSink(&diagnostic)).CheckAndOpen(expanded)
	result.Existed = attempt.Existed
	result.Opened = attempt.Opened
	result.Kind = attempt.Kind.String()
	result.Error = err
	result.Diagnostic = strings.TrimSpace(diagnostic.String())
	return result
}

// Create runs CreateIfAbsent on path, with ~ expanded.
func (s *Service) Create(cfg *config.Config, path string) ports.TUICreateResult {
	result := ports.TUICreateResult{Path: path}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		result.Error = err
		return result
	}

	created, err := s.checker(cfg, nil).CreateIfAbsent(expanded)
	if err != nil {
		result.Error = err
		return result
	}
	result.Created = created == checker.Created
	return result
}

// Compile-time check that Service implements ports.TUIService.
var _ ports.TUIService = (*Service)(nil)
