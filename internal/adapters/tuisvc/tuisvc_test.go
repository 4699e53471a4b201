package tuisvc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mcdonaldj/filecheck/internal/adapters/osfs"
	"github.com/mcdonaldj/filecheck/internal/checker"
	"github.com/mcdonaldj/filecheck/internal/config"
	"github.com/mcdonaldj/filecheck/internal/mocks"
)

func TestCheck(t *testing.T) {
	mockFS := mocks.NewMockFileSystem()
	mockFS.Files["present.csv"] = []byte{}
	svc := New(mockFS)
	cfg := config.DefaultConfig()

	result := svc.Check(cfg, "present.csv")
	if result.Error != nil {
		t.Fatalf("Check failed: %v", result.Error)
	}
	if !result.Existed || !result.Opened {
		t.Errorf("result = %+v, expected existed and opened", result)
	}
	if result.Kind != "none" {
		t.Errorf("Kind = %q, expected %q", result.Kind, "none")
	}
	if !strings.Contains(result.Diagnostic, `path="present.csv"`) {
		t.Errorf("Diagnostic = %q, expected the checked path", result.Diagnostic)
	}

	result = svc.Check(cfg, "missing.csv")
	if !errors.Is(result.Error, checker.ErrNotFound) {
		t.Errorf("Error = %v, expected ErrNotFound", result.Error)
	}
	if result.Kind != "not_found" {
		t.Errorf("Kind = %q, expected %q", result.Kind, "not_found")
	}
	if !strings.Contains(result.Diagnostic, "missing.csv") {
		t.Errorf("Diagnostic = %q, expected the latest line", result.Diagnostic)
	}
}

func TestCheckConcurrent(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "a.csv")
	if err := os.WriteFile(present, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	svc := New(osfs.New())
	cfg := config.DefaultConfig()

	// Each result carries its own diagnostic even when checks overlap
	paths := []string{present, filepath.Join(dir, "b.csv")}
	var wg sync.WaitGroup
	errs := make(chan string, len(paths))
	for _, p := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				r := svc.Check(cfg, path)
				if !strings.Contains(r.Diagnostic, fmt.Sprintf("path=%q", path)) {
					errs <- r.Diagnostic
					return
				}
			}
		}(p)
	}
	wg.Wait()
	close(errs)
	for d := range errs {
		t.Errorf("Diagnostic = %q belongs to another path", d)
	}
}

func TestCheckExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	mockFS := mocks.NewMockFileSystem()
	mockFS.Files["/home/tester/data.csv"] = []byte{}
	svc := New(mockFS)

	result := svc.Check(config.DefaultConfig(), "~/data.csv")
	if result.Error != nil {
		t.Fatalf("Check failed: %v", result.Error)
	}
	if result.Path != "~/data.csv" {
		t.Errorf("Path = %q, expected the unexpanded path", result.Path)
	}
}

func TestCreate(t *testing.T) {
	mockFS := mocks.NewMockFileSystem()
	svc := New(mockFS)
	cfg := config.DefaultConfig()

	result := svc.Create(cfg, "files/first.txt")
	if result.Error != nil {
		t.Fatalf("Create failed: %v", result.Error)
	}
	if !result.Created {
		t.Error("first Create should report Created")
	}

	result = svc.Create(cfg, "files/first.txt")
	if result.Error != nil {
		t.Fatalf("Create failed: %v", result.Error)
	}
	if result.Created {
		t.Error("second Create should report already existing")
	}
}

func TestCreateWithoutParents(t *testing.T) {
	mockFS := mocks.NewMockFileSystem()
	svc := New(mockFS)
	cfg := config.DefaultConfig()
	cfg.CreateParents = false

	result := svc.Create(cfg, "files/first.txt")
	if !errors.Is(result.Error, os.ErrNotExist) {
		t.Errorf("Error = %v, expected missing parent", result.Error)
	}
}
