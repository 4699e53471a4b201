// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mcdonaldj/filecheck/internal/adapters/osfs"
	"github.com/mcdonaldj/filecheck/internal/checker"
	"github.com/mcdonaldj/filecheck/internal/config"
	"github.com/mcdonaldj/filecheck/internal/diag"
)

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
	ConfigPath() (string, error)
	DefaultConfig() *config.Config
}

// FileService provides the file check and create operations for the CLI.
type FileService interface {
	CheckAndOpen(path string) (checker.Attempt, error)
	CreateIfAbsent(path string) (checker.Creation, error)
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error, also receives log output
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	ConfigSvc ConfigService
	FileSvc   FileService

	// Color functions (can be disabled for testing)
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	gray   func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		green:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		cyan:    color.New(color.FgCyan).SprintFunc(),
		gray:    color.New(color.FgHiBlack).SprintFunc(),
		red:     color.New(color.FgRed).SprintFunc(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Exit:    func(code int) {},
		green:   noColor,
		yellow:  noColor,
		cyan:    noColor,
		gray:    noColor,
		red:     noColor,
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) Load() (*config.Config, error) { return config.Load() }
func (d *defaultConfigService) Save(cfg *config.Config) error { return cfg.Save() }
func (d *defaultConfigService) ConfigPath() (string, error)   { return config.ConfigPath() }
func (d *defaultConfigService) DefaultConfig() *config.Config { return config.DefaultConfig() }

func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

// fileSvc returns the injected FileService or a checker on the real filesystem
// whose diagnostics go to a logger built from cfg.
func (c *CLI) fileSvc(cfg *config.Config) (FileService, error) {
	if c.FileSvc != nil {
		return c.FileSvc, nil
	}
	logger, err := diag.NewLogger(c.Err, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	chk := checker.New(osfs.New(), diag.NewLogrusSink(logger, "checker"))
	chk.CreateParents = cfg.CreateParents
	return chk, nil
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	if len(c.Args) < 2 {
		fmt.Fprintln(c.Out, "No command specified. Use 'filecheck help' for usage.")
		return
	}

	switch c.Args[1] {
	case "check":
		c.RunCheck()
	case "create":
		c.RunCreate()
	case "run":
		c.RunAll()
	case "init":
		c.InitConfig()
	case "version", "-v", "--version":
		fmt.Fprintf(c.Out, "filecheck v%s\n", c.Version)
	case "help", "-h", "--help":
		c.PrintUsage()
	default:
		fmt.Fprintf(c.Err, "Unknown command: %s\n", c.Args[1])
		c.PrintUsage()
		c.Exit(1)
	}
}

// PrintUsage prints the help message.
func (c *CLI) PrintUsage() {
	fmt.Fprintln(c.Out, `filecheck - File existence and access checker

Usage:
  filecheck                     Launch interactive TUI
  filecheck ui                  Launch interactive TUI
  filecheck check [path]        Check that a file exists and can be opened (default: target)
  filecheck create [path]       Create an empty file if absent (default: create_path)
  filecheck run                 Create create_path, then check target
  filecheck init                Create default config file
  filecheck version, -v         Show version
  filecheck help, -h            Show this help

Config: ~/.filecheck/config.yaml`)
}

// InitConfig creates the default config file.
func (c *CLI) InitConfig() {
	svc := c.configSvc()
	if err := svc.Save(svc.DefaultConfig()); err != nil {
		fmt.Fprintf(c.Err, "Error saving config: %v\n", err)
		c.Exit(1)
		return
	}
	path, err := svc.ConfigPath()
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}
	fmt.Fprintf(c.Out, "Created config at %s\n", path)
}

// setup loads config and the file service, exiting on failure.
func (c *CLI) setup() (*config.Config, FileService, bool) {
	cfg, err := c.configSvc().Load()
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return nil, nil, false
	}
	svc, err := c.fileSvc(cfg)
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return nil, nil, false
	}
	return cfg, svc, true
}

// pathArg returns the command's path argument or fallback, with ~ expanded.
func (c *CLI) pathArg(fallback string) (string, error) {
	path := fallback
	if len(c.Args) > 2 {
		path = c.Args[2]
	}
	return config.ExpandPath(path)
}

// RunCheck checks a single file and applies the exit policy.
func (c *CLI) RunCheck() {
	cfg, svc, ok := c.setup()
	if !ok {
		return
	}
	path, err := c.pathArg(cfg.Target)
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}

	if code := c.check(cfg, svc, path); code != 0 {
		c.Exit(code)
	}
}

// RunCreate creates a file if it is absent.
func (c *CLI) RunCreate() {
	cfg, svc, ok := c.setup()
	if !ok {
		return
	}
	path, err := c.pathArg(cfg.CreatePath)
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}

	if !c.create(svc, path) {
		c.Exit(1)
	}
}

// RunAll creates create_path, checks an absent path, then checks target.
func (c *CLI) RunAll() {
	cfg, svc, ok := c.setup()
	if !ok {
		return
	}
	createPath, err := config.ExpandPath(cfg.CreatePath)
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}
	target, err := config.ExpandPath(cfg.Target)
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}

	if !c.create(svc, createPath) {
		c.Exit(1)
		return
	}

	// An absent path always classifies as invalid input; report it and carry on
	c.check(cfg, svc, "")
	fmt.Fprintln(c.Out)

	fmt.Fprintf(c.Out, "%s Checking %s...\n", c.cyan("=>"), target)
	if code := c.check(cfg, svc, target); code != 0 {
		c.Exit(code)
	}
}

func (c *CLI) create(svc FileService, path string) bool {
	result, err := svc.CreateIfAbsent(path)
	if err != nil {
		fmt.Fprintf(c.Err, "%s Create failed: %v\n", c.red("x"), err)
		return false
	}
	switch result {
	case checker.Created:
		fmt.Fprintf(c.Out, "%s File created successfully: %s\n", c.green("*"), path)
	case checker.AlreadyExists:
		fmt.Fprintf(c.Out, "%s File already exists: %s\n", c.gray("-"), path)
	}
	return true
}

// check runs one check, prints the outcome and returns the exit code the caller should use.
func (c *CLI) check(cfg *config.Config, svc FileService, path string) int {
	_, err := svc.CheckAndOpen(path)
	switch checker.KindOf(err) {
	case checker.KindNone:
		fmt.Fprintf(c.Out, "%s I'm good to go: %s\n", c.green("*"), path)
		return 0
	case checker.InvalidInput:
		fmt.Fprintf(c.Out, "%s BAD DATA! %v\n", c.yellow("!"), err)
		return 2
	case checker.NotFound:
		fmt.Fprintf(c.Out, "%s File does not exist: %s\n", c.red("x"), path)
		if cfg.ExitOnMissing {
			fmt.Fprintln(c.Out, "Quitting application, go figure it out")
			return 1
		}
		return 0
	default:
		fmt.Fprintf(c.Err, "%s Check failed: %v\n", c.red("x"), err)
		return 1
	}
}
