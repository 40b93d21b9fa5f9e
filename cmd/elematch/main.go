package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MartinCastroAlvarez/elematch"
	"github.com/MartinCastroAlvarez/elematch/etree"
	"github.com/MartinCastroAlvarez/elematch/goquery"
	eslog "github.com/MartinCastroAlvarez/elematch/slog"
	"github.com/MartinCastroAlvarez/elematch/sqlite"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the run-history service.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService elematch.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("elematch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'elematch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Logging goes to stderr so stdout stays report-only.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open run-history database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ELEMATCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	deps.Runs = m.RunService
	deps.Opener = eslog.NewLoggingOpener(&extOpener{
		html: goquery.NewOpener(),
		xml:  etree.NewOpener(),
	}, deps.Logger)

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("ELEMATCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "elematch.db"
	}
	dir := filepath.Join(home, ".elematch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "elematch.db")
}

// Ensure extOpener implements elematch.DocumentOpener.
var _ elematch.DocumentOpener = (*extOpener)(nil)

// extOpener selects a parser by file extension: .xml files use the etree
// accessor, everything else is treated as HTML.
type extOpener struct {
	html elematch.DocumentOpener
	xml  elematch.DocumentOpener
}

func (o *extOpener) OpenDocument(path string) (elematch.Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return o.xml.OpenDocument(path)
	}
	return o.html.OpenDocument(path)
}
