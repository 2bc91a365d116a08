package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/jilee1212/sitegen"
	"github.com/jilee1212/sitegen/decode"
	"github.com/jilee1212/sitegen/fs"
	"github.com/jilee1212/sitegen/gemini"
	"github.com/jilee1212/sitegen/goquery"
	"github.com/jilee1212/sitegen/ollama"
	"github.com/jilee1212/sitegen/pipeline"
	sitegenslog "github.com/jilee1212/sitegen/slog"
	"github.com/jilee1212/sitegen/sqlite"
	"github.com/jilee1212/sitegen/yaml"
	"google.golang.org/genai"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	GenerationService sitegen.GenerationService
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
		kong.Name("sitegen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitegen --help' to see available commands")
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

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEGEN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.GenerationService = sqlite.NewGenerationService(m.DB)
	deps.DB = m.DB
	deps.Generations = m.GenerationService

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	switch cmd {
	case "generate":
		deps.Templates = fs.NewTemplateService("")
		generator, err := m.buildGenerator(ctx, logger, generatorConfig{
			profilesPath: cli.Generate.Profiles,
			ai:           cli.Generate.AI,
			ollamaURL:    cli.Generate.OllamaURL,
			ollamaModel:  cli.Generate.OllamaModel,
			concurrency:  cli.Generate.Concurrency,
		}, stderr)
		if err != nil {
			return err
		}
		deps.Generator = generator
	case "templates":
		deps.Templates = fs.NewTemplateService(cli.Templates.Dir)
	case "serve":
		deps.Templates = fs.NewTemplateService(cli.Serve.TemplateDir)
		generator, err := m.buildGenerator(ctx, logger, generatorConfig{
			profilesPath: cli.Serve.Profiles,
			ai:           cli.Serve.AI,
			ollamaURL:    cli.Serve.OllamaURL,
			ollamaModel:  cli.Serve.OllamaModel,
		}, stderr)
		if err != nil {
			return err
		}
		deps.Generator = generator
	}

	return kongCtx.Run(deps)
}

// generatorConfig collects the flags shared by generate and serve.
type generatorConfig struct {
	profilesPath string
	ai           string
	ollamaURL    string
	ollamaModel  string
	concurrency  int
}

// buildGenerator wires a pipeline generator from configuration.
func (m *Main) buildGenerator(ctx context.Context, logger *slog.Logger, cfg generatorConfig, stderr io.Writer) (*pipeline.Generator, error) {
	profiles := sitegen.DefaultProfiles()
	if cfg.profilesPath != "" {
		loaded, err := yaml.LoadProfiles(cfg.profilesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load profiles from %q: %w", cfg.profilesPath, err)
		}
		profiles = loaded
	}

	var external sitegen.BundleExtractor
	switch cfg.ai {
	case "ollama":
		external = ollama.NewExtractor(cfg.ollamaURL, cfg.ollamaModel)
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		external = gemini.NewExtractor(client)
	}
	if external != nil {
		external = sitegenslog.NewLoggingExtractor(external, logger)
	}

	return &pipeline.Generator{
		Decoder:     decode.NewDecoder(),
		Classifier:  sitegen.NewClassifier(profiles),
		Aggregator:  sitegen.NewAggregator(profiles),
		Injector:    sitegenslog.NewLoggingInjector(goquery.NewInjector(), logger),
		External:    external,
		Generations: m.GenerationService,
		Logger:      logger,
		Concurrency: cfg.concurrency,
	}, nil
}

func defaultDBPath() string {
	if path := os.Getenv("SITEGEN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitegen.db"
	}
	dir := filepath.Join(home, ".sitegen")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitegen.db")
}
