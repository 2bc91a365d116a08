package main

import (
	"context"
	"io"

	"github.com/jilee1212/sitegen"
	"github.com/jilee1212/sitegen/pipeline"
	"github.com/jilee1212/sitegen/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Generations sitegen.GenerationService
	Templates   sitegen.TemplateService
	Generator   *pipeline.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate  GenerateCmd  `cmd:"" help:"Generate a site from uploaded company files"`
	List      ListCmd      `cmd:"" help:"List past generations"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a generation record"`
	Templates TemplatesCmd `cmd:"" help:"List available templates"`
	Serve     ServeCmd     `cmd:"" help:"Run the HTTP generation API"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Files       []string `arg:"" help:"Company files to process (documents, images, videos)"`
	Template    string   `short:"t" default:"default" help:"Template name"`
	Out         string   `short:"o" default:"site" help:"Output directory name"`
	OutBase     string   `default:"." help:"Parent directory for the output"`
	BaseURL     string   `help:"Site base URL used in the sitemap"`
	Profiles    string   `short:"P" help:"YAML file with section keyword profiles"`
	AI          string   `default:"ollama" enum:"ollama,gemini,off" help:"External analysis backend"`
	OllamaURL   string   `help:"Ollama server URL (default http://localhost:11434)"`
	OllamaModel string   `help:"Ollama model name (default llama3.1:8b)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent file processing limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Company string `help:"Filter by company name"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Generation ID"`
	Force bool   `help:"Confirm deletion"`
}

// TemplatesCmd is the "templates" subcommand.
type TemplatesCmd struct {
	Dir string `help:"Template directory"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string `default:":8080" help:"Listen address"`
	TemplateDir string `help:"Template directory"`
	Profiles    string `short:"P" help:"YAML file with section keyword profiles"`
	AI          string `default:"ollama" enum:"ollama,gemini,off" help:"External analysis backend"`
	OllamaURL   string `help:"Ollama server URL (default http://localhost:11434)"`
	OllamaModel string `help:"Ollama model name (default llama3.1:8b)"`
}
