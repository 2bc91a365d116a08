package main

import (
	"fmt"
	"log/slog"
	"os"

	sitegenhttp "github.com/jilee1212/sitegen/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	server := sitegenhttp.NewServer(c.Addr, deps.Generator, deps.Templates, deps.Generations, logger)

	fmt.Fprintf(deps.Stdout, "Serving generation API on %s\n", c.Addr)
	return server.Start()
}
