package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/admissions/internal/cli"
	"github.com/alexanderramin/admissions/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Config: config.LoadConfig(),
		Stderr: os.Stderr,
	}

	// Prompts and the browser need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	return cli.NewRootCmd(app).Execute()
}
