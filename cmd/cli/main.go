package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tasyrkin/filemanipulator/internal/app"
	"github.com/tasyrkin/filemanipulator/internal/cli"
)

// main is the entrypoint for the filemanipulator utility.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, err := cli.Parse(args, outW, errW)
	if err != nil {
		return err
	}

	manipulatorApp := app.NewApp(outW, errW, appConfig)
	return manipulatorApp.Run(context.Background())
}
