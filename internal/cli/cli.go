package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tasyrkin/filemanipulator/internal/app"
	"github.com/tasyrkin/filemanipulator/internal/command"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageText = `
FileManipulator modifies line fields in the file.

Usage:
  filemanipulator [options] <file_path> [CMD ...]

Arguments:
  <file_path>     - path to the file for manipulation
  [N:u]           - change every line's field N to lower case letters
  [N:U]           - change every line's field N to upper case letters
  [N:RAB]         - replace a character A with B in every line's field N

  Fields are tab-separated and indexed from zero. Commands apply in the
  order given; only changed lines are printed.

  Note: if N does not represent a valid field, the command is not applied

Options:
`

// Parse processes command-line arguments into a populated app.Config.
// Usage and argument errors come back as *ExitError after the usage block
// has been written to outW and any diagnostic to errW; help always carries
// a non-zero exit code.
func Parse(args []string, outW, errW io.Writer) (*app.Config, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("filemanipulator", flag.ContinueOnError)
	flagSet.SetOutput(outW)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(outW, usageText)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &ExitError{Code: 1}
		}
		return nil, &ExitError{Code: 1, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No file path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, &ExitError{Code: 1}
	}
	filePath := flagSet.Arg(0)
	slog.Debug("Input file path determined.", "path", filePath)

	plan, err := command.Parse(flagSet.Args()[1:])
	if err != nil {
		var parseErr *command.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(errW, "Warning: unable to parse argument [%s]\n", parseErr.Arg)
		}
		flagSet.Usage()
		return nil, &ExitError{Code: 1}
	}
	slog.Debug("Command plan constructed.", "commands", len(plan))

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: 1, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, &ExitError{Code: 1, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		FilePath:  filePath,
		Plan:      plan,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "file", filePath)
	return config, nil
}
