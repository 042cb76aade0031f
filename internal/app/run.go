package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tasyrkin/filemanipulator/internal/ctxlog"
	"github.com/tasyrkin/filemanipulator/internal/processor"
)

// maxLineSize bounds a single input line. A longer line fails the run like
// any other read error.
const maxLineSize = 1 << 20

// Run executes the main application logic: it opens the configured input
// file, applies the command plan to every line, and writes each changed
// line to the App's output writer. Unchanged lines are suppressed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "file", a.config.FilePath, "commands", len(a.config.Plan))

	file, err := os.Open(a.config.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	if err := a.processLines(ctx, file); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// processLines drains the reader line by line through the command plan.
// Output is buffered and flushed once at the end of the stream.
func (a *App) processLines(ctx context.Context, r io.Reader) error {
	logger := ctxlog.FromContext(ctx)

	out := bufio.NewWriter(a.outW)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	linesRead := 0
	linesEmitted := 0
	for scanner.Scan() {
		linesRead++

		line, changed := processor.Apply(scanner.Text(), a.config.Plan)
		if !changed {
			logger.Debug("Line unchanged, suppressed.", "line", linesRead)
			continue
		}

		linesEmitted++
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("Processing finished.", "lines_read", linesRead, "lines_emitted", linesEmitted)
	return nil
}
