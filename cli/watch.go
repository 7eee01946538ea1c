package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/calcpad/calcpad/calculator"
)

// debounceDelay coalesces bursts of filesystem events into one re-evaluation.
const debounceDelay = 100 * time.Millisecond

// WatchCmd evaluates every expression in a worksheet file and re-evaluates
// the whole file whenever it changes on disk.
type WatchCmd struct {
	File string `help:"Worksheet file with one expression per line." arg:"" type:"existingfile"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	absPath, err := filepath.Abs(cmd.File)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	evaluate := func() {
		printInfof(ctx.Stdout, "evaluating %s", absPath)
		if err := evaluateWorksheet(ctx.Stdout, absPath); err != nil {
			printError(ctx.Stderr, err.Error())
		}
	}

	evaluate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file itself so editors that
	// replace the file on save (rename + create) keep being observed.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	printInfof(ctx.Stdout, "watching %s (ctrl+c to stop)", absPath)

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-runCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceDelay)

		case <-debounce.C:
			evaluate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

// evaluateWorksheet evaluates each non-blank line of the file. Lines starting
// with "#" are comments. Failed lines are reported but do not stop the run.
func evaluateWorksheet(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	failed := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := calculator.Evaluate(line)
		if err != nil {
			printError(w, fmt.Sprintf("%s: %s", line, err.Error()))
			failed++
			continue
		}

		_, _ = fmt.Fprintf(w, "  %s = %s\n", line, resultStyle.Render(calculator.FormatResult(result)))
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if failed > 0 {
		printError(w, fmt.Sprintf("%d line(s) failed", failed))
	} else {
		printSuccess(w, "worksheet evaluated")
	}
	return nil
}
