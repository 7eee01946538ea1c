package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/calcpad/calcpad/calculator"
	"github.com/calcpad/calcpad/output"
	"github.com/calcpad/calcpad/telemetry"
)

type EvalCmd struct {
	Expressions []string `help:"Expressions to evaluate (prompts when omitted on a terminal)." arg:"" optional:""`
}

func (cmd *EvalCmd) Run(ctx *kong.Context, globals *Globals) error {
	expressions := cmd.Expressions
	if len(expressions) == 0 {
		expr, err := promptExpression()
		if err != nil {
			return err
		}
		expressions = []string{expr}
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var evalTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				evalTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		evalTimer = collector.Start(fmt.Sprintf("eval (%d expression(s))", len(expressions)))

		defer reportTelemetry()
	}

	failed := 0
	for _, expr := range expressions {
		result, err := calculator.EvaluateContext(runCtx, expr)
		if err != nil {
			printError(ctx.Stderr, fmt.Sprintf("%s: %s", expr, err.Error()))
			failed++
			continue
		}

		display := calculator.FormatResult(result)
		if len(expressions) > 1 {
			_, _ = fmt.Fprintf(ctx.Stdout, "%s = %s\n", expr, resultStyle.Render(display))
		} else {
			_, _ = fmt.Fprintln(ctx.Stdout, resultStyle.Render(display))
		}
	}

	if failed > 0 {
		reportTelemetry()
		os.Exit(1)
	}

	return nil
}
