package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/calcpad/calcpad/tui"
)

// ReplCmd starts the full-screen interactive calculator.
type ReplCmd struct{}

func (cmd *ReplCmd) Run(ctx *kong.Context) error {
	if !isTerminal() {
		return fmt.Errorf("the interactive calculator requires a terminal")
	}

	return tui.Run()
}
