package cli

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/calcpad/calcpad/calculator"
	"github.com/calcpad/calcpad/parser"
)

// TokensCmd dumps the token stream and its postfix form, for debugging how
// an expression is read.
type TokensCmd struct {
	Expression string `help:"Expression to tokenize." arg:""`
}

func (cmd *TokensCmd) Run(ctx *kong.Context) error {
	if err := calculator.Validate(cmd.Expression); err != nil {
		return err
	}

	tokens, err := parser.Tokenize(strings.TrimSpace(cmd.Expression))
	if err != nil {
		return err
	}

	printInfof(ctx.Stdout, "tokens:")
	repr.New(ctx.Stdout, repr.Indent("  ")).Println(tokens)

	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		return err
	}

	printInfof(ctx.Stdout, "postfix:")
	repr.New(ctx.Stdout, repr.Indent("  ")).Println(postfix)

	return nil
}
