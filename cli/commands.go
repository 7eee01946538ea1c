package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Eval   EvalCmd   `cmd:"" help:"Evaluate one or more arithmetic expressions."`
	Tokens TokensCmd `cmd:"" help:"Show the token and postfix form of an expression."`
	Watch  WatchCmd  `cmd:"" help:"Evaluate a worksheet file and re-evaluate it on change."`
	Repl   ReplCmd   `cmd:"" help:"Start the interactive calculator."`
}
