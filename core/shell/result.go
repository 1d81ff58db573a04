package shell

// Exit status conventions shared by the parser, executor, and commands.
const (
	StatusOK       = 0   // success
	StatusFailure  = 1   // generic failure
	StatusSerious  = 2   // parse error or serious I/O failure
	StatusNotFound = 127 // command not found
)

// Result is the transient outcome of evaluating one AST node: the output
// the subtree captured and its exit status.
type Result struct {
	Stdout string
	Status int
}
