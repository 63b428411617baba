package scene

import "fmt"

// EvalError reports a statement that parsed but cannot be evaluated,
// such as an unknown font or an out-of-range option.
type EvalError struct {
	Line      int
	Column    int
	Statement string
	Reason    string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("scene: %d:%d: %s: %s", e.Line, e.Column, e.Statement, e.Reason)
}
