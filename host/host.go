package host

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/clibind/argspec"
	"github.com/vk/clibind/bind"
	"github.com/vk/clibind/internal/ctxlog"
	"github.com/vk/clibind/token"
)

// ExitError carries the process exit code a failure should map to. The
// entrypoint is expected to print Message to stderr and exit with Code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string { return e.Message }

// Handler is the operation a successfully bound argument set is delivered to.
type Handler func(ctx context.Context, args *bind.BoundArgs) error

// App describes one hosted command: its name, its documentation, and the
// parameter spec its argument vector binds against.
type App struct {
	Name string

	// Doc is the long description printed above the usage block on -h/--help.
	Doc string

	Spec *argspec.Spec

	// ParamDocs optionally maps parameter names to the one-line descriptions
	// Usage renders. Parameters without an entry get an empty description.
	ParamDocs map[string]string
}

// Run drives one invocation. argv is the full process argument vector
// including the program name. A help request prints the documentation to out
// and returns nil; a binding failure becomes an *ExitError with code 2 and a
// handler failure an *ExitError with code 1, so no error is ever swallowed.
func Run(ctx context.Context, argv []string, app App, out io.Writer, handler Handler) error {
	logger := ctxlog.FromContext(ctx)

	args := argv
	if len(args) > 0 {
		args = args[1:]
	}

	// Help short-circuits before binding, so it works even when the rest of
	// the argument vector would not bind.
	for _, a := range args {
		if a == "-h" || a == "--help" {
			fmt.Fprint(out, Help(app))
			return nil
		}
	}

	positionals, options := token.Tokenize(args)
	logger.Debug("Argument vector tokenized.",
		"positionals", []string(positionals), "options", options.Names())

	bound, err := bind.Bind(positionals, options, app.Spec)
	if err != nil {
		var bindErr *bind.Error
		if errors.As(err, &bindErr) {
			return &ExitError{Code: 2, Message: fmt.Sprintf("%s: %s", app.Name, bindErr)}
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}
	logger.Debug("Arguments bound.",
		"positionals", len(bound.Positionals), "named", len(bound.Named))

	if err := handler(ctx, bound); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		return &ExitError{Code: 1, Message: fmt.Sprintf("%s: %s", app.Name, err)}
	}
	return nil
}
