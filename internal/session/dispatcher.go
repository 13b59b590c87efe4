// Package session runs the interactive command loop: it reads lines,
// resolves them against the command grammar and dispatches the result.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/footprint-tools/fm/internal/actions"
	"github.com/footprint-tools/fm/internal/dispatchers"
	"github.com/footprint-tools/fm/internal/domain"
)

// User facing messages.
const (
	msgInvalid = "Invalid input"
	msgFailed  = "Operation failed"
)

// Handler runs one operation. Returned errors are reported by the
// dispatcher and never reach the caller.
type Handler func(ctx context.Context, args []string) error

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithExitFunc replaces os.Exit as the final step of the exit operation.
func WithExitFunc(fn func(code int)) Option {
	return func(d *Dispatcher) {
		d.exit = fn
	}
}

// WithVerbose shows the cause of failed and rejected commands.
func WithVerbose(verbose bool) Option {
	return func(d *Dispatcher) {
		d.verbose = verbose
	}
}

// Dispatcher executes operations by ID through a single path: handler
// lookup, failure boundary and the location line.
type Dispatcher struct {
	sc       *Context
	deps     actions.Deps
	out      domain.OutputWriter
	styler   domain.Styler
	logger   domain.Logger
	handlers map[dispatchers.OperationID]Handler

	exit       func(code int)
	verbose    bool
	terminated bool
}

// NewDispatcher builds the handler table for the session context sc.
func NewDispatcher(sc *Context, app *domain.Application, g *dispatchers.Grammar, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sc: sc,
		deps: actions.Deps{
			FS:      app.FS,
			OS:      app.OS,
			Out:     app.Output,
			Styler:  app.Styler,
			Grammar: g,
		},
		out:     app.Output,
		styler:  app.Styler,
		logger:  app.Logger,
		exit:    os.Exit,
		verbose: app.Verbose,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.handlers = map[dispatchers.OperationID]Handler{
		dispatchers.OpGreeting: d.greet,
		dispatchers.OpInvalid:  d.invalid,
		dispatchers.OpExit:     d.farewell,
	}
	for id, action := range actions.Handlers {
		d.handlers[id] = d.bind(action)
	}

	return d
}

func (d *Dispatcher) bind(action actions.Action) Handler {
	return func(ctx context.Context, args []string) error {
		return action(ctx, d.sc, args, d.deps)
	}
}

// Exec runs the handler for id. Failures are reported as a generic
// message. Unless id is the exit operation, the current location is
// printed afterwards and the output flushed.
func (d *Dispatcher) Exec(ctx context.Context, id dispatchers.OperationID, args ...string) {
	if h, ok := d.handlers[id]; ok {
		if err := invoke(ctx, h, args); err != nil {
			d.fail(id, err)
		}
	} else {
		d.logger.Warn("no handler registered for %q", id)
	}

	if id == dispatchers.OpExit {
		return
	}

	_, _ = d.out.Println(d.styler.Info("You are currently in " + d.sc.Location()))
	_ = d.out.Flush()
}

// Reject reports a line that did not resolve to an operation.
func (d *Dispatcher) Reject(ctx context.Context, reason error) {
	d.logger.Debug("rejected input: %v", reason)

	var args []string
	if reason != nil {
		args = []string{reason.Error()}
	}
	d.Exec(ctx, dispatchers.OpInvalid, args...)
}

// Terminated reports whether the exit operation has run.
func (d *Dispatcher) Terminated() bool {
	return d.terminated
}

// invoke calls h, turning a panic into an error.
func invoke(ctx context.Context, h Handler, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(ctx, args)
}

func (d *Dispatcher) fail(id dispatchers.OperationID, err error) {
	d.logger.Debug("%s failed: %v", id, err)

	_, _ = d.out.Println(d.styler.Error(msgFailed))
	if d.verbose {
		_, _ = d.out.Println(d.styler.Muted(err.Error()))
	}
}

func (d *Dispatcher) greet(context.Context, []string) error {
	_, err := d.out.Printf("Welcome to the File Manager, %s!\n", d.styler.Success(d.sc.UserName()))
	return err
}

// invalid receives the rejection reason, if any, as its only argument.
func (d *Dispatcher) invalid(_ context.Context, args []string) error {
	_, _ = d.out.Println(d.styler.Error(msgInvalid))
	if d.verbose && len(args) > 0 {
		_, _ = d.out.Println(d.styler.Warning(args[0]))
	}
	return nil
}

// farewell prints the goodbye line, flushes pending output and only then
// ends the process.
func (d *Dispatcher) farewell(context.Context, []string) error {
	_, _ = d.out.Printf("Thank you for using File Manager, %s, goodbye!\n", d.styler.Success(d.sc.UserName()))
	if err := d.out.Flush(); err != nil {
		d.logger.Error("flushing output: %v", err)
	}

	d.terminated = true
	d.exit(0)
	return nil
}

// CheckGrammar verifies that every operation in g has a handler and that
// every handler other than the internal ones has a grammar entry.
func (d *Dispatcher) CheckGrammar(g *dispatchers.Grammar) error {
	var errs []error

	for _, id := range g.IDs() {
		if _, ok := d.handlers[id]; !ok {
			errs = append(errs, fmt.Errorf("operation %q has no handler", id))
		}
	}

	ids := make([]string, 0, len(d.handlers))
	for id := range d.handlers {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	for _, id := range ids {
		op := dispatchers.OperationID(id)
		if dispatchers.IsPseudo(op) {
			continue
		}
		if _, ok := g.Descriptor(op); !ok {
			errs = append(errs, fmt.Errorf("handler %q has no grammar entry", op))
		}
	}

	return errors.Join(errs...)
}
