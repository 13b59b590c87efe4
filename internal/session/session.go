package session

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/footprint-tools/fm/internal/dispatchers"
	"github.com/footprint-tools/fm/internal/domain"
)

const maxLineSize = 1 << 20

// Session reads commands one line at a time and dispatches them.
type Session struct {
	grammar    *dispatchers.Grammar
	dispatcher *Dispatcher
	logger     domain.Logger
}

// New creates a Session.
func New(g *dispatchers.Grammar, d *Dispatcher, logger domain.Logger) *Session {
	return &Session{grammar: g, dispatcher: d, logger: logger}
}

// Run greets the user and processes lines from in until the exit command
// or the end of input, which also runs the exit operation. A command is
// fully handled before the next line is read.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	id := uuid.NewString()
	s.logger.Info("session %s started", id)
	defer s.logger.Info("session %s finished", id)

	s.dispatcher.Exec(ctx, dispatchers.OpGreeting)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for !s.dispatcher.Terminated() && scanner.Scan() {
		s.Handle(ctx, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if !s.dispatcher.Terminated() {
		s.dispatcher.Exec(ctx, dispatchers.OpExit)
	}
	return nil
}

// Handle parses, resolves and dispatches a single input line.
func (s *Session) Handle(ctx context.Context, line string) {
	cmd, err := dispatchers.ParseLine(line)
	if err != nil {
		s.dispatcher.Reject(ctx, err)
		return
	}

	res := dispatchers.Resolve(s.grammar, cmd)
	if !res.Valid {
		s.dispatcher.Reject(ctx, res.Err)
		return
	}

	s.logger.Debug("dispatching %s %v", res.ID, cmd.Args)
	s.dispatcher.Exec(ctx, res.ID, cmd.Args...)
}
