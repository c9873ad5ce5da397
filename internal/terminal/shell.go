// Package terminal runs a review session on a plain text terminal.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chen-yiru/Vocabulary-review/internal/input"
	"github.com/chen-yiru/Vocabulary-review/internal/service"
	"github.com/chen-yiru/Vocabulary-review/internal/session"
	"go.uber.org/zap"
)

const (
	source = "terminal"

	hintInProgress = "[space] show  [←/h] didn't know  [→/l] knew it  [q] quit"
	hintTerminal   = "[r] restart  [q] quit"
)

type Shell struct {
	engine  *session.Engine
	adapter *input.Adapter
	in      io.Reader
	out     io.Writer
	log     *zap.Logger
}

func NewShell(engine *session.Engine, adapter *input.Adapter, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	return &Shell{
		engine:  engine,
		adapter: adapter,
		in:      in,
		out:     out,
		log:     log,
	}
}

// Run loads req and feeds typed shortcuts to the engine until the user
// quits, the input ends or ctx is done.
func (s *Shell) Run(ctx context.Context, req session.Request) error {
	s.adapter.Attach()
	defer s.adapter.Detach()

	if err := s.engine.Load(ctx, req); err != nil {
		s.log.Warn("failed to load review session", zap.Error(err))
	}
	s.render()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if quit := s.handleLine(ctx, line); quit {
				return nil
			}
		}
	}
}

func (s *Shell) handleLine(ctx context.Context, line string) bool {
	text := strings.TrimSpace(line)
	switch strings.ToLower(text) {
	case "q", "quit", "exit":
		return true
	case "":
		text = "space"
	}

	key, ok := input.ParseKey(text)
	if !ok {
		s.printf("unknown command %q\n", text)
		return false
	}

	cmd, err := s.adapter.HandleKey(ctx, input.KeyEvent{Source: source, Code: key})
	switch {
	case errors.Is(err, session.ErrCommandRejected):
		s.printf("not available right now\n")
		return false
	case errors.Is(err, session.ErrAnswerInFlight):
		s.printf("still saving the previous answer\n")
		return false
	case err != nil:
		s.log.Debug("command failed", zap.Stringer("command", cmd), zap.Error(err))
	}

	if cmd != input.CommandNone {
		s.render()
	}
	return false
}

func (s *Shell) render() {
	s.printf("\n%s\n", service.RenderSession(s.engine))

	if s.engine.Phase().Terminal() {
		s.printf("%s\n", hintTerminal)
	} else {
		s.printf("%s\n", hintInProgress)
	}
}

func (s *Shell) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.log.Debug("failed to write output", zap.Error(err))
	}
}
