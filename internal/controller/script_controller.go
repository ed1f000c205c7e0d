package controller

import (
	"errors"
	"fmt"

	"github.com/benbeisheim/falconchess/internal/command"
	"go.uber.org/zap"
)

var ErrScriptFailed = errors.New("script failed")

// RunScript plays s against a fresh game and checks each step's outcome.
func (c *CLIController) RunScript(s *command.Script) error {
	if _, err := c.handleMessage(command.Message{Type: command.MessageTypeNew}); err != nil {
		return err
	}
	c.logger.Info("running script", zap.String("name", s.Name), zap.Int("steps", len(s.Steps)))

	for i, step := range s.Steps {
		fmt.Fprintf(c.out, "%s%s\n", c.prompt, step.Command)
		msg, err := command.ParseLine(step.Command)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := c.handleMessage(msg)
		got := command.ExpectAccepted
		switch {
		case err != nil:
			got = command.ExpectError
			c.sendError(err)
		case res == outcomeRejected:
			got = command.ExpectRejected
		case res == outcomeQuit:
			return nil
		}

		want := step.Want
		if want == "" {
			want = command.ExpectAccepted
		}
		if got != want {
			return fmt.Errorf("%w: step %d %q: got %s, want %s", ErrScriptFailed, i+1, step.Command, got, want)
		}
	}

	if s.ExpectState == "" {
		return nil
	}
	snap, err := c.snapshot()
	if err != nil {
		return err
	}
	if got := snap.State.String(); got != s.ExpectState {
		return fmt.Errorf("%w: final state %s, want %s", ErrScriptFailed, got, s.ExpectState)
	}
	return nil
}
