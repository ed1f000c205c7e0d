package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Expect is the outcome a script step asserts.
type Expect string

const (
	ExpectAccepted Expect = "accepted"
	ExpectRejected Expect = "rejected"
	ExpectError    Expect = "error"
)

type ScriptStep struct {
	Command string `yaml:"cmd"`
	Want    Expect `yaml:"want,omitempty"`
}

// Script is a replayable game: a list of REPL lines plus the final state to check.
type Script struct {
	Name        string       `yaml:"name"`
	Steps       []ScriptStep `yaml:"steps"`
	ExpectState string       `yaml:"expect_state,omitempty"`
}

func LoadScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty script", ErrBadCommand)
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return LoadScript(f)
}

func (s *Script) validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: script %q has no steps", ErrBadCommand, s.Name)
	}
	for i, step := range s.Steps {
		if _, err := ParseLine(step.Command); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		switch step.Want {
		case "", ExpectAccepted, ExpectRejected, ExpectError:
		default:
			return fmt.Errorf("%w: step %d: unknown expectation %q", ErrBadCommand, i+1, step.Want)
		}
	}
	switch s.ExpectState {
	case "", "InProgress", "WhiteWon", "BlackWon":
	default:
		return fmt.Errorf("%w: unknown expect_state %q", ErrBadCommand, s.ExpectState)
	}
	return nil
}
