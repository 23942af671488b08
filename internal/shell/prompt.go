package shell

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrCancelled reports that the user ended the session with an
// interrupt or end-of-input.
var ErrCancelled = errors.New("session cancelled")

// Prompter reads answers from the user. Implementations return
// ErrCancelled when input is interrupted.
type Prompter interface {
	// Prompt displays msg and reads one line.
	Prompt(msg string) (string, error)

	// PromptSecret displays msg and reads one line without echo.
	PromptSecret(msg string) (string, error)
}

// ReadlinePrompter adapts a readline instance to the Prompter
// interface.
type ReadlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter initializes a terminal line reader.
func NewReadlinePrompter() (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// Prompt displays msg and reads one line, trimmed of surrounding
// whitespace.
func (p *ReadlinePrompter) Prompt(msg string) (string, error) {
	p.rl.SetPrompt(msg)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptSecret displays msg and reads one line without echoing it.
func (p *ReadlinePrompter) PromptSecret(msg string) (string, error) {
	b, err := p.rl.ReadPassword(msg)
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Close releases the terminal.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}
