// Package shell drives the interactive dictionary session: a strictly
// sequential prompt, query, commit cycle that repeats until the user
// cancels or a query fails.
package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Dictionary is the query surface the loop drives. Delete is part of
// the gateway contract but has no interactive entry point.
type Dictionary interface {
	Lookup(ctx context.Context, word string) (string, bool, error)
	Insert(ctx context.Context, word string) error
	Update(ctx context.Context, oldWord, newWord string) error
}

// Shell runs the interactive loop over an open dictionary.
type Shell struct {
	in     Prompter
	out    io.Writer
	dict   Dictionary
	logger *slog.Logger
}

// New creates a shell. If logger is nil, a discard logger is used.
func New(in Prompter, out io.Writer, dict Dictionary, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Shell{in: in, out: out, dict: dict, logger: logger}
}

// Banner writes the program banner.
func Banner(w io.Writer) {
	_, _ = fmt.Fprintln(w, "# ========== Dictionary ========== #")
	_, _ = fmt.Fprintln(w, "# Press CTRL+C to quit.")
}

// Run executes the prompt/query cycle until the user cancels or a
// query fails. One failure ends the session; there is no retry.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		if err := s.step(ctx); err != nil {
			return err
		}
	}
}

// step handles one word: look it up, then either offer to add it or
// offer to correct it.
func (s *Shell) step(ctx context.Context) error {
	term, err := s.in.Prompt("What word do you want to add/change: ")
	if err != nil {
		return err
	}

	found, ok, err := s.dict.Lookup(ctx, term)
	if err != nil {
		return err
	}

	if !ok {
		add, err := s.confirm(fmt.Sprintf("'%s' not found. Would you like to add it to the dictionary?\n[y/n] ", term))
		if err != nil {
			return err
		}
		if add {
			if err := s.dict.Insert(ctx, term); err != nil {
				return err
			}
			s.logger.Debug("word inserted", slog.String("word", term))
			_, _ = fmt.Fprintf(s.out, "%s added to the dictionary.\n", term)
		}
		return nil
	}

	update, err := s.confirm(fmt.Sprintf("Found: %s. Would you like to update this word?\n[y/n] ", found))
	if err != nil {
		return err
	}
	if update {
		newWord, err := s.in.Prompt(fmt.Sprintf("Update %s as: ", found))
		if err != nil {
			return err
		}
		if err := s.dict.Update(ctx, found, newWord); err != nil {
			return err
		}
		s.logger.Debug("word updated", slog.String("old", found), slog.String("new", newWord))
		_, _ = fmt.Fprintf(s.out, "Updated %s to %s\n", found, newWord)
	}
	return nil
}

// confirm asks a yes/no question until one of the accepted tokens is
// given, re-prompting once per invalid answer.
func (s *Shell) confirm(prompt string) (bool, error) {
	for {
		answer, err := s.in.Prompt(prompt)
		if err != nil {
			return false, err
		}
		switch answer {
		case "y", "Y", "yes", "Yes":
			return true, nil
		case "n", "N", "no", "No":
			return false, nil
		}
		_, _ = fmt.Fprintln(s.out, "Please answer 'y' or 'yes' for yes, or 'n' or 'no' for no.")
	}
}
