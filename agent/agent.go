// Package agent implements an AI budgeting assistant that answers questions
// about the current session.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Advisor *Expert
	// Print writes a markdown answer, Fprintln by default.
	Print func(w io.Writer, markdown string)
}

// New creates a new Agent reading the user's questions from r and writing
// the answers to w.
func New(w io.Writer, r io.Reader, advisor *Expert) *Agent {
	return NewFromReader(w, bufio.NewReader(r), advisor)
}

// NewFromReader is like New but shares r with the caller, so that input
// buffered by one is not lost to the other.
func NewFromReader(w io.Writer, r *bufio.Reader, advisor *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       r,
		Advisor: advisor,
		Print:   func(w io.Writer, markdown string) { fmt.Fprintln(w, markdown) },
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. prompts are asked
// first, then questions are read until "bye" or the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if !a.Advisor.Started() {
		if err := a.Advisor.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the budgeting assistant. Type 'bye' to go back.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			line, err := a.r.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(line) == "" {
				fmt.Fprintln(a.w)
				return nil // Clean exit on Ctrl+D
			}
			if err != nil && err != io.EOF {
				return err
			}
			input = line
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.Advisor.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		var answer strings.Builder
		for _, p := range content.Parts {
			answer.WriteString(p.Text)
		}
		a.Print(a.w, answer.String())
	}
}
