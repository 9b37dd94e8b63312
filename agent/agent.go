package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the interactive assistant: a facilitator chat that routes the
// conversation to its experts.
type Agent struct {
	out         io.Writer
	in          *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
}

// New assembles an agent from the given experts, with a facilitator in
// front of them. Output goes to w, user input comes from r.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		out:         w,
		in:          bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start opens the chat session of every expert and of the facilitator.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range append(a.Experts, a.Facilitator) {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return nil
}

const prompt = "stks> "

// Run is the REPL: it consumes the optional prompts first, then reads
// from the user until 'bye' or EOF.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out, "Welcome to stks market assist. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.out, prompt)

		var input string
		var err error
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			if input != "" {
				// Echo it as if the user had typed it.
				fmt.Fprintln(a.out, input)
			}
		} else if input, err = a.in.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, content.Parts[0].Text)
	}
}
