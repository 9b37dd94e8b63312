package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Expert is one chat session with a specialized system prompt and,
// optionally, a library of local functions it can call.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	Library     Library
	chat        *genai.Chat
}

// Start opens the expert's chat session on the client.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("starting expert %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Ask sends the parts to the expert and resolves any function calls it
// makes along the way, until the expert answers with text.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	for {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return nil, err
		}
		content := firstContent(resp)
		if content == nil {
			return nil, fmt.Errorf("no response from expert %s", e.Name)
		}

		call := content.Parts[0].FunctionCall
		if call == nil {
			return content, nil
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s cannot serve function call %s", e.Name, call.Name)
		}
		// Execution errors travel back to the model inside the response.
		parts = []*genai.Part{{FunctionResponse: e.Library(ctx, call)}}
	}
}

func firstContent(resp *genai.GenerateContentResponse) *genai.Content {
	if len(resp.Candidates) == 0 {
		return nil
	}
	c := resp.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return nil
	}
	return c
}

// Declaration exposes the expert itself as a callable function, so a
// facilitator can route questions to it.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call answers a routed question, as the counterpart of Declaration.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out := &genai.FunctionResponse{ID: id, Name: e.Name, Response: map[string]any{}}

	question, ok := args["question"].(string)
	if !ok {
		out.Response["error"] = fmt.Sprintf("expected a string question, got %T", args["question"])
		return out
	}
	answer, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		out.Response["error"] = fmt.Sprintf("asking the expert failed: %v", err)
		return out
	}

	text := answer.Parts[0].Text
	log.Printf("Expert %q: \n        %q\n        %q", e.Name, question, text)
	out.Response["output"] = text
	return out
}
