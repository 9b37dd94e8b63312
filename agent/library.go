package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library dispatches a function call from the model to local code.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is local code the model can call: a declaration the model
// reads and the call serving it.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary builds the dispatcher over a set of functions.
func NewLibrary[T Function](functions []T) Library {
	byName := make(map[string]T, len(functions))
	for _, f := range functions {
		byName[f.Declaration().Name] = f
	}
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		f, known := byName[call.Name]
		if !known {
			return &genai.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: map[string]any{"error": fmt.Sprintf("unknown function %s", call.Name)},
			}
		}
		return f.Call(ctx, call.ID, call.Args)
	}
}

// NewDeclaration collects the declarations of a set of functions.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	declarations := make([]*genai.FunctionDeclaration, len(functions))
	for i, f := range functions {
		declarations[i] = f.Declaration()
	}
	return declarations
}
