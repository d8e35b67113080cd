// generate.go implements the generate processor: the task's input text is
// sent as a prompt to a local Ollama instance and the model's response
// becomes the task result.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ollama/ollama/api"
)

// generateProcessor returns a processor bound to the given model. The client
// is created per invocation from OLLAMA_HOST; an unreachable Ollama fails
// the task, not the process. The processor honors the caller's context and
// blocks for as long as inference takes — the executor imposes no timeout.
func generateProcessor(model string) Processor {
	return func(ctx context.Context, input string) (string, error) {
		client, err := api.ClientFromEnvironment()
		if err != nil {
			return "", fmt.Errorf("ollama client: %w", err)
		}

		stream := false
		req := &api.GenerateRequest{
			Model:  model,
			Prompt: input,
			Stream: &stream,
		}

		var sb strings.Builder
		err = client.Generate(ctx, req, func(resp api.GenerateResponse) error {
			sb.WriteString(resp.Response)
			return nil
		})
		if err != nil {
			return "", fmt.Errorf("ollama generate: %w", err)
		}
		return sb.String(), nil
	}
}
