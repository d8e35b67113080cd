// processors.go registers the built-in processing routines. Processors are
// plain functions; anything that satisfies the Processor contract can be
// added here or registered by the caller before the service starts.
package main

import (
	"context"
	"fmt"
	"strings"
)

// registerBuiltins populates the registry with the processors shipped with
// the service. Called once at startup; the registry is read-only afterwards.
func registerBuiltins(reg *Registry, cfg Config) {
	reg.Register("echo", echoProcessor)
	reg.Register("word_count", wordCountProcessor)
	reg.Register("code_outline", codeOutlineProcessor)
	reg.Register("generate", generateProcessor(cfg.OllamaModel))
}

// echoProcessor returns its input unchanged.
func echoProcessor(_ context.Context, input string) (string, error) {
	return input, nil
}

// wordCountProcessor reports line, word and character counts for the input.
func wordCountProcessor(_ context.Context, input string) (string, error) {
	lines := 0
	if input != "" {
		lines = strings.Count(input, "\n") + 1
	}
	words := len(strings.Fields(input))
	chars := len([]rune(input))
	return fmt.Sprintf("lines: %d\nwords: %d\nchars: %d", lines, words, chars), nil
}
