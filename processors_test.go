package main

import (
	"context"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// word_count
// ---------------------------------------------------------------------------

func TestWordCount(t *testing.T) {
	out, err := wordCountProcessor(context.Background(), "one two three\nfour five")
	if err != nil {
		t.Fatalf("word_count: %v", err)
	}
	if !strings.Contains(out, "lines: 2") {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "words: 5") {
		t.Fatalf("expected 5 words, got %q", out)
	}
}

func TestWordCountEmpty(t *testing.T) {
	out, err := wordCountProcessor(context.Background(), "")
	if err != nil {
		t.Fatalf("word_count: %v", err)
	}
	if !strings.Contains(out, "lines: 0") || !strings.Contains(out, "words: 0") || !strings.Contains(out, "chars: 0") {
		t.Fatalf("expected all zero counts, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// code_outline
// ---------------------------------------------------------------------------

const outlineSample = `package sample

type Greeter struct{}

func (g *Greeter) Greet(name string) string {
	return "hi " + name
}

func Add(a, b int) int {
	return a + b
}
`

func TestCodeOutline(t *testing.T) {
	out, err := codeOutlineProcessor(context.Background(), outlineSample)
	if err != nil {
		t.Fatalf("code_outline: %v", err)
	}
	if !strings.Contains(out, "type: Greeter (line 3)") {
		t.Fatalf("expected Greeter type with line, got %q", out)
	}
	if !strings.Contains(out, "method: (*Greeter) Greet (line 5)") {
		t.Fatalf("expected Greet method with receiver, got %q", out)
	}
	if !strings.Contains(out, "func: Add (line 9)") {
		t.Fatalf("expected Add func with line, got %q", out)
	}
}

func TestCodeOutlineUnparseable(t *testing.T) {
	out, err := codeOutlineProcessor(context.Background(), "not go code {{{")
	if err != nil {
		t.Fatal("unparseable input should still complete the task")
	}
	if !strings.Contains(out, "failed to parse code") {
		t.Fatalf("expected parse report, got %q", out)
	}
}

func TestCodeOutlineNoDeclarations(t *testing.T) {
	out, err := codeOutlineProcessor(context.Background(), "package empty\n\nvar x = 1\n")
	if err != nil {
		t.Fatalf("code_outline: %v", err)
	}
	if out != "no functions or types found" {
		t.Fatalf("unexpected output %q", out)
	}
}

// ---------------------------------------------------------------------------
// registerBuiltins wires every shipped processor
// ---------------------------------------------------------------------------

func TestRegisterBuiltins(t *testing.T) {
	reg := NewRegistry()
	registerBuiltins(reg, Config{OllamaModel: "llama3.2"})

	for _, name := range []string{"echo", "word_count", "code_outline", "generate"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Fatalf("builtin %q not registered", name)
		}
	}
}
