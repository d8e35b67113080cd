// outline.go implements the code_outline processor: a static outline of the
// functions, methods and types declared in a piece of Go source.
package main

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// codeOutlineProcessor parses the input as a Go source file and lists its
// top-level declarations with line numbers. Unparseable input produces a
// report, not a failure: the task still completes, telling the submitter
// what went wrong with their code.
func codeOutlineProcessor(_ context.Context, input string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "input.go", input, 0)
	if err != nil {
		return fmt.Sprintf("failed to parse code: %v", err), nil
	}

	var report []string
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			line := fset.Position(d.Pos()).Line
			if d.Recv != nil && len(d.Recv.List) == 1 {
				report = append(report, fmt.Sprintf("method: (%s) %s (line %d)",
					receiverType(d.Recv.List[0].Type), d.Name.Name, line))
			} else {
				report = append(report, fmt.Sprintf("func: %s (line %d)", d.Name.Name, line))
			}
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				line := fset.Position(ts.Pos()).Line
				report = append(report, fmt.Sprintf("type: %s (line %d)", ts.Name.Name, line))
			}
		}
	}
	if len(report) == 0 {
		return "no functions or types found", nil
	}
	return strings.Join(report, "\n"), nil
}

// receiverType renders a method receiver type, unwrapping a pointer.
func receiverType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return "*" + receiverType(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return receiverType(t.X)
	default:
		return fmt.Sprintf("%T", expr)
	}
}
