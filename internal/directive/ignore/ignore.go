// Package ignore handles //tolgeerewrite:ignore directives.
package ignore

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// Directive is the comment text that suppresses a rewrite.
const Directive = "tolgeerewrite:ignore"

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos  token.Pos // Position of the ignore comment
	used bool
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if isDirective(c.Text) {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{pos: c.Pos()}
			}
		}
	}

	return m
}

// isDirective reports whether a comment is an ignore directive.
// Anything after the directive (" - reason", " // note") is free text.
func isDirective(text string) bool {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, Directive) {
		return false
	}

	rest := text[len(Directive):]

	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// ShouldIgnore returns true if the given line is covered by a directive on
// the same line or the line before. The covering entry is marked used.
func (m Map) ShouldIgnore(line int) bool {
	for _, l := range []int{line, line - 1} {
		if entry := m[l]; entry != nil {
			entry.used = true
			return true
		}
	}

	return false
}

// Unused returns the positions of directives that suppressed nothing,
// in source order.
func (m Map) Unused() []token.Pos {
	var unused []token.Pos

	for _, entry := range m {
		if !entry.used {
			unused = append(unused, entry.pos)
		}
	}

	slices.Sort(unused)

	return unused
}
