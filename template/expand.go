// Package template turns toolchain templates into argument vectors.
//
// A template is a whitespace separated list of fragments. A fragment may reference tokens as
// `%name%`. The value of a referenced token is expanded as a template itself and spliced into
// the fragment it appears in, so `%prefix%include` yields a single argument while a token whose
// value contains whitespace contributes several arguments.
package template

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrMalformedTemplate is returned for a token reference without a closing `%`.
	ErrMalformedTemplate = errors.New("malformed template")
	// ErrCyclicToken is returned when a token refers to itself, directly or through other tokens.
	ErrCyclicToken = errors.New("cyclic token reference")
)

const delimiter = '%'

// Tokens resolves token names to their values.
type Tokens interface {
	Get(name string) (string, error)
}

// Expander expands templates against a set of tokens.
type Expander struct {
	tokens Tokens
}

// NewExpander creates an Expander resolving references through `tokens`.
func NewExpander(tokens Tokens) *Expander {
	return &Expander{tokens: tokens}
}

// accumulator is the state shared by all nesting levels of a single expansion.
type accumulator struct {
	args     []string
	fragment strings.Builder
	// chain lists the tokens currently being expanded, outermost first.
	chain []string
}

// flush completes the current fragment as an argument, unless it is empty.
func (acc *accumulator) flush() {
	if arg := strings.TrimSpace(acc.fragment.String()); arg != "" {
		acc.args = append(acc.args, arg)
	}
	acc.fragment.Reset()
}

func (acc *accumulator) expanding(name string) bool {
	for _, n := range acc.chain {
		if n == name {
			return true
		}
	}
	return false
}

// Expand resolves every token reference in `tmpl` and splits the result into arguments.
func (e *Expander) Expand(tmpl string) ([]string, error) {
	acc := &accumulator{args: []string{}}
	if err := e.expand(acc, tmpl); err != nil {
		return nil, err
	}
	acc.flush()
	return acc.args, nil
}

// ExpandString is like Expand but joins the arguments with single spaces.
func (e *Expander) ExpandString(tmpl string) (string, error) {
	args, err := e.Expand(tmpl)
	if err != nil {
		return "", err
	}
	return strings.Join(args, " "), nil
}

func (e *Expander) expand(acc *accumulator, tmpl string) error {
	last := 0
	for pos := 0; pos < len(tmpl); pos++ {
		c := tmpl[pos]
		if unicode.IsSpace(rune(c)) {
			acc.fragment.WriteString(tmpl[last:pos])
			acc.flush()
			last = pos + 1
			continue
		}
		if c != delimiter {
			continue
		}

		acc.fragment.WriteString(tmpl[last:pos])
		end := strings.IndexByte(tmpl[pos+1:], delimiter)
		if end < 0 {
			return fmt.Errorf("%w: unterminated token reference at offset %d in '%s'", ErrMalformedTemplate, pos, tmpl)
		}
		name := tmpl[pos+1 : pos+1+end]
		if err := e.expandToken(acc, name); err != nil {
			return err
		}
		pos += end + 1
		last = pos + 1
	}
	acc.fragment.WriteString(tmpl[last:])
	return nil
}

func (e *Expander) expandToken(acc *accumulator, name string) error {
	if acc.expanding(name) {
		chain := append(append([]string{}, acc.chain...), name)
		return fmt.Errorf("%w: %s", ErrCyclicToken, strings.Join(chain, " -> "))
	}
	value, err := e.tokens.Get(name)
	if err != nil {
		return err
	}

	acc.chain = append(acc.chain, name)
	if err := e.expand(acc, value); err != nil {
		return err
	}
	acc.chain = acc.chain[:len(acc.chain)-1]
	return nil
}
