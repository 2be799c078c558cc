// Package tokens holds the symbol table that toolchain templates are expanded against.
//
// The set of token names is fixed when the table is created. Values can be overwritten, but
// new names can never be introduced. Values are templates themselves and may reference other
// tokens as `%name%`.
//
// A Table is not safe for concurrent use. Mutations are expected to happen while options are
// being applied, before any argument vectors are produced.
package tokens

import (
	"errors"
	"fmt"

	"github.com/daedaleanai/lcc/util"
)

// ErrUndefinedToken is returned when reading or writing a name that is not part of the table.
var ErrUndefinedToken = errors.New("undefined token")

// DefaultPrefix is the installation root used until one is derived or configured.
const DefaultPrefix = "/opt/gbdk/"

// Token is a single named value.
type Token struct {
	Name  string
	Value string
}

// Defaults returns the built-in token set.
func Defaults() []Token {
	return []Token{
		{"port", "gbz80"},
		{"plat", "gb"},
		{"sdccbin", "%bindir%"},
		{"cpp", "%sdccbin%sdcpp"},
		{"cppdefault", "-Wall -DSDCC=1 -DSDCC_PORT=%port% -DSDCC_PLAT=%plat% -D%cppmodel%"},
		{"cppmodel", "SDCC_MODEL_SMALL"},
		{"includedefault", "-I%includedir%"},
		{"includedir", "%prefix%include"},
		{"prefix", DefaultPrefix},
		{"comopt", "--noinvariant --noinduction"},
		{"commodel", "small"},
		{"com", "%sdccbin%sdcc"},
		{"comdefault", "-mgbz80 --no-std-crt0 --fsigned-char --use-stdout --c1mode"},
		{"as", "%sdccbin%sdasgb"},
		{"ld", "%bindir%link-%port%"},
		{"libdir", "%prefix%lib/%libmodel%/asxxxx/"},
		{"libmodel", "small"},
		{"bindir", "%prefix%bin/"},
	}
}

// Table maps token names to their current values.
type Table struct {
	values util.OrderedMap[string, string]
}

// NewTable creates a table holding `tokens`. Names must be unique.
func NewTable(tokens []Token) *Table {
	table := &Table{values: util.NewOrderedMap[string, string]()}
	for _, tok := range tokens {
		table.values.Insert(tok.Name, tok.Value)
	}
	return table
}

// NewDefaultTable creates a table holding the built-in token set.
func NewDefaultTable() *Table {
	return NewTable(Defaults())
}

// Get returns the current (unexpanded) value of the token `name`.
func (t *Table) Get(name string) (string, error) {
	value, ok := t.values.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrUndefinedToken, name)
	}
	return value, nil
}

// Set overwrites the value of the token `name`.
func (t *Table) Set(name string, value string) error {
	if !t.values.Replace(name, value) {
		return fmt.Errorf("%w: cannot assign '%s' to '%s'", ErrUndefinedToken, value, name)
	}
	return nil
}

// Tokens returns all tokens ordered by name.
func (t *Table) Tokens() []Token {
	entries := t.values.Entries()
	return util.MappedSlice(entries, func(e util.OrderedMapEntry[string, string]) Token {
		return Token{Name: e.Key, Value: e.Value}
	})
}
