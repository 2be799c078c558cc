package tokens

import (
	"errors"
	"testing"
)

func TestDefaults(t *testing.T) {
	table := NewDefaultTable()

	for _, tok := range Defaults() {
		value, err := table.Get(tok.Name)
		if err != nil {
			t.Fatalf("unexpected error for '%s': %s", tok.Name, err)
		}
		if value != tok.Value {
			t.Fatalf("unexpected value for '%s': %q", tok.Name, value)
		}
	}

	if len(table.Tokens()) != len(Defaults()) {
		t.Fatal("unexpected number of tokens")
	}
}

func TestSetLastWriteWins(t *testing.T) {
	table := NewDefaultTable()

	if err := table.Set("prefix", "/usr/local/gbdk/"); err != nil {
		t.Fatal(err)
	}
	if err := table.Set("prefix", "/home/user/gbdk/"); err != nil {
		t.Fatal(err)
	}
	value, err := table.Get("prefix")
	if err != nil {
		t.Fatal(err)
	}
	if value != "/home/user/gbdk/" {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestUndefinedToken(t *testing.T) {
	table := NewDefaultTable()
	if err := table.Set("port", "z80"); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"", "PORT", "prefix ", "linker", "%port%", "gbdkbin"} {
		if _, err := table.Get(name); !errors.Is(err, ErrUndefinedToken) {
			t.Fatalf("Get(%q) returned %v, want ErrUndefinedToken", name, err)
		}
		if err := table.Set(name, "x"); !errors.Is(err, ErrUndefinedToken) {
			t.Fatalf("Set(%q) returned %v, want ErrUndefinedToken", name, err)
		}
	}

	if len(table.Tokens()) != len(Defaults()) {
		t.Fatal("failed assignments introduced new tokens")
	}
}

func TestTokensOrderedByName(t *testing.T) {
	table := NewTable([]Token{{"b", "2"}, {"c", "3"}, {"a", "1"}})

	toks := table.Tokens()
	expected := []Token{{"a", "1"}, {"b", "2"}, {"c", "3"}}
	for i := range expected {
		if toks[i] != expected[i] {
			t.Fatalf("unexpected token at index %d: %+v", i, toks[i])
		}
	}
}
