package options

import (
	"errors"
	"strings"
	"testing"

	"github.com/daedaleanai/lcc/tokens"
	"github.com/daedaleanai/lcc/toolchain"
)

func expectToken(t *testing.T, table *tokens.Table, name string, expected string) {
	t.Helper()
	value, err := table.Get(name)
	if err != nil {
		t.Fatal(err)
	}
	if value != expected {
		t.Fatalf("token '%s' is %q, want %q", name, value, expected)
	}
}

func TestPathOptions(t *testing.T) {
	table := tokens.NewDefaultTable()
	registry := toolchain.NewDefaultRegistry()

	err := ApplyAll(table, registry, []string{
		"--prefix=/usr/share/gbdk/",
		"--gbdklibdir=/usr/lib/gbdk/",
		"--gbdkincludedir=/usr/include/gbdk",
		"--toolchainbin=/usr/bin/",
	})
	if err != nil {
		t.Fatal(err)
	}
	expectToken(t, table, "prefix", "/usr/share/gbdk/")
	expectToken(t, table, "libdir", "/usr/lib/gbdk/")
	expectToken(t, table, "includedir", "/usr/include/gbdk")
	expectToken(t, table, "sdccbin", "/usr/bin/")

	if err := ApplyAll(table, registry, []string{"--sdccbin=/opt/sdcc/bin/"}); err != nil {
		t.Fatal(err)
	}
	expectToken(t, table, "sdccbin", "/opt/sdcc/bin/")
}

func TestModelOptions(t *testing.T) {
	table := tokens.NewDefaultTable()
	registry := toolchain.NewDefaultRegistry()

	if err := ApplyAll(table, registry, []string{"--model-medium"}); err != nil {
		t.Fatal(err)
	}
	expectToken(t, table, "commodel", "medium")
	expectToken(t, table, "libmodel", "medium")
	expectToken(t, table, "cppmodel", "SDCC_MODEL_MEDIUM")

	if err := ApplyAll(table, registry, []string{"--model-small"}); err != nil {
		t.Fatal(err)
	}
	expectToken(t, table, "commodel", "small")
	expectToken(t, table, "libmodel", "small")
	expectToken(t, table, "cppmodel", "SDCC_MODEL_SMALL")

	ok, err := Apply(table, registry, "--model-large")
	if ok || err != nil {
		t.Fatalf("unexpected result (%v, %v)", ok, err)
	}
}

func TestPortOption(t *testing.T) {
	table := tokens.NewDefaultTable()
	registry := toolchain.NewDefaultRegistry()

	if err := ApplyAll(table, registry, []string{"-mz80/sms"}); err != nil {
		t.Fatal(err)
	}
	if registry.Active().Name() != "z80/*" {
		t.Fatalf("unexpected profile %s", registry.Active().Name())
	}
	expectToken(t, table, "port", "z80")
	expectToken(t, table, "plat", "sms")

	if err := ApplyAll(table, registry, []string{"-mz80"}); err != nil {
		t.Fatal(err)
	}
	if registry.Active().Name() != "z80/afghan" {
		t.Fatalf("unexpected profile %s", registry.Active().Name())
	}
	expectToken(t, table, "port", "z80")
	expectToken(t, table, "plat", "sms")
}

func TestUnknownPort(t *testing.T) {
	table := tokens.NewDefaultTable()
	registry := toolchain.NewDefaultRegistry()

	for _, arg := range []string{"-mmos6502", "-mgbz80/pocket", "-m"} {
		ok, err := Apply(table, registry, arg)
		if !ok {
			t.Fatalf("'%s' was not recognised", arg)
		}
		if !errors.Is(err, toolchain.ErrUnknownPort) {
			t.Fatalf("unexpected error %v", err)
		}
		if !strings.Contains(err.Error(), "unrecognised port/platform from "+arg) {
			t.Fatalf("error does not name the argument: %s", err)
		}
	}

	if registry.Active().Name() != "gbz80/gb" {
		t.Fatalf("unexpected profile %s", registry.Active().Name())
	}
	expectToken(t, table, "port", "gbz80")
	expectToken(t, table, "plat", "gb")
}

func TestUnrecognisedOptions(t *testing.T) {
	table := tokens.NewDefaultTable()
	registry := toolchain.NewDefaultRegistry()

	for _, arg := range []string{"-v", "--prefix", "main.c", "--libdir=/x"} {
		err := ApplyAll(table, registry, []string{"--prefix=/x/", arg})
		if !errors.Is(err, ErrUnrecognized) {
			t.Fatalf("ApplyAll with %q returned %v, want ErrUnrecognized", arg, err)
		}
	}
}
