package util

import (
	"os"
	"os/exec"
	"testing"
)

func TestOrderedMap(t *testing.T) {
	m := NewOrderedMap[string, string]()
	m.Insert("prefix", "/opt/gbdk/")
	m.Insert("bindir", "%prefix%bin/")
	m.Insert("port", "gbz80")

	expected := []OrderedMapEntry[string, string]{
		{Key: "bindir", Value: "%prefix%bin/"},
		{Key: "port", Value: "gbz80"},
		{Key: "prefix", Value: "/opt/gbdk/"},
	}

	entries := m.Entries()
	keys := m.Keys()
	if len(entries) != len(expected) || m.Len() != len(expected) {
		t.Fatal("unexpected number of entries")
	}
	if len(keys) != len(expected) {
		t.Fatal("unexpected number of keys")
	}
	for i := range entries {
		if entries[i] != expected[i] {
			t.Fatalf("unexpected entry at index %d", i)
		}
		if keys[i] != expected[i].Key {
			t.Fatalf("unexpected key at index %d", i)
		}
	}
}

func TestOverridesForbidden(t *testing.T) {
	if os.Getenv("CHILD") == "1" {
		m := NewOrderedMap[int, string]()
		m.Insert(1, "hello")
		m.Insert(1, "world")
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=TestOverridesForbidden")
	cmd.Env = append(os.Environ(), "CHILD=1")
	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); !ok || e.Success() {
		t.Fatalf("process ran with err %v, want exit status 1", err)
	}
}

func TestReplace(t *testing.T) {
	m := NewOrderedMap[string, string]()
	m.Insert("port", "gbz80")

	if !m.Replace("port", "z80") {
		t.Fatal("replacing an existing key failed")
	}
	if v, _ := m.Lookup("port"); v != "z80" {
		t.Fatalf("unexpected value %q", v)
	}

	if m.Replace("plat", "gb") {
		t.Fatal("replacing a missing key succeeded")
	}
	if _, ok := m.Lookup("plat"); ok {
		t.Fatal("replace introduced a new key")
	}
	if m.Len() != 1 {
		t.Fatal("unexpected number of entries")
	}
}

func TestLookups(t *testing.T) {
	m := NewOrderedMap[int, string]()
	m.Insert(10, "aint")

	_, ok := m.Lookup(17)
	if ok {
		t.Fatal("lookup should have failed")
	}

	v, ok := m.Lookup(10)
	if !ok {
		t.Fatal("lookup unexpectedly failed")
	}
	if v != "aint" {
		t.Fatal("unexpected value")
	}
}
