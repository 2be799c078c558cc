package toolchain

import (
	"strings"
)

// FileKind classifies the files handled while building.
type FileKind int

const (
	Source FileKind = iota
	Preprocessed
	AssemblySource
	Object
	Binary
)

var fileKindNames = []string{"source", "preprocessed", "assembly", "object", "binary"}

func (k FileKind) String() string {
	return fileKindNames[k]
}

// Suffix lists the file name extensions recognised for one kind of file. The first one is used
// when naming outputs.
type Suffix struct {
	Kind       FileKind
	Extensions []string
}

// Suffixes is indexed by FileKind.
var Suffixes = []Suffix{
	{Source, []string{".c"}},
	{Preprocessed, []string{".i"}},
	{AssemblySource, []string{".asm", ".s"}},
	{Object, []string{".o", ".obj"}},
	{Binary, []string{".ihx", ".gb"}},
}

// KindOf returns the kind of file `name` based on its extension.
func KindOf(name string) (FileKind, bool) {
	for _, s := range Suffixes {
		for _, ext := range s.Extensions {
			if strings.HasSuffix(name, ext) {
				return s.Kind, true
			}
		}
	}
	return 0, false
}

// OutputName replaces the extension of `name` with the primary extension of `kind`.
func OutputName(name string, kind FileKind) string {
	if current, ok := KindOf(name); ok {
		for _, ext := range Suffixes[current].Extensions {
			if strings.HasSuffix(name, ext) {
				name = strings.TrimSuffix(name, ext)
				break
			}
		}
	}
	return name + Suffixes[kind].Extensions[0]
}
