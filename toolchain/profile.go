package toolchain

import (
	"fmt"
)

// Stage identifies one of the external programs driven by the toolchain.
type Stage int

const (
	Preprocess Stage = iota
	Include
	Compile
	Assemble
	Link
)

// Stages lists all stages in the order they are finalized.
var Stages = []Stage{Preprocess, Include, Compile, Assemble, Link}

var stageNames = map[Stage]string{
	Preprocess: "cpp",
	Include:    "include",
	Compile:    "com",
	Assemble:   "as",
	Link:       "ld",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// ParseStage returns the stage called `name`.
func ParseStage(name string) (Stage, error) {
	for _, s := range Stages {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stage '%s'", name)
}

// Profile describes how to invoke each stage for one port/platform combination.
type Profile struct {
	Port string
	// Platform is empty if the profile accepts any platform of its port.
	Platform        string
	DefaultPlatform string

	Preprocessor string
	Includes     string
	Compiler     string
	Assembler    string
	Linker       string
}

// Template returns the template for `stage`.
func (p Profile) Template(stage Stage) string {
	switch stage {
	case Preprocess:
		return p.Preprocessor
	case Include:
		return p.Includes
	case Compile:
		return p.Compiler
	case Assemble:
		return p.Assembler
	case Link:
		return p.Linker
	}
	return ""
}

// Name returns `port/platform`, with `*` standing in for a profile without platform.
func (p Profile) Name() string {
	if p.Platform == "" {
		return p.Port + "/*"
	}
	return p.Port + "/" + p.Platform
}

// matches reports whether the profile serves `port` and `platform`. An empty platform on
// either side matches any platform.
func (p Profile) matches(port string, platform string) bool {
	if p.Port != port {
		return false
	}
	return p.Platform == "" || platform == "" || p.Platform == platform
}

// DefaultProfiles returns the built-in profiles in lookup order.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Port:            "gbz80",
			Platform:        "gb",
			DefaultPlatform: "gb",
			Preprocessor:    "%cpp% %cppdefault% -DGB=1 -DGAMEBOY=1 -DINT_16_BITS $1 $2 $3",
			Includes:        "%includedefault%",
			Compiler:        "%com% %comdefault% $1 -o $3",
			Assembler:       "%as% -plosgff $1 $3 $2",
			Linker: "%ld% -n -- -z $1 -k%libdir%%port%/ -l%port%.lib " +
				"-k%libdir%%plat%/ -l%plat%.lib $3 %libdir%%plat%/crt0.o $2",
		},
		{
			Port:            "z80",
			Platform:        "afghan",
			DefaultPlatform: "afghan",
			Preprocessor:    "%cpp% %cppdefault% $1 $2 $3",
			Includes:        "%includedefault%",
			Compiler:        "%com% %comdefault% $1 $2 $3",
			Assembler:       "%as% -pog $1 $3 $2",
			Linker: "%ld% -n -- -i $1 -b_CODE=0x8100 -k%libdir%%port%/ -l%port%.lib " +
				"-k%libdir%%plat%/ -l%plat%.lib $3 %libdir%%plat%/crt0.o $2",
		},
		{
			Port:            "z80",
			DefaultPlatform: "consolez80",
			Preprocessor:    "%cpp% %cppdefault% $1 $2 $3",
			Includes:        "-I%includedir%/gbdk-lib",
			Compiler:        "%com% %comdefault% $1 $2 $3",
			Assembler:       "%as% -pog $1 $3 $2",
			Linker: "%ld% -n -- -i $1 -b_DATA=0x8000 -b_CODE=0x200 -k%libdir%%port%/ -l%port%.lib " +
				"-k%libdir%%plat%/ -l%plat%.lib $3 %libdir%%plat%/crt0.o $2",
		},
	}
}

// OutputKind returns the kind of file produced by `stage`, if it produces one.
func (s Stage) OutputKind() (FileKind, bool) {
	switch s {
	case Preprocess:
		return Preprocessed, true
	case Compile:
		return AssemblySource, true
	case Assemble:
		return Object, true
	case Link:
		return Binary, true
	}
	return 0, false
}
