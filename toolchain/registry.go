// Package toolchain selects the active toolchain profile and expands its templates into the
// argument vectors used to run each stage.
//
// Registry and the token table passed to Finalize are not safe for concurrent use.
package toolchain

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/daedaleanai/lcc/log"
	"github.com/daedaleanai/lcc/template"
)

// ErrUnknownPort is returned when no profile matches a requested port/platform.
var ErrUnknownPort = errors.New("unknown port")

// Registry is an ordered list of profiles, one of which is active.
type Registry struct {
	profiles []Profile
	active   int
}

// NewRegistry creates a registry over `profiles`. The first profile is active.
func NewRegistry(profiles []Profile) *Registry {
	if len(profiles) == 0 {
		log.Fatal("A toolchain registry needs at least one profile.\n")
	}
	return &Registry{profiles: append([]Profile{}, profiles...)}
}

// NewDefaultRegistry creates a registry over the built-in profiles.
func NewDefaultRegistry() *Registry {
	return NewRegistry(DefaultProfiles())
}

// Select activates the first profile serving `port` and `platform`. `platform` may be empty.
// The active profile is left unchanged if there is no match.
func (r *Registry) Select(port string, platform string) error {
	for i, p := range r.profiles {
		if p.matches(port, platform) {
			log.Debug("Selected profile '%s' for port '%s' and platform '%s'.\n", p.Name(), port, platform)
			r.active = i
			return nil
		}
	}
	if platform == "" {
		return fmt.Errorf("%w: '%s'", ErrUnknownPort, port)
	}
	return fmt.Errorf("%w: '%s/%s'", ErrUnknownPort, port, platform)
}

// Active returns the active profile.
func (r *Registry) Active() Profile {
	return r.profiles[r.active]
}

// Profiles returns all profiles in lookup order.
func (r *Registry) Profiles() []Profile {
	return append([]Profile{}, r.profiles...)
}

// TokenTable is the symbol table templates are expanded against.
type TokenTable interface {
	Get(name string) (string, error)
	Set(name string, value string) error
}

// Toolchain holds the expanded argument vectors of every stage.
type Toolchain struct {
	Profile      string   `yaml:"profile"`
	Preprocessor []string `yaml:"cpp"`
	Includes     []string `yaml:"include"`
	Compiler     []string `yaml:"com"`
	Assembler    []string `yaml:"as"`
	Linker       []string `yaml:"ld"`
}

// Args returns the argument vector of `stage`.
func (tc *Toolchain) Args(stage Stage) []string {
	switch stage {
	case Preprocess:
		return tc.Preprocessor
	case Include:
		return tc.Includes
	case Compile:
		return tc.Compiler
	case Assemble:
		return tc.Assembler
	case Link:
		return tc.Linker
	}
	return nil
}

func (tc *Toolchain) set(stage Stage, args []string) {
	switch stage {
	case Preprocess:
		tc.Preprocessor = args
	case Include:
		tc.Includes = args
	case Compile:
		tc.Compiler = args
	case Assemble:
		tc.Assembler = args
	case Link:
		tc.Linker = args
	}
}

// Finalize expands every template of the active profile. If the profile has no platform of its
// own, the `plat` token is set to the profile's default platform first. Either all stages are
// expanded or an error is returned.
func Finalize(r *Registry, tokens TokenTable) (*Toolchain, error) {
	profile := r.Active()
	if profile.Platform == "" {
		if err := tokens.Set("plat", profile.DefaultPlatform); err != nil {
			return nil, errors.Wrapf(err, "failed to set the default platform of profile '%s'", profile.Name())
		}
	}

	expander := template.NewExpander(tokens)
	tc := &Toolchain{Profile: profile.Name()}
	for _, stage := range Stages {
		args, err := expander.Expand(profile.Template(stage))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to expand the '%s' template of profile '%s'", stage, profile.Name())
		}
		log.Debug("%s: %v\n", stage, args)
		tc.set(stage, args)
	}
	return tc, nil
}
