// Package options applies driver command-line options to the token table and profile registry.
package options

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/daedaleanai/lcc/log"
	"github.com/daedaleanai/lcc/tokens"
	"github.com/daedaleanai/lcc/toolchain"
)

// ErrUnrecognized is returned by ApplyAll for options that are not driver options.
var ErrUnrecognized = errors.New("unrecognised option")

// Option prefixes understood by Apply.
const (
	PrefixOption       = "--prefix="
	LibDirOption       = "--gbdklibdir="
	IncludeDirOption   = "--gbdkincludedir="
	ToolchainBinOption = "--toolchainbin="
	SdccBinOption      = "--sdccbin="
	PortOption         = "-m"
	ModelOption        = "--model-"
)

// pathOptions maps options taking a path to the token they assign.
var pathOptions = []struct {
	prefix string
	token  string
}{
	{PrefixOption, "prefix"},
	{LibDirOption, "libdir"},
	{IncludeDirOption, "includedir"},
	{ToolchainBinOption, "sdccbin"},
	{SdccBinOption, "sdccbin"},
}

type model struct {
	name      string
	cppDefine string
}

var models = []model{
	{"small", "SDCC_MODEL_SMALL"},
	{"medium", "SDCC_MODEL_MEDIUM"},
}

// Apply applies a single option. It reports false if `arg` is not a driver option.
func Apply(table *tokens.Table, registry *toolchain.Registry, arg string) (bool, error) {
	for _, opt := range pathOptions {
		if tail := strings.TrimPrefix(arg, opt.prefix); tail != arg {
			log.Debug("Setting '%s' to '%s'.\n", opt.token, tail)
			return true, table.Set(opt.token, tail)
		}
	}

	if tail := strings.TrimPrefix(arg, ModelOption); tail != arg {
		for _, m := range models {
			if m.name == tail {
				return true, setModel(table, m)
			}
		}
		return false, nil
	}

	if tail := strings.TrimPrefix(arg, PortOption); tail != arg {
		return true, selectPort(table, registry, arg, tail)
	}

	return false, nil
}

// ApplyAll applies `args` in order. The first unrecognised or failing option aborts.
func ApplyAll(table *tokens.Table, registry *toolchain.Registry, args []string) error {
	for _, arg := range args {
		ok, err := Apply(table, registry, arg)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(ErrUnrecognized, "'%s'", arg)
		}
	}
	return nil
}

func setModel(table *tokens.Table, m model) error {
	log.Debug("Using the %s memory model.\n", m.name)
	if err := table.Set("commodel", m.name); err != nil {
		return err
	}
	if err := table.Set("libmodel", m.name); err != nil {
		return err
	}
	return table.Set("cppmodel", m.cppDefine)
}

// selectPort handles `-mPORT[/PLATFORM]`. Tokens are only updated once a profile matched.
func selectPort(table *tokens.Table, registry *toolchain.Registry, arg string, target string) error {
	port, platform := target, ""
	if idx := strings.IndexByte(target, '/'); idx >= 0 {
		port, platform = target[:idx], target[idx+1:]
	}

	if err := registry.Select(port, platform); err != nil {
		return errors.Wrapf(err, "unrecognised port/platform from %s", arg)
	}
	if platform != "" {
		if err := table.Set("plat", platform); err != nil {
			return err
		}
	}
	return table.Set("port", port)
}
