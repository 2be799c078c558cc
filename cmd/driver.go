package cmd

import (
	"os"
	"path"

	"github.com/daedaleanai/lcc/config"
	"github.com/daedaleanai/lcc/log"
	"github.com/daedaleanai/lcc/options"
	"github.com/daedaleanai/lcc/tokens"
	"github.com/daedaleanai/lcc/toolchain"
	"github.com/daedaleanai/lcc/util"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// driverArgs collects the driver options in the order they appear on the command line.
var driverArgs []string

// driverFlag records every occurrence of a driver option in `driverArgs`.
type driverFlag struct {
	option string
	value  string
	isBool bool
}

func (f *driverFlag) String() string {
	return f.value
}

func (f *driverFlag) Set(value string) error {
	f.value = value
	if !f.isBool {
		driverArgs = append(driverArgs, f.option+value)
	} else if value == "true" {
		driverArgs = append(driverArgs, f.option)
	}
	return nil
}

func (f *driverFlag) Type() string {
	if f.isBool {
		return "bool"
	}
	return "string"
}

func registerDriverFlags(flags *pflag.FlagSet) {
	flags.Var(&driverFlag{option: options.PrefixOption}, "prefix", "Installation prefix of GBDK")
	flags.Var(&driverFlag{option: options.LibDirOption}, "gbdklibdir", "Directory holding the GBDK libraries")
	flags.Var(&driverFlag{option: options.IncludeDirOption}, "gbdkincludedir", "Directory holding the GBDK headers")
	flags.Var(&driverFlag{option: options.ToolchainBinOption}, "toolchainbin", "Directory holding the SDCC executables")
	flags.Var(&driverFlag{option: options.SdccBinOption}, "sdccbin", "Alias of --toolchainbin")
	flags.VarP(&driverFlag{option: options.PortOption}, "port", "m", "Target PORT[/PLATFORM]")
	for _, model := range []string{"small", "medium"} {
		f := flags.VarPF(&driverFlag{option: options.ModelOption + model, isBool: true}, "model-"+model, "", "Use the "+model+" memory model")
		f.NoOptDefVal = "true"
	}
}

// configure builds the token table and profile registry. Later sources override earlier ones:
// built-in defaults, the prefix derived from `executable`, the configuration and finally `args`.
func configure(executable string, cfg config.Config, args []string) (*tokens.Table, *toolchain.Registry, error) {
	table := tokens.NewDefaultTable()
	registry := toolchain.NewDefaultRegistry()

	if prefix, ok := util.InstallPrefix(executable); ok {
		log.Debug("Using installation prefix '%s' derived from '%s'.\n", prefix, executable)
		if err := table.Set("prefix", prefix); err != nil {
			return nil, nil, err
		}
	}

	for _, tok := range cfg.TokenOverrides() {
		if err := table.Set(tok.Name, tok.Value); err != nil {
			return nil, nil, errors.Wrap(err, "invalid token in configuration")
		}
	}
	if err := options.ApplyAll(table, registry, cfg.Options()); err != nil {
		return nil, nil, errors.Wrap(err, "invalid configuration")
	}
	if err := options.ApplyAll(table, registry, args); err != nil {
		return nil, nil, err
	}
	return table, registry, nil
}

// mustConfigure configures the toolchain from the configuration and the command line,
// terminating the program on any error.
func mustConfigure() (*tokens.Table, *toolchain.Registry) {
	table, registry, err := configure(os.Args[0], config.GetConfig(), driverArgs)
	if err != nil {
		log.Fatal("%s: %s.\n", path.Base(os.Args[0]), err)
	}
	return table, registry
}

// mustFinalize expands all stages of the active profile, terminating the program on any error.
func mustFinalize(table *tokens.Table, registry *toolchain.Registry) *toolchain.Toolchain {
	tc, err := toolchain.Finalize(registry, table)
	if err != nil {
		log.Fatal("%s: %s.\n", path.Base(os.Args[0]), err)
	}
	return tc
}

func stageNames() []string {
	return util.MappedSlice(toolchain.Stages, toolchain.Stage.String)
}

func parseStages(args []string) ([]toolchain.Stage, error) {
	if len(args) == 0 {
		return toolchain.Stages, nil
	}
	stages := []toolchain.Stage{}
	for _, arg := range args {
		stage, err := toolchain.ParseStage(arg)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return stages, nil
}
