package config

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/daedaleanai/lcc/log"
	"github.com/daedaleanai/lcc/options"
	"github.com/daedaleanai/lcc/tokens"
	"github.com/daedaleanai/lcc/util"
)

// Config holds the settings that apply to every invocation before command-line options.
type Config struct {
	// Port selects a profile as `PORT[/PLATFORM]`.
	Port         string            `mapstructure:"port"`
	Model        string            `mapstructure:"model"`
	Prefix       string            `mapstructure:"prefix"`
	LibDir       string            `mapstructure:"libdir"`
	IncludeDir   string            `mapstructure:"includedir"`
	ToolchainBin string            `mapstructure:"toolchainbin"`
	Tokens       map[string]string `mapstructure:"tokens"`
}

var environment map[string]string
var config *Config

const configFileName string = "config.yaml"
const envPrefix string = "LCC"

// Settings that can also be given as LCC_<KEY> environment variables.
var envKeys = []string{"port", "model", "prefix", "libdir", "includedir", "toolchainbin"}

func init() {
	environment = make(map[string]string)
	for _, v := range os.Environ() {
		parts := strings.SplitN(v, "=", 2)
		if len(parts) == 2 {
			environment[parts[0]] = parts[1]
		}
	}
}

func getLccConfigDir() (string, error) {
	if lccConfigDir, ok := environment["LCC_CONFIG_DIR"]; ok {
		return lccConfigDir, nil
	}

	if xdgConfigHome, ok := environment["XDG_CONFIG_HOME"]; ok {
		return path.Join(xdgConfigHome, "lcc"), nil
	}

	homeDir, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("Unable to locate the configuration directory: %w", err)
	}
	return path.Join(homeDir, ".config", "lcc"), nil
}

// Load reads the configuration from `configFilePath` (if it exists) and the environment.
func Load(configFilePath string) (Config, error) {
	var config Config

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return config, err
		}
	}

	if util.FileExists(configFilePath) {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			return config, fmt.Errorf("Error reading configuration file at `%s`: %w", configFilePath, err)
		}
		log.Debug("Loaded configuration from `%s`\n", configFilePath)
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("Error decoding configuration: %w", err)
	}
	return config, nil
}

func loadConfiguration() Config {
	configFilePath := ""
	configDir, err := getLccConfigDir()
	if err != nil {
		log.Debug("Unable to find lcc config directory. Using the environment only\n")
	} else {
		configFilePath = path.Join(configDir, configFileName)
	}

	config, err := Load(configFilePath)
	if err != nil {
		log.Warning("%s. Using default configuration\n", err)
		return Config{}
	}

	log.Debug("Running with configuration: %+v\n", config)
	return config
}

// GetConfig returns the configuration, loading it on first use.
func GetConfig() Config {
	if config == nil {
		loadedConfig := loadConfiguration()
		config = &loadedConfig
	}

	return *config
}

// Options renders the configuration as driver options, in the order they are applied.
func (c Config) Options() []string {
	opts := []string{}
	add := func(prefix string, value string) {
		if value != "" {
			opts = append(opts, prefix+value)
		}
	}
	add(options.PrefixOption, c.Prefix)
	add(options.LibDirOption, c.LibDir)
	add(options.IncludeDirOption, c.IncludeDir)
	add(options.ToolchainBinOption, c.ToolchainBin)
	add(options.ModelOption, c.Model)
	add(options.PortOption, c.Port)
	return opts
}

// TokenOverrides returns the configured token values ordered by name.
func (c Config) TokenOverrides() []tokens.Token {
	names := make([]string, 0, len(c.Tokens))
	for name := range c.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	return util.MappedSlice(names, func(name string) tokens.Token {
		return tokens.Token{Name: name, Value: c.Tokens[name]}
	})
}
