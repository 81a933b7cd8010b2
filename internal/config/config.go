package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matthieukhl/stockroom/internal/inventory"
)

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Display   DisplayConfig   `mapstructure:"display"`
	Inventory InventoryConfig `mapstructure:"inventory"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type DisplayConfig struct {
	Locale   string `mapstructure:"locale" validate:"required"`
	Currency string `mapstructure:"currency"`
}

type InventoryConfig struct {
	Seed       bool     `mapstructure:"seed"`
	Categories []string `mapstructure:"categories" validate:"min=1,dive,required"`
}

// Flags bound into the configuration when present on the command line.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
}

// LoadConfig loads configuration from config.yaml, a .env file, environment
// variables and command line flags, in increasing precedence. configFile
// overrides the search path; flags may be nil.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return load(afero.NewOsFs(), configFile, flags)
}

func load(fsys afero.Fs, configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fsys)

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./deploy/")
		v.AddConfigPath("./")
		v.AddConfigPath("$HOME/.stockroom/")
		v.AddConfigPath("/etc/stockroom/")
	}

	// Environment variable override with STOCKROOM_ prefix, e.g. STOCKROOM_LOG_LEVEL
	v.SetEnvPrefix("STOCKROOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var config Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&config, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for i, c := range config.Inventory.Categories {
		config.Inventory.Categories[i] = strings.TrimSpace(c)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("display.locale", "en")
	v.SetDefault("display.currency", "$")
	v.SetDefault("inventory.seed", true)
	v.SetDefault("inventory.categories", append([]string(nil), inventory.DefaultCategories...))
}
