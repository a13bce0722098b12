package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-playground/validator"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"litecene/internal/search"
)

var errNoConfigFile = fmt.Errorf("no config file loaded")

type Config struct {
	// the SQL reference of the searched column, example: "t.text"
	Field string `validate:"required" yaml:"field"`
	// duckdb or bigquery
	Dialect string `validate:"required,dialect" yaml:"dialect"`
	// whether the field has a search index, adds the token presence guard to predicates
	Indexed bool `yaml:"indexed"`
	// misplaced wildcards fail the query instead of being ignored
	StrictWildcards bool `yaml:"strict_wildcards"`
	// a yaml list of {id, text} documents to match against
	CorpusPath string `validate:"omitempty,path_exists" yaml:"corpus_path"`
	// the duckdb file for the sql backend, in-memory if empty
	StoragePath string `yaml:"storage_path"`
	// workers of the in-memory backend,
	// defaults to the number of cores if omitted or <1.
	Concurrency int `yaml:"concurrency"`
	// http api address, example: ":8393"
	Listen string `validate:"required" yaml:"listen"`
	// prod, dev or test
	LogEnv string `yaml:"log_env"`
}

// Validate is the final check after all overrides are done (file load, command arguments substituted)
func (cfg Config) Validate() error {
	translateError := func(e validator.FieldError) string {
		switch e.ActualTag() {
		case "path_exists":
			return fmt.Sprintf("path \"%v\" does not exist", e.Value())
		case "required":
			return "value is empty"
		case "dialect":
			return fmt.Sprintf("unknown sql dialect \"%v\"", e.Value())
		default:
			return fmt.Sprintf("invalid value (%s)", e.Tag())
		}
	}

	cfgValidate := validator.New()

	err := cfgValidate.RegisterValidation(
		"path_exists", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if !filepath.IsAbs(path) {
				cwd, _ := os.Getwd()
				path = filepath.Join(cwd, path)
			}
			_, err := os.Stat(path)
			return err == nil
		},
	)
	if err != nil {
		return err
	}

	err = cfgValidate.RegisterValidation(
		"dialect", func(fl validator.FieldLevel) bool {
			_, err := search.DialectByName(fl.Field().String())
			return err == nil
		},
	)
	if err != nil {
		return err
	}

	err = cfgValidate.Struct(cfg)
	if err != nil {
		message := "Invalid config values:\n"
		for _, err := range err.(validator.ValidationErrors) {
			message += fmt.Sprintf("> %v: %s\n", err.StructField(), translateError(err))
		}
		return errors.New(message)
	}

	return nil
}

var DefaultCfg = Config{
	Field:       "body",
	Dialect:     search.DuckDB{}.Name(),
	Concurrency: runtime.NumCPU(),
	Listen:      ":8393",
	LogEnv:      "prod",
}

// LoadConfig reads litecene.yaml from the working directory on top of DefaultCfg.
func LoadConfig() (cfg Config, err error) {
	cfg = DefaultCfg

	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("litecene")

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, errNoConfigFile
		}
		return cfg, fmt.Errorf("unable to use config file: %w", err)
	}

	err = v.Unmarshal(
		&cfg, func(dc *mapstructure.DecoderConfig) {
			dc.TagName = "yaml"
		},
	)
	if err != nil {
		return cfg, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultCfg.Concurrency
	}

	return cfg, cfg.Validate()
}
