package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"litecene/internal"
	"litecene/internal/common"
	"litecene/internal/search/query_language"
)

func overrideConfig(cfg Config, cmd *cli.Command) Config {
	if cmd.String("Field") != "" {
		cfg.Field = cmd.String("Field")
	}
	if cmd.String("Dialect") != "" {
		cfg.Dialect = cmd.String("Dialect")
	}
	if cmd.IsSet("Indexed") {
		cfg.Indexed = cmd.Bool("Indexed")
	}
	if cmd.IsSet("StrictWildcards") {
		cfg.StrictWildcards = cmd.Bool("StrictWildcards")
	}
	if cmd.String("CorpusPath") != "" {
		cfg.CorpusPath = cmd.String("CorpusPath")
	}
	if cmd.String("StoragePath") != "" {
		cfg.StoragePath = cmd.String("StoragePath")
	}
	if cmd.Int("Concurrency") != 0 {
		cfg.Concurrency = int(cmd.Int("Concurrency"))
	}
	if cmd.String("Listen") != "" {
		cfg.Listen = cmd.String("Listen")
	}
	if cmd.String("LogEnv") != "" {
		cfg.LogEnv = cmd.String("LogEnv")
	}

	return cfg
}

func queryArgument(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() == 0 {
		return "", errors.New("query argument is missing")
	}
	return strings.Join(cmd.Args().Slice(), " "), nil
}

func NewConsole(ctx context.Context, logger *zap.Logger) *cli.Command {
	prepareCfg := func(cmd *cli.Command) (Config, error) {
		cfg, err := LoadConfig()
		if errors.Is(err, errNoConfigFile) {
			logger.Debug("No config file found, using default config")
		} else if err != nil {
			return cfg, err
		}
		cfg = overrideConfig(cfg, cmd)
		logger.Debug("Loaded config", zap.Any("config", cfg))
		return cfg, cfg.Validate()
	}

	prepareApp := func(ctx context.Context, cmd *cli.Command) (*Litecene, error) {
		cfg, err := prepareCfg(cmd)
		if err != nil {
			return nil, err
		}
		appLogger := logger
		if cfg.LogEnv != "" {
			appLogger, err = internal.NewLogger(cfg.LogEnv)
			if err != nil {
				return nil, err
			}
		}
		return NewLitecene(ctx, cfg, appLogger)
	}

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "Field",
			Aliases: []string{"field", "f"},
			Usage:   "the SQL reference of the searched column, example: \"t.text\"",
		},
		&cli.StringFlag{
			Name:    "Dialect",
			Aliases: []string{"dialect"},
			Usage:   "SQL dialect of predicates: duckdb or bigquery",
		},
		&cli.BoolFlag{
			Name:    "Indexed",
			Aliases: []string{"indexed"},
			Usage:   "the field has a search index, guard predicates with the token presence test",
		},
		&cli.BoolFlag{
			Name:    "StrictWildcards",
			Aliases: []string{"strict"},
			Usage:   "fail queries with misplaced wildcards instead of ignoring them",
		},
		&cli.StringFlag{
			Name:    "CorpusPath",
			Aliases: []string{"corpus"},
			Usage:   "a yaml list of {id, text} documents",
		},
		&cli.StringFlag{
			Name:    "StoragePath",
			Aliases: []string{"storage"},
			Usage:   "duckdb file of the SQL backend, in-memory if empty",
		},
		&cli.IntFlag{
			Name:    "Concurrency",
			Aliases: []string{"c"},
			Usage:   "workers of the in-memory backend",
		},
		&cli.StringFlag{
			Name:    "Listen",
			Aliases: []string{"listen"},
			Usage:   "http api address, example: \":8393\"",
		},
		&cli.StringFlag{
			Name:    "LogEnv",
			Aliases: []string{"log"},
			Usage:   "prod, dev or test",
		},
	}

	cmd := &cli.Command{
		Name:  "litecene",
		Usage: "compiles search queries with boolean operators and phrases into SQL predicates",
		Commands: []*cli.Command{
			{
				Name:        "parse",
				Flags:       flags,
				ArgsUsage:   "<query>",
				Description: "Prints the canonical form and the tree of the query.",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					query, err := queryArgument(cmd)
					if err != nil {
						return err
					}
					app, err := prepareApp(ctx, cmd)
					if err != nil {
						return err
					}
					q, err := app.Parse(query)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.Root().Writer, "%s\n%s\n", q, query_language.Dump(q))
					return err
				},
			},
			{
				Name:        "compile",
				Flags:       flags,
				ArgsUsage:   "<query>",
				Description: "Prints the SQL predicate of the query for the configured field and dialect.",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					query, err := queryArgument(cmd)
					if err != nil {
						return err
					}
					app, err := prepareApp(ctx, cmd)
					if err != nil {
						return err
					}
					q, err := app.Parse(query)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.Root().Writer, app.Compiler.Compile(q, app.Cfg.Field, app.Cfg.Indexed))
					return err
				},
			},
			{
				Name:        "analysis",
				Flags:       flags,
				Description: "Prints the SQL expression that analyzes raw text of the field the way predicates expect.",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := prepareApp(ctx, cmd)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.Root().Writer, app.Compiler.Dialect().Analysis(app.Cfg.Field))
					return err
				},
			},
			{
				Name:      "match",
				ArgsUsage: "<query>",
				Flags: append(
					flags, &cli.StringFlag{
						Name:  "backend",
						Value: BackendMemory,
						Usage: "memory or duckdb",
					},
				),
				Description: "Prints ids of corpus documents matching the query.",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					query, err := queryArgument(cmd)
					if err != nil {
						return err
					}
					app, err := prepareApp(ctx, cmd)
					if err != nil {
						return err
					}
					defer app.Close()

					if app.Cfg.CorpusPath == "" {
						return errors.New("corpus path is not configured")
					}
					corpus, err := common.LoadCorpus(app.Cfg.CorpusPath)
					if err != nil {
						return err
					}

					ids, err := app.Match(ctx, cmd.String("backend"), query, corpus)
					if err != nil {
						return err
					}
					for _, id := range ids {
						if _, err = fmt.Fprintln(cmd.Root().Writer, id); err != nil {
							return err
						}
					}
					return nil
				},
			},
			{
				Name:        "gen",
				Flags:       flags,
				Description: "Generates config to stdOut.",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := overrideConfig(DefaultCfg, cmd)
					err := cfg.Validate()
					if err != nil {
						return err
					}
					yamlData, err := yaml.Marshal(&cfg)
					if err != nil {
						return err
					}
					_, err = fmt.Fprint(cmd.Root().Writer, string(yamlData))
					return err
				},
			},
			{
				Name:        "test",
				Flags:       flags,
				Description: "Tests config and loads the corpus if one is configured",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := prepareCfg(cmd)
					if err != nil {
						return err
					}
					if cfg.CorpusPath == "" {
						logger.Info("Great! Config is valid")
						return nil
					}
					corpus, err := common.LoadCorpus(cfg.CorpusPath)
					if err != nil {
						return err
					}
					logger.Info(fmt.Sprintf("Great! Loaded %d documents from %s", len(corpus), cfg.CorpusPath))
					return nil
				},
			},
			{
				Name:        "serve",
				Flags:       flags,
				Description: "Runs the http api.",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := prepareApp(ctx, cmd)
					if err != nil {
						return err
					}
					defer app.Close()

					app.Logger.Info("listening", zap.String("address", app.Cfg.Listen), zap.String("dialect", app.Compiler.Dialect().Name()))
					return NewHttpApp(ctx, app).Listen(app.Cfg.Listen)
				},
			},
		},
	}

	return cmd
}
