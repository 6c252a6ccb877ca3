package main

import (
	"fmt"
	"github.com/gostonefire/coursedb"
	"github.com/gostonefire/coursedb/internal/config"
	"github.com/gostonefire/coursedb/internal/logger"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"io"
)

// session holds what the commands share once the Before hook has run
type session struct {
	log   zerolog.Logger
	store *coursedb.Store
	info  coursedb.StoreInfo
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	s := &session{}

	return &cli.App{
		Name:      "coursedb",
		Usage:     "load, look up and list course records in an in memory hash table",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "coursedb.yaml", Usage: "YAML configuration file"},
			&cli.Int64Flag{Name: "expected", Usage: "number of courses to size the table for"},
			&cli.Int64Flag{Name: "capacity", Usage: "explicit table size, skips the 4k+3 prime search"},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Usage: "json, pretty or auto"},
		},
		Before: func(c *cli.Context) error {
			return s.open(c)
		},
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "bulk load files and print every course",
				ArgsUsage: "FILE...",
				Action:    s.show,
			},
			{
				Name:      "get",
				Usage:     "bulk load a file and print the courses with the given CRNs",
				ArgsUsage: "FILE CRN...",
				Action:    s.get,
			},
			{
				Name:      "stat",
				Usage:     "bulk load files and print table statistics",
				ArgsUsage: "FILE...",
				Action:    s.stat,
			},
			{
				Name:   "repl",
				Usage:  "interactive session against one store",
				Action: s.repl,
			},
		},
	}
}

// open - Loads configuration, applies flag overrides and creates the logger and store
func (S *session) open(c *cli.Context) (err error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return
	}

	if c.IsSet("expected") {
		cfg.Store.ExpectedRecords = c.Int64("expected")
	}
	if c.IsSet("capacity") {
		cfg.Store.Capacity = c.Int64("capacity")
	}
	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Logging.Format = c.String("log-format")
	}
	if err = config.Validate(cfg); err != nil {
		return
	}

	S.log = logger.Setup(c.App.ErrWriter, cfg.Logging.Level, cfg.Logging.Format)

	opts := []coursedb.Option{
		coursedb.WithReporter(logger.NewReporter(S.log)),
		coursedb.WithLoadFactor(cfg.Store.LoadFactor),
	}
	if cfg.Store.Capacity > 0 {
		S.store, S.info, err = coursedb.NewStoreWithCapacity(cfg.Store.Capacity, opts...)
	} else {
		S.store, S.info, err = coursedb.NewStore(cfg.Store.ExpectedRecords, opts...)
	}
	if err != nil {
		return
	}

	S.log.Debug().
		Str("store_id", S.info.ID.String()).
		Int64("table_size", S.info.TableSize).
		Int64("expected_records", S.info.ExpectedRecords).
		Msg("course store created")

	return
}

// loadFiles - Bulk loads every named file, stopping at the first that can not be read
func (S *session) loadFiles(names []string) (err error) {
	if len(names) == 0 {
		return fmt.Errorf("no input file given")
	}

	var result coursedb.LoadResult
	for _, name := range names {
		result, err = S.store.ReadFile(name)
		if err != nil {
			return
		}
		S.log.Info().
			Str("file", name).
			Int("lines", result.Lines).
			Int("added", result.Added).
			Int("skipped", result.Skipped).
			Msg("file loaded")
	}

	return
}
