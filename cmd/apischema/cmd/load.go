package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Gobd/apischema"
	"github.com/Gobd/apischema/sqlservice"
	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// errInvalid is returned when validation reports failures. The failures
// themselves are already printed.
var errInvalid = errors.New("validation failed")

// env holds what every command needs.
type env struct {
	schema *apischema.Schema
	params apischema.Params
	logger zerolog.Logger
	db     *sqlx.DB
}

func (e *env) Close() {
	if e.db != nil {
		e.db.Close()
	}
}

func load() (*env, error) {
	cfg, err := apischema.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	level := cfg.LogLevel
	if logLevel != "" {
		if level, err = zerolog.ParseLevel(logLevel); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	logger := newLogger(level)

	raw, err := os.ReadFile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	def, err := apischema.ParseYAML(raw)
	if err != nil {
		return nil, err
	}
	schema, err := apischema.New(def, append(cfg.Options(), apischema.WithLogger(logger))...)
	if err != nil {
		return nil, err
	}

	e := &env{schema: schema, params: apischema.Params{}, logger: logger}
	if serviceDB == "" {
		if len(services) > 0 {
			return nil, errors.New("--service requires --service-db")
		}
		return e, nil
	}

	e.db, err = sqlservice.Open(serviceDB)
	if err != nil {
		return nil, err
	}
	store := sqlservice.New(e.db)
	for _, s := range services {
		name, table, column, err := parseService(s)
		if err != nil {
			e.Close()
			return nil, err
		}
		if err := store.Register(name, table, column); err != nil {
			e.Close()
			return nil, err
		}
		logger.Debug().Str("service", name).Str("table", table).Str("column", column).Msg("service registered")
	}
	e.params[apischema.ServicesParam] = store
	return e, nil
}

// parseService splits name=table.column.
func parseService(s string) (name, table, column string, err error) {
	name, target, ok := strings.Cut(s, "=")
	if ok {
		table, column, ok = strings.Cut(target, ".")
	}
	if !ok || name == "" || table == "" || column == "" {
		return "", "", "", fmt.Errorf("invalid --service %q, expected name=table.column", s)
	}
	return name, table, column, nil
}

// readInput decodes a JSON object from path, or stdin when path is "" or "-".
func readInput(path string, stdin io.Reader) (map[string]any, error) {
	var r io.Reader = stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	var data map[string]any
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return data, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
