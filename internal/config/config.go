// Package config loads the bookstore configuration file.
//
// The file is YAML, validated against an embedded CUE schema before it is
// decoded, so typos in backend names or empty paths are caught with a
// schema error instead of failing later at open time. A missing file is
// not an error: compiled-in defaults apply.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Backend names accepted in the storage section.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Config is the resolved bookstore configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Chart   ChartConfig   `yaml:"chart"`
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	Backend   string `yaml:"backend"`   // "csv" or "sqlite"
	Inventory string `yaml:"inventory"` // CSV backend: inventory file path
	Sales     string `yaml:"sales"`     // CSV backend: sales file path
	SQLite    string `yaml:"sqlite"`    // SQLite backend: database file path
}

// ChartConfig parameterizes chart output.
type ChartConfig struct {
	Output string `yaml:"output"` // dashboard HTML file path
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend:   BackendCSV,
			Inventory: "inventory.csv",
			Sales:     "sales.csv",
			SQLite:    "bookstore.db",
		},
		Chart: ChartConfig{
			Output: "bookstore_dashboard.html",
		},
	}
}

// Load reads and validates the config file at path.
//
// An empty path or a missing file yields Default(). Fields omitted from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	// Validate the document shape against the CUE schema before decoding.
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validateSchema(doc); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// validateSchema unifies the decoded document with #Config and reports any
// constraint violations.
func validateSchema(doc map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return formatCUEError(err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return formatCUEError(err)
	}

	val := ctx.Encode(doc)
	if err := val.Err(); err != nil {
		return formatCUEError(err)
	}

	if err := def.Unify(val).Validate(); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError flattens a CUE error list into a single readable error.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	return errors.New(cueerrors.Details(errs[0], nil))
}
