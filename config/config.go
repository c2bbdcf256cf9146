// SPDX-License-Identifier: MIT
// Package: dynlath/config
//
// config.go — layered CLI configuration.
//
// Loading order (lowest to highest priority):
//   1. Defaults (Default).
//   2. YAML file, when a path is given.
//   3. DYNLATH_* environment variables.
// The result is validated before it is returned.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/dynlath/edgelist"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DYNLATH_"

// Formats.
const (
	FormatInteractions = "interactions"
	FormatSnapshots    = "snapshots"
)

// Node and timestamp types.
const (
	NodeString      = "string"
	NodeInt         = "int"
	TimestampInt    = "int"
	TimestampLayout = "layout"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete CLI configuration.
type Config struct {
	Format          string `yaml:"format" validate:"oneof=interactions snapshots"`
	Comments        string `yaml:"comments"`
	Delimiter       string `yaml:"delimiter"`
	Encoding        string `yaml:"encoding" validate:"required"`
	Directed        bool   `yaml:"directed"`
	NodeType        string `yaml:"node_type" validate:"oneof=string int"`
	TimestampType   string `yaml:"timestamp_type" validate:"oneof=int layout"`
	TimestampLayout string `yaml:"timestamp_layout" validate:"required_if=TimestampType layout"`
	Reindex         bool   `yaml:"reindex"`

	// Strict fails a run on any skipped line.
	Strict      bool   `yaml:"strict"`
	StrictClose bool   `yaml:"strict_close"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Database    string `yaml:"database"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:        FormatInteractions,
		Comments:      edgelist.DefaultComments,
		Encoding:      "utf-8",
		NodeType:      NodeString,
		TimestampType: TimestampInt,
		LogLevel:      "info",
		Database:      "dynlath.db",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()
		if err := cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode overlays YAML from r onto c. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(c)
}

// ApplyEnv overlays DYNLATH_* variables found by lookup. A variable that is
// set but empty still overrides (DYNLATH_COMMENTS= disables comments).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"FORMAT":           &c.Format,
		"COMMENTS":         &c.Comments,
		"DELIMITER":        &c.Delimiter,
		"ENCODING":         &c.Encoding,
		"NODE_TYPE":        &c.NodeType,
		"TIMESTAMP_TYPE":   &c.TimestampType,
		"TIMESTAMP_LAYOUT": &c.TimestampLayout,
		"LOG_LEVEL":        &c.LogLevel,
		"DATABASE":         &c.Database,
	}
	for key, dst := range strs {
		if val, ok := lookup(EnvPrefix + key); ok {
			*dst = val
		}
	}

	bools := map[string]*bool{
		"DIRECTED":     &c.Directed,
		"REINDEX":      &c.Reindex,
		"STRICT":       &c.Strict,
		"STRICT_CLOSE": &c.StrictClose,
	}
	for key, dst := range bools {
		val, ok := lookup(EnvPrefix + key)
		if !ok || val == "" {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalid, EnvPrefix, key, val)
		}
		*dst = b
	}

	return nil
}

var validate = validator.New()

// Validate checks field constraints and the encoding name.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, formatValidationError(err))
	}
	if _, err := edgelist.LookupEncoding(c.Encoding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}

	return strings.Join(msgs, "; ")
}

// Options returns the edgelist options equivalent to c. Strict is a CLI
// policy and has no option of its own.
func (c *Config) Options() ([]edgelist.Option, error) {
	enc, err := edgelist.LookupEncoding(c.Encoding)
	if err != nil {
		return nil, err
	}
	opts := []edgelist.Option{
		edgelist.WithComments(c.Comments),
		edgelist.WithDelimiter(c.Delimiter),
		edgelist.WithEncoding(enc),
		edgelist.WithDirected(c.Directed),
	}
	if c.NodeType == NodeInt {
		opts = append(opts, edgelist.WithNodeType(edgelist.IntNodes))
	}
	if c.TimestampType == TimestampLayout {
		opts = append(opts,
			edgelist.WithTimestampType(edgelist.TimeLayout(c.TimestampLayout)),
			edgelist.WithTimestampFormat(edgelist.UnixFormat(c.TimestampLayout)),
		)
	}
	if c.Reindex {
		opts = append(opts, edgelist.WithReindex())
	}
	if c.StrictClose {
		opts = append(opts, edgelist.WithStrictClose())
	}

	return opts, nil
}
