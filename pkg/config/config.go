package config

import (
	"io"
	"os"
	"strconv"

	"github.com/San4eeez/Cruzak/pkg/consts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Source describes the workbook to import.
	Source struct {
		// File is the path of the xlsx workbook.
		File string `yaml:"file"`

		// Sheet selects the worksheet by name. The first sheet is used when empty.
		Sheet string `yaml:"sheet,omitempty"`

		// SkipRows is the number of leading metadata rows that are ignored.
		SkipRows int `yaml:"skip_rows"`
	}

	// TLS holds the client certificate settings used for ClickHouse over mTLS.
	TLS struct {
		CertFile string `yaml:"cert_file,omitempty"`
		KeyFile  string `yaml:"key_file,omitempty"`
		CAFile   string `yaml:"ca_file,omitempty"`
	}

	// Database describes the import target.
	Database struct {
		// Driver is one of postgres, pgx, sqlite or clickhouse.
		Driver string `yaml:"driver"`

		// DSN, when set, is passed to the driver as is and the connection fields
		// below are ignored. For sqlite it is the database file path.
		DSN string `yaml:"dsn,omitempty"`

		Host     string `yaml:"host"`
		Port     int    `yaml:"port,omitempty"`
		Name     string `yaml:"name"`
		User     string `yaml:"user"`
		Password string `yaml:"password,omitempty"`
		SSLMode  string `yaml:"sslmode,omitempty"`

		TLS TLS `yaml:"tls,omitempty"`
	}

	// Import holds the normalization and durability settings of a run.
	Import struct {
		// CommitMode is per_product (default) or single.
		CommitMode string `yaml:"commit_mode"`

		// NumericOnly is drop (default) or emit.
		NumericOnly string `yaml:"numeric_only"`

		// InvalidDate is null (default) or fail.
		InvalidDate string `yaml:"invalid_date"`

		// AffirmativeToken is the flag cell text marking a domestic product.
		AffirmativeToken string `yaml:"affirmative_token"`
	}

	// Config is the cruzak configuration file.
	Config struct {
		Source   Source   `yaml:"source"`
		Database Database `yaml:"database"`
		Import   Import   `yaml:"import"`
	}
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Source: Source{
			File:     consts.DefaultSourceFile,
			SkipRows: consts.DefaultSkipRows,
		},
		Database: Database{
			Driver:  consts.DefaultDriver,
			Host:    consts.DefaultHost,
			Name:    consts.DefaultDatabase,
			User:    consts.DefaultUser,
			SSLMode: consts.DefaultSSLMode,
		},
		Import: Import{
			CommitMode:       "per_product",
			NumericOnly:      "drop",
			InvalidDate:      "null",
			AffirmativeToken: consts.AffirmativeToken,
		},
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Keys missing from the document keep their Default values, so a file only
// needs to mention what differs:
//
//	database:
//	  name: catalog
//	  password: secret
//	import:
//	  commit_mode: single
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cruzak config")
	}

	if cfg.Source.SkipRows < 0 {
		return nil, errors.Errorf("source.skip_rows must not be negative: %d", cfg.Source.SkipRows)
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Load resolves the configuration for a run and applies environment overrides.
//
// An empty path looks up consts.DefaultConfigFile and falls back to Default
// when that file doesn't exist. An explicit path must exist.
func Load(path string) (*Config, error) {
	required := path != ""
	if !required {
		path = consts.DefaultConfigFile
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		if required || !os.IsNotExist(errors.Cause(err)) {
			return nil, err
		}
		cfg = Default()
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides database settings from CRUZAK_DB_* variables. Unset or
// empty variables leave the current value alone.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	overrides := []struct {
		key string
		dst *string
	}{
		{"CRUZAK_DB_DRIVER", &c.Database.Driver},
		{"CRUZAK_DB_DSN", &c.Database.DSN},
		{"CRUZAK_DB_HOST", &c.Database.Host},
		{"CRUZAK_DB_NAME", &c.Database.Name},
		{"CRUZAK_DB_USER", &c.Database.User},
		{"CRUZAK_DB_PASSWORD", &c.Database.Password},
		{"CRUZAK_DB_SSLMODE", &c.Database.SSLMode},
	}

	for _, o := range overrides {
		if v := getenv(o.key); v != "" {
			*o.dst = v
		}
	}

	if v := getenv("CRUZAK_DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid CRUZAK_DB_PORT: %s", v)
		}
		c.Database.Port = port
	}

	return nil
}

// PortOrDefault returns the configured port or the driver's default one.
func (d Database) PortOrDefault() int {
	switch {
	case d.Port != 0:
		return d.Port
	case d.Driver == "clickhouse":
		return consts.DefaultCHPort
	default:
		return consts.DefaultPort
	}
}
