// Package config reads dict construction parameters from YAML files.
package config

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/graph-guard/chaindict/pkg/hasher"
	plog "github.com/phuslu/log"
	yaml "gopkg.in/yaml.v3"
)

const (
	DefaultInitialCapacity = 8
	DefaultLoadFactor      = 2.0 / 3.0
	DefaultLogLevel        = "info"
)

type Config struct {
	InitialCapacity int     `yaml:"initial_capacity"`
	LoadFactor      float64 `yaml:"load_factor"`
	Hasher          string  `yaml:"hasher"`
	Seed            uint64  `yaml:"seed"`
	LogLevel        string  `yaml:"log_level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		InitialCapacity: DefaultInitialCapacity,
		LoadFactor:      DefaultLoadFactor,
		Hasher:          hasher.NameDefault,
		LogLevel:        DefaultLogLevel,
	}
}

// Read reads the configuration file at filePath from filesystem.
// Fields missing in the file keep their default values.
func Read(filesystem fs.FS, filePath string) (*Config, error) {
	f, err := filesystem.Open(filePath)
	if err != nil {
		return nil, &ErrorMissing{FilePath: filePath}
	}
	defer f.Close()
	return Decode(f, filePath)
}

// Decode decodes a configuration from r.
// filePath is only used for error reporting.
func Decode(r io.Reader, filePath string) (*Config, error) {
	c := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil && err != io.EOF {
		return nil, &ErrorIllegal{
			FilePath: filePath,
			Feature:  "syntax",
			Message:  err.Error(),
		}
	}
	if err := c.validate(filePath); err != nil {
		return nil, err
	}
	return c, nil
}

// validate rejects what the dict constructor would silently accept.
func (c *Config) validate(filePath string) error {
	if c.InitialCapacity < 1 {
		return &ErrorIllegal{
			FilePath: filePath,
			Feature:  "initial_capacity",
			Message:  fmt.Sprintf("must be positive, got %d", c.InitialCapacity),
		}
	}
	if c.LoadFactor <= 0 || c.LoadFactor > 1 {
		return &ErrorIllegal{
			FilePath: filePath,
			Feature:  "load_factor",
			Message:  fmt.Sprintf("must be in (0, 1], got %g", c.LoadFactor),
		}
	}
	if !hasher.Valid(c.Hasher) {
		return &ErrorIllegal{
			FilePath: filePath,
			Feature:  "hasher",
			Message:  fmt.Sprintf("unknown hasher %q", c.Hasher),
		}
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return &ErrorIllegal{
			FilePath: filePath,
			Feature:  "log_level",
			Message:  fmt.Sprintf("unknown level %q", c.LogLevel),
		}
	}
	return nil
}

var logLevels = map[string]plog.Level{
	"trace": plog.TraceLevel,
	"debug": plog.DebugLevel,
	"info":  plog.InfoLevel,
	"warn":  plog.WarnLevel,
	"error": plog.ErrorLevel,
	"fatal": plog.FatalLevel,
	"panic": plog.PanicLevel,
}

// Logger creates a logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *plog.Logger {
	l, ok := logLevels[strings.ToLower(c.LogLevel)]
	if !ok {
		l = plog.InfoLevel
	}
	return &plog.Logger{
		Level:      l,
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer:     &plog.IOWriter{Writer: w},
	}
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	if e.Feature == "" {
		b.Grow(len("missing ") + len(e.FilePath))
		b.WriteString("missing ")
		b.WriteString(e.FilePath)
		return b.String()
	}
	b.Grow(len("missing ") + len(e.Feature) + len(" in ") + len(e.FilePath))
	b.WriteString("missing ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.Grow(len("illegal ") +
		len(e.Feature) +
		len(" in ") +
		len(e.FilePath) +
		len(": ") +
		len(e.Message))
	b.WriteString("illegal ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
