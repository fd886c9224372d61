package config_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/graph-guard/chaindict/pkg/config"
	plog "github.com/phuslu/log"
	"github.com/stretchr/testify/require"
)

const ConfigFileName = "config.yml"

func TestRead(t *testing.T) {
	c, err := config.Read(fstest.MapFS{
		ConfigFileName: {Data: []byte(lines(
			`initial_capacity: 16`,
			`load_factor: 0.75`,
			`hasher: siphash`,
			`seed: 42`,
			`log_level: debug`,
		))},
	}, ConfigFileName)
	require.NoError(t, err)
	require.Equal(t, &config.Config{
		InitialCapacity: 16,
		LoadFactor:      0.75,
		Hasher:          "siphash",
		Seed:            42,
		LogLevel:        "debug",
	}, c)
}

func TestReadDefaults(t *testing.T) {
	for _, td := range []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"comment_only", lines(`# initial_capacity: 1234`)},
	} {
		t.Run(td.name, func(t *testing.T) {
			c, err := config.Read(fstest.MapFS{
				ConfigFileName: {Data: []byte(td.data)},
			}, ConfigFileName)
			require.NoError(t, err)
			require.Equal(t, config.Default(), c)
		})
	}
}

func TestErrMissingConfig(t *testing.T) {
	c, err := config.Read(fstest.MapFS{}, ConfigFileName)
	require.Equal(t, &config.ErrorMissing{FilePath: ConfigFileName}, err)
	require.Equal(t, "missing config.yml", err.Error())
	require.Nil(t, c)
}

func TestErrMalformedConfig(t *testing.T) {
	c, err := config.Decode(
		strings.NewReader(lines("not a valid config")),
		ConfigFileName,
	)
	require.Equal(t, &config.ErrorIllegal{
		FilePath: ConfigFileName,
		Feature:  "syntax",
		Message: "yaml: unmarshal errors:\n  " +
			"line 1: cannot unmarshal !!str `not a v...` " +
			"into config.Config",
	}, err)
	require.Nil(t, c)
}

func TestErrUnknownField(t *testing.T) {
	c, err := config.Decode(
		strings.NewReader(lines(`capacity: 8`)),
		ConfigFileName,
	)
	require.IsType(t, &config.ErrorIllegal{}, err)
	require.Equal(t, "syntax", err.(*config.ErrorIllegal).Feature)
	require.Nil(t, c)
}

func TestErrIllegal(t *testing.T) {
	for _, td := range []struct {
		name   string
		data   string
		expect *config.ErrorIllegal
	}{
		{"zero_capacity", lines(`initial_capacity: 0`), &config.ErrorIllegal{
			FilePath: ConfigFileName,
			Feature:  "initial_capacity",
			Message:  "must be positive, got 0",
		}},
		{"negative_capacity", lines(`initial_capacity: -8`), &config.ErrorIllegal{
			FilePath: ConfigFileName,
			Feature:  "initial_capacity",
			Message:  "must be positive, got -8",
		}},
		{"zero_load_factor", lines(`load_factor: 0`), &config.ErrorIllegal{
			FilePath: ConfigFileName,
			Feature:  "load_factor",
			Message:  "must be in (0, 1], got 0",
		}},
		{"load_factor_above_one", lines(`load_factor: 1.5`), &config.ErrorIllegal{
			FilePath: ConfigFileName,
			Feature:  "load_factor",
			Message:  "must be in (0, 1], got 1.5",
		}},
		{"hasher", lines(`hasher: md5`), &config.ErrorIllegal{
			FilePath: ConfigFileName,
			Feature:  "hasher",
			Message:  `unknown hasher "md5"`,
		}},
		{"log_level", lines(`log_level: loud`), &config.ErrorIllegal{
			FilePath: ConfigFileName,
			Feature:  "log_level",
			Message:  `unknown level "loud"`,
		}},
	} {
		t.Run(td.name, func(t *testing.T) {
			c, err := config.Decode(strings.NewReader(td.data), ConfigFileName)
			require.Equal(t, td.expect, err)
			require.Nil(t, c)
		})
	}
}

func TestErrorIllegalMessage(t *testing.T) {
	err := &config.ErrorIllegal{
		FilePath: "a/config.yml",
		Feature:  "hasher",
		Message:  "bad",
	}
	require.Equal(t, "illegal hasher in a/config.yml: bad", err.Error())
}

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	c := config.Default()
	c.LogLevel = "WARN"
	l := c.Logger(&out)
	require.Equal(t, plog.WarnLevel, l.Level)

	l.Info().Msg("dropped")
	require.Zero(t, out.Len())

	l.Warn().Str("key", "value").Msg("kept")
	require.Contains(t, out.String(), `"key":"value"`)
	require.Contains(t, out.String(), `"message":"kept"`)
}

func lines(lines ...string) string {
	var b strings.Builder
	for i := range lines {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}
	return b.String()
}
