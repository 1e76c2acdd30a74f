package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Config{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)
	assert.True(t, cfg.PromptColor)
	assert.Equal(t, 1000, cfg.DoubleTapWindowMS)
	assert.Equal(t, 1024, cfg.LineBufferSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, "/home/user/.gshrc.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/user/.gshrc.yaml",
		[]byte("double_tap_window_ms: 2500\n"), 0644))

	cfg, err := Load(fs, "/home/user/.gshrc.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2500, cfg.DoubleTapWindowMS)
	// Untouched fields keep their defaults.
	assert.True(t, cfg.PromptColor)
	assert.Equal(t, 1024, cfg.LineBufferSize)
}

func TestLoadUnknownFieldRejected(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/user/.gshrc.yaml",
		[]byte("no_such_option: true\n"), 0644))

	_, err := Load(fs, "/home/user/.gshrc.yaml")
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/user/.gshrc.yaml",
		[]byte("double_tap_window_ms: -5\n"), 0644))

	_, err := Load(fs, "/home/user/.gshrc.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "double_tap_window_ms")
}

func TestDoubleTapWindow(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "1s", cfg.DoubleTapWindow().String())
}
