package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
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
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Config)
		wantErr bool
	}{
		"default": {
			mutate: func(c *Config) {},
		},
		"blank hostname": {
			mutate:  func(c *Config) { c.Hostname = "" },
			wantErr: true,
		},
		"bad hostname": {
			mutate:  func(c *Config) { c.Hostname = "no spaces allowed" },
			wantErr: true,
		},
		"negative port": {
			mutate:  func(c *Config) { c.SSHPort = -1 },
			wantErr: true,
		},
		"port too big": {
			mutate:  func(c *Config) { c.SSHPort = 70000 },
			wantErr: true,
		},
		"blank home": {
			mutate:  func(c *Config) { c.HomeDir = "" },
			wantErr: true,
		},
		"blank overrides": {
			mutate:  func(c *Config) { c.OverrideDir = "" },
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestInitializeAndLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Initialize(dir)
	require.Nil(t, err)
	assert.Equal(t, "localhost", cfg.Hostname)

	// A second initialize must not clobber the existing config.
	_, err = Initialize(dir)
	assert.NotNil(t, err)

	loaded, err := Load(dir)
	require.Nil(t, err)
	assert.Equal(t, cfg, loaded)

	// Loading by file path behaves like loading the directory.
	byFile, err := Load(filepath.Join(dir, ConfigurationName))
	require.Nil(t, err)
	assert.Equal(t, cfg, byFile)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigurationName),
		[]byte("hostname: h\nhome_dir: /h\noverride_dir: /o\nbogus_field: 1\n"), 0644)
	require.Nil(t, err)

	_, err = Load(dir)
	assert.NotNil(t, err)
}
