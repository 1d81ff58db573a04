// Package config holds the shell's user-editable configuration.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the name of the on-disk configuration file.
	ConfigurationName = "config.yaml"

	// DefaultPrompt is the PS1 used when the configuration doesn't set one.
	DefaultPrompt = `\u@\h:\w\$ `
)

// Config describes a shell installation.
type Config struct {
	Hostname string `json:"hostname" validate:"required,hostname_rfc1123"`
	Prompt   string `json:"prompt"`
	Motd     string `json:"motd"`

	SSHPort   int    `json:"ssh_port" validate:"gte=0,lte=65535"`
	SSHBanner string `json:"ssh_banner"`

	HomeDir     string `json:"home_dir" validate:"required"`
	OverrideDir string `json:"override_dir" validate:"required"`

	Env map[string]string `json:"env"`
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Config {
	var out Config
	if err := unmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
