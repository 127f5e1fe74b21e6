package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name the shell looks for.
	ConfigurationName = "blsh.yaml"

	// DefaultPrompt is written before each read, no trailing newline.
	DefaultPrompt = "> "

	// DefaultMotd is the banner the help builtin prints.
	DefaultMotd = "BarkBuff's LittleShell"
)

// Configuration holds the cosmetic outer-surface settings: prompt,
// banner, history. The command loop itself interprets none of this; the
// CLI resolves it once and passes values in.
type Configuration struct {
	// Prompt is printed before each read.
	Prompt string `json:"prompt" validate:"required"`

	// Motd is the banner the help builtin prints.
	Motd string `json:"motd"`

	// HistoryFile is where interactive sessions persist history.
	// Empty disables persistence.
	HistoryFile string `json:"history_file"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	// Will panic() on load failure because it should never happen at runtime.
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
