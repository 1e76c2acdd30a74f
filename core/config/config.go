// Package config loads the optional user configuration from ~/.gshrc.yaml.
// A missing file silently yields the embedded defaults.
package config

import (
	_ "embed"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// FileName is the configuration file looked up under the user's home
// directory.
const FileName = ".gshrc.yaml"

type Config struct {
	// PromptColor renders the working directory in the prompt with color.
	PromptColor bool `json:"prompt_color"`

	// DoubleTapWindowMS is how many milliseconds apart two TAB presses may
	// be and still reveal the completion candidate list.
	DoubleTapWindowMS int `json:"double_tap_window_ms" validate:"gt=0,lte=60000"`

	// LineBufferSize is the initial allocation of the line editor buffer.
	// Values at or below the editor's built-in 1024 bytes leave that
	// allocation unchanged.
	LineBufferSize int `json:"line_buffer_size" validate:"gte=0,lte=1048576"`
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

// DoubleTapWindow returns the double-tap window as a duration.
func (c *Config) DoubleTapWindow() time.Duration {
	return time.Duration(c.DoubleTapWindowMS) * time.Millisecond
}
