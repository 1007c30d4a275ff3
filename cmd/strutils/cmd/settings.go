package cmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Wosser1sProductions/utils/core/config"
	"github.com/Wosser1sProductions/utils/core/errors"
	"github.com/Wosser1sProductions/utils/core/log"
)

// defaults are the configured values subcommands fall back to when their
// flag is not given.
type defaults struct {
	SplitDelimiter string `json:"split.delimiter"`
	SplitMax       int    `json:"split.max"`
	JoinSeparator  string `json:"join.separator"`
	QuotedChar     string `json:"quoted.char"`
	Base64Jobs     int    `json:"base64.jobs"`
	LogLevel       string `json:"log.level"`
	LogFormat      string `json:"log.format"`
}

func readDefaults(c *config.Config) defaults {
	return defaults{
		SplitDelimiter: c.GetString("split.delimiter", ","),
		SplitMax:       c.GetInt("split.max", -1),
		JoinSeparator:  c.GetString("join.separator", ","),
		QuotedChar:     c.GetString("quoted.char", "'"),
		Base64Jobs:     c.GetInt("base64.jobs", 4),
		LogLevel:       c.GetString("log.level", "warn"),
		LogFormat:      c.GetString("log.format", "text"),
	}
}

// Validate checks the configured values, not the flags.
func (d *defaults) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.SplitDelimiter, validation.Required, validation.Length(1, 1)),
		validation.Field(&d.SplitMax, validation.Min(-1)),
		validation.Field(&d.QuotedChar, validation.Required, validation.Length(1, 1)),
		validation.Field(&d.Base64Jobs, validation.Required, validation.Min(1), validation.Max(256)),
		validation.Field(&d.LogLevel, validation.By(func(v interface{}) error {
			_, err := log.ParseLevel(v.(string))
			return err
		})),
		validation.Field(&d.LogFormat, validation.By(func(v interface{}) error {
			_, err := log.ParseFormat(v.(string))
			return err
		})),
	)
}

func checkDefaults(c *config.Config) error {
	d := readDefaults(c)
	if err := d.Validate(); err != nil {
		source := c.FilePath()
		if source == "" {
			source = "environment"
		}
		return errors.ConfigInvalid(source, err)
	}
	return nil
}
