// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tidycli/tidy/internal/classify"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the settings for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	// Category overrides must name one of the fixed categories.
	if _, err := classify.NewTable(c.Categories); err != nil {
		errs = append(errs, fmt.Sprintf("categories: %v", err))
	}

	return errs
}
