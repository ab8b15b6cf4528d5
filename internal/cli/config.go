package cli

import "fmt"

// Config holds all configuration for a minigrep run.
type Config struct {
	Pattern    string
	Paths      []string
	Highlight  bool // -c: wrap matched text in color escapes
	Machine    bool // -m: file:line:column:text records
	IgnoreCase bool // -i: case-insensitive matching
}

// Validate checks that the config is valid and returns an error if not.
// Highlight and Machine are mutually exclusive; the formatter re-checks
// this for callers that skip the CLI entirely.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	if len(c.Paths) == 0 {
		return fmt.Errorf("no files specified")
	}
	if c.Highlight && c.Machine {
		return fmt.Errorf("cannot use -c (color) and -m (machine) together")
	}
	return nil
}
