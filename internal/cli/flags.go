package cli

import (
	"fmt"

	"codeberg.org/snonux/locconv/internal/schema"
	"codeberg.org/snonux/locconv/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string
	ToCSV   string
	ToJSON  string
	Archive bool

	// Conversion flags
	Format    string
	IDColumns []string

	// Logging flags
	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Format:    "json",
		IDColumns: append([]string(nil), schema.DefaultIDColumns...),
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// ValidateMode checks that exactly one output mode was requested
func (f *Flags) ValidateMode() error {
	switch {
	case f.ToCSV != "" && f.ToJSON != "":
		return fmt.Errorf("%w: specify --to-csv or --to-json, not both", translation.ErrUsage)
	case f.ToCSV == "" && f.ToJSON == "":
		return fmt.Errorf("%w: specify --to-csv or --to-json", translation.ErrUsage)
	}
	return nil
}
