package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/locconv/internal"
	"codeberg.org/snonux/locconv/internal/translation"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "locconv <from>",
		Short: "Translation dictionary converter",
		Long: `locconv converts a translation dictionary between a single CSV file
(one row per key, one column per locale) and a directory holding one
JSON or YAML file per locale.

The CSV id column is the first column named id, key or hash (or _id,
_key, _hash). Columns starting with an underscore are never locales.

Examples:
  locconv translations.csv --to-json locales/   # CSV to one file per locale
  locconv locales/ --to-csv translations.csv    # locale files back to CSV
  locconv translations.csv --to-json locales/ --format yaml`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", translation.ErrUsage, err)
	})

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", translation.ErrUsage, err)
		}
		return nil
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.locconv.yaml)")

	// Mode flags
	cmd.Flags().StringVar(&flags.ToCSV, "to-csv", "", "Convert a directory of locale files into this CSV file")
	cmd.Flags().StringVar(&flags.ToJSON, "to-json", "", "Convert a CSV file into locale files in this directory")

	// Conversion flags
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Locale file format (json or yaml)")
	cmd.Flags().StringSliceVar(&flags.IDColumns, "id-columns", flags.IDColumns, "Column names recognised as the CSV key column")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move existing output into an archive directory before writing")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: console or json")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("mapping.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("schema.id_columns", cmd.Flags().Lookup("id-columns"))
	viper.BindPFlag("output.archive", cmd.Flags().Lookup("archive"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log.format", cmd.Flags().Lookup("log-format"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			log.Warn().Err(err).Msg("Cannot determine home directory")
		} else {
			viper.AddConfigPath(home)
		}

		// Search config in home and working directory with name ".locconv" (without extension)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".locconv")
	}

	// Environment variables, e.g. LOCCONV_MAPPING_FORMAT
	viper.SetEnvPrefix("LOCCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("Using config file")
	} else if cfgFile != "" {
		log.Warn().Err(err).Str("file", cfgFile).Msg("Failed to read config file")
	}
}

// ApplyConfig copies the effective settings into flags. Values given on the
// command line win over the environment, which wins over the config file.
func ApplyConfig(flags *Flags) {
	flags.Format = viper.GetString("mapping.format")
	if columns := splitList(viper.GetStringSlice("schema.id_columns")); len(columns) > 0 {
		flags.IDColumns = columns
	}
	flags.Archive = viper.GetBool("output.archive")
	flags.LogLevel = viper.GetString("log.level")
	flags.LogFormat = viper.GetString("log.format")
}

// splitList also splits comma-separated entries; environment values such as
// LOCCONV_SCHEMA_ID_COLUMNS=msgid,key arrive as a single element
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
