package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/locconv/internal/translation"
)

func TestCreateRootCommand(t *testing.T) {
	viper.Reset()
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	assert.Equal(t, "locconv <from>", cmd.Use)
	assert.Contains(t, cmd.Short, "Translation dictionary converter")

	flagNames := []string{"config", "to-csv", "to-json", "format", "id-columns", "archive", "log-level", "log-format"}
	for _, name := range flagNames {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			assert.NotNil(t, flag, "expected flag %s to exist", name)
		})
	}
}

func TestCreateRootCommand_Args(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"one argument", []string{"translations.csv"}, false},
		{"no argument", nil, true},
		{"two arguments", []string{"a.csv", "b.csv"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			cmd := CreateRootCommand(NewFlags())

			err := cmd.Args(cmd, tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, translation.ErrUsage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRootCommand_ParsesFlags(t *testing.T) {
	viper.Reset()
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	var gotArgs []string
	cmd.RunE = func(_ *cobra.Command, args []string) error {
		gotArgs = args
		return nil
	}
	cmd.SetArgs([]string{"translations.csv", "--to-json", "out", "--id-columns", "msgid,key", "--format", "yaml"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"translations.csv"}, gotArgs)
	assert.Equal(t, "out", flags.ToJSON)
	assert.Equal(t, []string{"msgid", "key"}, flags.IDColumns)
	assert.Equal(t, "yaml", flags.Format)
}

func TestCreateRootCommand_UnknownFlag(t *testing.T) {
	viper.Reset()
	cmd := CreateRootCommand(NewFlags())
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	cmd.SetArgs([]string{"translations.csv", "--to-xml", "out"})

	assert.ErrorIs(t, cmd.Execute(), translation.ErrUsage)
}

func TestSetupFlags(t *testing.T) {
	viper.Reset()
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "json", formatFlag.DefValue)
	assert.Equal(t, "f", formatFlag.Shorthand)

	idFlag := cmd.Flags().Lookup("id-columns")
	require.NotNil(t, idFlag)
	assert.Equal(t, "[id,key,hash]", idFlag.DefValue)
}

func TestInitConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfgPath := filepath.Join(t.TempDir(), "locconv.yaml")
	content := `mapping:
  format: yaml
schema:
  id_columns: [msgid]
output:
  archive: true`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	InitConfig(cfgPath)

	assert.Equal(t, "yaml", viper.GetString("mapping.format"))
	assert.Equal(t, []string{"msgid"}, viper.GetStringSlice("schema.id_columns"))
	assert.True(t, viper.GetBool("output.archive"))
}

func TestInitConfig_Environment(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("LOCCONV_LOG_LEVEL", "debug")

	InitConfig("")

	assert.Equal(t, "debug", viper.GetString("log.level"))
}

func TestApplyConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfgPath := filepath.Join(t.TempDir(), "locconv.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("mapping:\n  format: yaml\nlog:\n  level: warn\n"), 0644))

	flags := NewFlags()
	cmd := CreateRootCommand(flags)
	require.NoError(t, cmd.Flags().Set("log-level", "error"))

	InitConfig(cfgPath)
	ApplyConfig(flags)

	assert.Equal(t, "yaml", flags.Format, "config file value applies when the flag is unset")
	assert.Equal(t, "error", flags.LogLevel, "command line wins over the config file")
	assert.Equal(t, "console", flags.LogFormat, "flag default applies when nothing else is set")
	assert.Equal(t, []string{"id", "key", "hash"}, flags.IDColumns)
}

func TestApplyConfig_IDColumnsFromEnvironment(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("LOCCONV_SCHEMA_ID_COLUMNS", "msgid, key")

	flags := NewFlags()
	CreateRootCommand(flags)

	InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	ApplyConfig(flags)

	assert.Equal(t, []string{"msgid", "key"}, flags.IDColumns)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"already split", []string{"id", "key"}, []string{"id", "key"}},
		{"comma separated", []string{"msgid,key"}, []string{"msgid", "key"}},
		{"blank parts dropped", []string{"id,, ", " hash"}, []string{"id", "hash"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.input))
		})
	}
}
