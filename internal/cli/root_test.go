package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func TestGetVersion(t *testing.T) {
	version := getVersion()
	assert.Contains(t, version, "dev")
	assert.Contains(t, version, "unknown")
}

func TestInitLogging(t *testing.T) {
	require.NotPanics(t, func() {
		initLogging()
	})
}

func TestInitConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NotPanics(t, func() {
		initConfig()
	})
}

func TestInitConfigWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: false\n"), 0644))

	previous := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = previous })

	initConfig()
	assert.Equal(t, path, viper.ConfigFileUsed())
}

func executeCommand(root *cobra.Command, stdin string, args ...string) (output string, err error) {
	// Create a copy of the root command to avoid modifying the global one
	cmd := &cobra.Command{
		Use:   root.Use,
		Short: root.Short,
		Long:  root.Long,
		Args:  root.Args,
		RunE:  root.RunE,
	}

	for _, subCmd := range root.Commands() {
		cmd.AddCommand(subCmd)
	}

	cmd.Flags().AddFlagSet(root.Flags())
	cmd.PersistentFlags().AddFlagSet(root.PersistentFlags())

	buf := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return ansiRe.ReplaceAllString(buf.String(), ""), err
}

func setViper(t *testing.T, key string, value any) {
	t.Helper()
	previous := viper.Get(key)
	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, previous) })
}

func TestRootCommandHelp(t *testing.T) {
	output, err := executeCommand(rootCmd, "", "--help")
	assert.NoError(t, err)
	assert.Contains(t, output, "GradeBook is an interactive grade-tracking tool")
	assert.Contains(t, output, "Available Commands:")
}

func TestRootCommandRunsSession(t *testing.T) {
	setViper(t, "quiet", true)

	output, err := executeCommand(rootCmd, "1\n1\nLuz\n91\nn\ne\n")
	require.NoError(t, err)
	assert.Contains(t, output, "Final Result Table")
	assert.Contains(t, output, "Luz                 91.00   A     ")
	assert.Contains(t, output, "Exiting program. Goodbye!")
}

func TestRootCommandRejectsArguments(t *testing.T) {
	_, err := executeCommand(rootCmd, "", "unexpected")
	assert.Error(t, err)
}

func TestGlobalFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	assert.NotNil(t, flag)
	assert.Equal(t, "string", flag.Value.Type())

	flag = rootCmd.PersistentFlags().Lookup("log-level")
	assert.NotNil(t, flag)
	assert.Equal(t, "disabled", flag.DefValue)

	flag = rootCmd.PersistentFlags().Lookup("output")
	assert.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)

	flag = rootCmd.PersistentFlags().Lookup("quiet")
	assert.NotNil(t, flag)
	assert.Equal(t, "bool", flag.Value.Type())

	flag = rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "bool", flag.Value.Type())
}

func TestCommandAvailability(t *testing.T) {
	for _, cmdName := range []string{"report", "version"} {
		cmd, _, err := rootCmd.Find([]string{cmdName})
		assert.NoError(t, err, "Command %s should be available", cmdName)
		assert.Equal(t, cmdName, cmd.Name(), "Command name should match")
	}
}
