// Package cli implements the chatwin command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macropower/chatwin/pkg/log"
)

const (
	cmdName = "chatwin"
	cmdDesc = `Validate and edit the display settings of a chat overlay window.`

	cmdExamples = `  # Write the default settings:
  chatwin init

  # Check a settings file and list every problem:
  chatwin validate --config ./chat.properties

  # Change one setting and show what changed:
  chatwin set chatWidth 480 --diff

  # Edit settings with sliders, reloading on outside changes:
  chatwin edit --watch`

	defaultConfigName = "chat.properties"
)

// RootArgs holds flags shared by every command.
type RootArgs struct {
	LogLevel   string
	LogFormat  string
	ConfigPath string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&ra.LogLevel, "log-level", "info", "Log level, one of: "+strings.Join(log.Levels, ", "))
	pf.StringVar(&ra.LogFormat, "log-format", "text", "Log format, one of: "+strings.Join(log.Formats, ", "))
	pf.StringVarP(&ra.ConfigPath, "config", "c", DefaultConfigPath(), "Path to the chat settings file")

	must(cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.Formats, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.Levels, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.MarkPersistentFlagFilename("config", "properties", "yaml", "yml", "toml"))
}

// DefaultConfigPath returns the settings file path used when --config is not
// given: chat.properties under $XDG_CONFIG_HOME/chatwin, falling back to the
// platform config directory.
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error

		dir, err = os.UserConfigDir()
		if err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, cmdName, defaultConfigName)
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging(args),
	}

	args.AddFlags(cmd)

	cmd.AddCommand(
		NewValidateCmd(args),
		NewShowCmd(args),
		NewSetCmd(args),
		NewInitCmd(args),
		NewEditCmd(args),
		NewSchemaCmd(),
	)

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		opts, err := log.ParseOptions(ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(log.NewHandler(cmd.ErrOrStderr(), opts)))

		return nil
	}
}
