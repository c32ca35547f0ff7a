package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindEnvVars sets every flag of cmd and its subcommands that was not given
// on the command line from a CHATWIN_<FLAG> environment variable, with dashes
// in the flag name replaced by underscores. The variable name is appended to
// the flag usage.
//
// Precedence is: arguments, then environment, then defaults.
func bindEnvVars(cmd *cobra.Command) {
	bind := func(f *pflag.Flag) {
		name := envName(f.Name)

		if !strings.Contains(f.Usage, "$"+name) {
			f.Usage = fmt.Sprintf("%s ($%s)", f.Usage, name)
		}

		if f.Changed {
			return
		}

		v, ok := os.LookupEnv(name)
		if !ok {
			return
		}

		if err := f.Value.Set(v); err != nil {
			slog.Warn("ignoring invalid environment variable",
				slog.String("env", name),
				slog.String("value", v),
				slog.Any("error", err),
			)
		}
	}

	cmd.PersistentFlags().VisitAll(bind)
	cmd.LocalNonPersistentFlags().VisitAll(bind)

	for _, sub := range cmd.Commands() {
		bindEnvVars(sub)
	}
}

// envName returns the environment variable for a flag, e.g. "log-level"
// becomes "CHATWIN_LOG_LEVEL".
func envName(flag string) string {
	return strings.ToUpper(cmdName + "_" + strings.ReplaceAll(flag, "-", "_"))
}
