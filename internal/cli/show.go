package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/macropower/chatwin/pkg/config"
)

var outputFormats = []string{"table", "json", "yaml"}

type ShowArgs struct {
	*RootArgs

	Output string
}

func NewShowCmd(ra *RootArgs) *cobra.Command {
	args := &ShowArgs{RootArgs: ra}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return show(cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().StringVarP(&args.Output, "output", "o", "table",
		fmt.Sprintf("Output format, one of: %s", strings.Join(outputFormats, ", ")))
	must(cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(outputFormats, cobra.ShellCompDirectiveNoFileComp),
	))

	return cmd
}

func show(w io.Writer, args *ShowArgs) error {
	if !slices.Contains(outputFormats, args.Output) {
		return fmt.Errorf("invalid argument %q for --output: one of %s", args.Output, strings.Join(outputFormats, ", "))
	}

	_, chat, r, err := openChat(args.ConfigPath)
	if err != nil {
		return err
	}

	if !r.ErrorFree() {
		renderReport(w, r)
		return fmt.Errorf("%s: %w", args.ConfigPath, ErrInvalidConfig)
	}

	s, _ := chat.Settings()

	return writeSettings(w, args.Output, s)
}

func writeSettings(w io.Writer, format string, s config.Settings) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return writeHighlighted(w, string(b)+"\n", "json")

	case "yaml":
		b, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return writeHighlighted(w, string(b), "yaml")

	default:
		renderSettings(w, s)
	}

	return nil
}
