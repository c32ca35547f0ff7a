package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/macropower/chatwin/pkg/config"
)

// ErrUnknownKey is returned by set for keys that are not chat settings.
var ErrUnknownKey = errors.New("unknown key")

const maxSuggestions = 3

type SetArgs struct {
	*RootArgs

	Diff bool
}

func NewSetCmd(ra *RootArgs) *cobra.Command {
	args := &SetArgs{RootArgs: ra}

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Validate and save a single setting",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, posArgs []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(posArgs) == 0 {
				return config.Keys(), cobra.ShellCompDirectiveNoFileComp
			}

			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			return set(cmd.OutOrStdout(), args, posArgs[0], posArgs[1])
		},
	}

	cmd.Flags().BoolVarP(&args.Diff, "diff", "d", false, "Print a unified diff of the file")

	return cmd
}

func set(w io.Writer, args *SetArgs, key, value string) error {
	if !config.IsKnownKey(key) {
		return unknownKeyError(key)
	}

	f, chat, r, err := openChat(args.ConfigPath)
	if err != nil {
		return err
	}

	if !r.ErrorFree() {
		// The value is still written, since it may be what fixes the file.
		slog.Warn("settings file has problems",
			slog.String("path", args.ConfigPath),
			slog.Int("errors", r.Len()),
		)
	}

	before, err := f.Bytes()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	err = chat.SetValue(key, value)
	if err != nil {
		return err //nolint:wrapcheck // Already includes the key.
	}

	if !f.Dirty() {
		slog.Info("setting unchanged", slog.String("key", key), slog.String("value", value))
		return nil
	}

	after, err := f.Bytes()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	err = f.Save()
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	slog.Info("saved setting", slog.String("key", key), slog.String("value", value))

	if args.Diff {
		mustN(io.WriteString(w, udiff.Unified(
			"a/"+args.ConfigPath, "b/"+args.ConfigPath,
			string(before), string(after),
		)))
	}

	return nil
}

// unknownKeyError suggests the known keys closest to key.
func unknownKeyError(key string) error {
	matches := fuzzy.Find(key, config.Keys())
	sort.Stable(matches)

	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}

		suggestions = append(suggestions, m.Str)
	}

	if len(suggestions) == 0 {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}

	return fmt.Errorf("%w %q, did you mean %s?", ErrUnknownKey, key, strings.Join(suggestions, " or "))
}
