package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/macropower/chatwin/pkg/props"
)

type ValidateArgs struct {
	*RootArgs

	Watch bool
}

func NewValidateCmd(ra *RootArgs) *cobra.Command {
	args := &ValidateArgs{RootArgs: ra}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a settings file and list every problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if args.Watch {
				return watchValidate(cmd.Context(), cmd.OutOrStdout(), args.ConfigPath)
			}

			return validate(cmd.OutOrStdout(), args.ConfigPath)
		},
	}

	cmd.Flags().BoolVarP(&args.Watch, "watch", "w", false, "Validate again whenever the file changes")

	return cmd
}

func validate(w io.Writer, path string) error {
	_, _, r, err := openChat(path)
	if err != nil {
		return err
	}

	if r.ErrorFree() {
		mustN(fmt.Fprintf(w, "%s is valid%s\n", path, fileDetails(path)))
		return nil
	}

	mustN(fmt.Fprintf(w, "%s has %d problems:\n", path, r.Len()))
	renderReport(w, r)

	return fmt.Errorf("%s: %w", path, ErrInvalidConfig)
}

// fileDetails describes the size and age of the file at path, or returns an
// empty string when it cannot be read.
func fileDetails(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}

	size := humanize.Bytes(uint64(max(0, info.Size()))) //nolint:gosec // Uses max.

	return fmt.Sprintf(" (%s, modified %s)", size, humanize.Time(info.ModTime()))
}

// watchValidate validates path once, then again after every change, until
// ctx is done. Problems are printed but do not stop the loop.
func watchValidate(ctx context.Context, w io.Writer, path string) error {
	watcher, err := props.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Warn("close watcher", slog.Any("error", err))
		}
	}()

	report := func() {
		if err := validate(w, path); err != nil {
			slog.Debug("validation failed", slog.Any("error", err))
		}
	}

	report()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events():
			if !ok {
				return nil
			}

			slog.Debug("settings file changed", slog.String("path", ev.Path), slog.String("op", ev.Op.String()))
			report()

		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}

			slog.Warn("watch settings", slog.Any("error", err))
		}
	}
}
