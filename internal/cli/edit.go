package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/chatwin/pkg/log"
	"github.com/macropower/chatwin/pkg/props"
	"github.com/macropower/chatwin/pkg/ui/settings"
)

// ErrUnexpectedModel is returned when the editor exits with a foreign model.
var ErrUnexpectedModel = errors.New("unexpected final model")

type EditArgs struct {
	*RootArgs

	Watch bool
}

func NewEditCmd(ra *RootArgs) *cobra.Command {
	args := &EditArgs{RootArgs: ra}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in the terminal",
		Long: `Edit settings with sliders and checkboxes.

Changes are saved with ctrl+s, and when quitting. With --watch, the editor
reloads the file when it is changed by another program.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return edit(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	cmd.Flags().BoolVarP(&args.Watch, "watch", "w", false, "Reload when the file changes on disk")

	return cmd
}

func edit(ctx context.Context, stdout, stderr io.Writer, args *EditArgs) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // G115: Fd fits in int.
		return fmt.Errorf("edit: %w", ErrNotInteractive)
	}

	f, chat, r, err := openChat(args.ConfigPath)
	if err != nil {
		return err
	}

	if !r.ErrorFree() {
		renderReport(stdout, r)
		return fmt.Errorf("%s: %w", args.ConfigPath, ErrInvalidConfig)
	}

	m, err := settings.New(chat, f)
	if err != nil {
		return fmt.Errorf("create editor: %w", err)
	}

	// Logs would corrupt the alt screen, so they are held until the editor exits.
	opts, err := log.ParseOptions(args.LogLevel, args.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	ring := log.NewRing(log.DefaultRingSize)
	prev := slog.Default()
	slog.SetDefault(slog.New(log.NewHandler(ring, opts)))

	defer func() {
		slog.SetDefault(prev)
		flushLogs(stderr, ring)
	}()

	p := settings.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if args.Watch {
		stop, err := forwardChanges(args.ConfigPath, p)
		if err != nil {
			return err
		}

		defer stop()
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	fm, ok := settings.Result(final)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedModel, final)
	}

	return fm.Err()
}

// forwardChanges sends a [settings.ReloadMsg] to p whenever path changes.
func forwardChanges(path string, p *tea.Program) (func(), error) {
	w, err := props.NewWatcher(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events():
				if !ok {
					return
				}

				slog.Debug("settings file changed", slog.String("op", ev.Op.String()))
				p.Send(settings.ReloadMsg{})

			case err, ok := <-w.Errors():
				if !ok {
					return
				}

				slog.Warn("watch settings", slog.Any("error", err))
			}
		}
	}()

	return func() {
		if err := w.Close(); err != nil {
			slog.Warn("close watcher", slog.Any("error", err))
		}
	}, nil
}

func flushLogs(w io.Writer, ring *log.Ring) {
	slog.Debug("flush logs to console",
		slog.Int("count", ring.Len()),
		slog.Int("dropped", ring.Dropped()),
	)

	mustN64(ring.Flush(w))
}

func mustN64(_ int64, err error) {
	must(err)
}
