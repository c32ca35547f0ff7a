package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/chatwin/pkg/config"
	"github.com/macropower/chatwin/pkg/loadreport"
	"github.com/macropower/chatwin/pkg/props"
	"github.com/macropower/chatwin/pkg/ui/styles"
)

type InitArgs struct {
	*RootArgs

	Force       bool
	Interactive bool
}

func NewInitCmd(ra *RootArgs) *cobra.Command {
	args := &InitArgs{RootArgs: ra}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd.Context(), args)
		},
	}

	cmd.Flags().BoolVarP(&args.Force, "force", "f", false, "Replace an existing file, keeping a .bak copy")
	cmd.Flags().BoolVarP(&args.Interactive, "interactive", "i", false, "Prompt for each value")

	return cmd
}

func initConfig(ctx context.Context, args *InitArgs) error {
	path := args.ConfigPath

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if !args.Force {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}

		err = backup(path)
		if err != nil {
			return err
		}

	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", path, err)
	}

	values := config.DefaultValues()

	if args.Interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec // G115: Fd fits in int.
			return fmt.Errorf("interactive init: %w", ErrNotInteractive)
		}

		values, err = promptValues(ctx, values)
		if err != nil {
			return err
		}
	}

	f := props.NewFile(path)
	for k, v := range values {
		f.Set(k, v)
	}

	err = f.Save()
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	slog.Info("wrote settings", slog.String("path", path))

	return nil
}

func backup(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: User supplied path.
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	bak := path + ".bak"

	err = os.WriteFile(bak, data, 0o600)
	if err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	slog.Info("backed up settings", slog.String("path", bak))

	return nil
}

// validator returns a huh validation func for a single key.
func validator(key string) func(string) error {
	return func(s string) error {
		return config.ValidateValue(loadreport.New(), key, s).Err() //nolint:wrapcheck // Shown inline.
	}
}

func promptValues(ctx context.Context, defaults map[string]string) (map[string]string, error) {
	text := map[string]*string{}
	for _, k := range []string{
		config.KeyWidth, config.KeyHeight,
		config.KeyChromaCornerRadius,
		config.KeyChromaLeft, config.KeyChromaTop, config.KeyChromaRight, config.KeyChromaBottom,
	} {
		v := defaults[k]
		text[k] = &v
	}

	bools := map[string]*bool{}
	for _, k := range []string{
		config.KeyScrollable, config.KeyReverseScrolling, config.KeyResizable,
		config.KeyRememberPosition, config.KeyFromBottom, config.KeyChromaEnabled,
		config.KeyInvertChroma, config.KeyAlwaysOnTop, config.KeyAntiAlias,
	} {
		v := defaults[k] == "true"
		bools[k] = &v
	}

	input := func(key, title string) *huh.Input {
		return huh.NewInput().Title(title).Value(text[key]).Validate(validator(key))
	}
	confirm := func(key, title string) *huh.Confirm {
		return huh.NewConfirm().Title(title).Value(bools[key])
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Chat window").
				Description("Size of the chat window, in pixels."),
			input(config.KeyWidth, "Width"),
			input(config.KeyHeight, "Height"),
		),
		huh.NewGroup(
			huh.NewNote().
				Title("Chroma border").
				Description("A border drawn in the chroma key color, for cropping in a stream."),
			confirm(config.KeyChromaEnabled, "Draw a chroma border?"),
			confirm(config.KeyInvertChroma, "Invert the chroma color?"),
			input(config.KeyChromaCornerRadius, "Corner radius"),
			input(config.KeyChromaLeft, "Left inset"),
			input(config.KeyChromaTop, "Top inset"),
			input(config.KeyChromaRight, "Right inset"),
			input(config.KeyChromaBottom, "Bottom inset"),
		),
		huh.NewGroup(
			confirm(config.KeyScrollable, "Scrollable?"),
			confirm(config.KeyReverseScrolling, "Reverse scrolling?"),
			confirm(config.KeyResizable, "Resizable?"),
			confirm(config.KeyRememberPosition, "Remember position?"),
			confirm(config.KeyFromBottom, "Fill chat from the bottom?"),
			confirm(config.KeyAlwaysOnTop, "Always on top?"),
			confirm(config.KeyAntiAlias, "Anti-alias text?"),
		),
	).
		WithShowHelp(false).
		WithTheme(styles.HuhTheme())

	err := form.RunWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("run init prompt: %w", err)
	}

	values := make(map[string]string, len(defaults))
	for k, v := range defaults {
		values[k] = v
	}

	for k, v := range text {
		values[k] = *v
	}

	for k, v := range bools {
		values[k] = strconv.FormatBool(*v)
	}

	// Re-check the assembled values as a whole.
	r := config.ValidateDimensions(loadreport.New(), values[config.KeyWidth], values[config.KeyHeight])
	config.ValidateChromaBorder(r,
		values[config.KeyChromaLeft], values[config.KeyChromaTop],
		values[config.KeyChromaRight], values[config.KeyChromaBottom],
	)

	err = r.Err()
	if err != nil {
		return nil, fmt.Errorf("invalid values: %w", err)
	}

	return values, nil
}
