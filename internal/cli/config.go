package cli

import (
	"fmt"
	"log/slog"

	"github.com/macropower/chatwin/pkg/config"
	"github.com/macropower/chatwin/pkg/loadreport"
	"github.com/macropower/chatwin/pkg/props"
)

// openChat opens the settings file at path and loads it into a new
// [config.Chat]. A file that cannot be read or decoded is an error; invalid
// values are returned in the report.
func openChat(path string) (*props.File, *config.Chat, *loadreport.Report, error) {
	v, err := config.NewValidator()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create validator: %w", err)
	}

	f, err := props.OpenFile(path, props.WithValidator(v))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open settings: %w", err)
	}

	chat := config.NewChat(f)
	r := chat.Load(loadreport.New())

	slog.Debug("loaded settings",
		slog.String("path", path),
		slog.String("format", string(f.Format())),
		slog.Int("keys", len(f.Keys())),
		slog.Int("errors", r.Len()),
	)

	return f, chat, r, nil
}
