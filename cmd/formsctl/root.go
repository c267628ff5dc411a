package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/fieldforms-backend/internal/adapter/airtable"
	"github.com/heartmarshall/fieldforms-backend/internal/app"
	"github.com/heartmarshall/fieldforms-backend/internal/config"
)

// env is the state shared by every subcommand, filled in by the root
// command's PersistentPreRunE.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

func (e *env) store() *airtable.Client {
	return airtable.NewClient(e.cfg.Store, e.cfg.Retry, e.logger)
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "formsctl",
		Short:         "Operator tool for the forms backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			e.logger, e.closer = app.NewLogger(cfg.Log)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if e.closer != nil {
				return e.closer.Close()
			}
			return nil
		},
	}

	root.AddCommand(
		newPingCmd(e),
		newFindCmd(e),
		newLinkCmd(e),
		newSlotsCmd(e),
		newEncodeCmd(e),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
