package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/fieldforms-backend/internal/attachment"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/internal/service/booking"
	"github.com/heartmarshall/fieldforms-backend/internal/service/links"
)

func newLinkCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Build shareable form links",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "expediente <code>",
		Short: "Link to the support form for a work-order code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := links.NewService(e.cfg.Links).Expediente(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link.URL)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "records <recordId>...",
		Short: "Links to the support form for store record ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := links.NewService(e.cfg.Links).Records(args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	return cmd
}

func newSlotsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "slots [YYYY-MM-DD]",
		Short: "List bookable appointment slots for a date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := booking.NewService(e.logger, nil, e.cfg.Tables, e.cfg.Booking)
			if err != nil {
				return err
			}
			now := time.Now()
			date := now.Format(time.DateOnly)
			if len(args) == 1 {
				date = args[0]
			}
			slots, err := svc.Slots(date, now)
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no slots available on %s\n", date)
				return nil
			}
			for _, s := range slots {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newEncodeCmd(e *env) *cobra.Command {
	var mobile bool
	cmd := &cobra.Command{
		Use:   "encode <file>...",
		Short: "Encode files as the upload endpoint would and report the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blobs := make([]attachment.Blob, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				blobs = append(blobs, attachment.Blob{
					Filename:    filepath.Base(path),
					ContentType: mime.TypeByExtension(filepath.Ext(path)),
					Data:        data,
				})
			}

			device := domain.DeviceDesktop
			if mobile {
				device = domain.DeviceMobile
			}

			results := attachment.NewEncoder(e.cfg.Upload, e.logger).EncodeAll(cmd.Context(), blobs, device)
			failed := 0
			for i, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", blobs[i].Filename, res.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s, %d bytes)\n",
					blobs[i].Filename, res.Attachment.Filename, res.Attachment.Type, res.Attachment.Size)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&mobile, "mobile", false, "apply mobile limits")
	return cmd
}
