package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/service"
)

type hoursOptions struct {
	file     string
	extended bool
	format   string
}

func newHoursCmd() *cobra.Command {
	opts := &hoursOptions{}

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Format a weekly schedule",
		Long: `Format weekly opening hours into a one-line summary.

--file holds a JSON object keyed by day name, e.g.
{"Monday":"10:00 AM - 8:00 PM","Sat":"10:00 AM - 2:00 AM"}.
Without --file the STORE_HOURS schedule is formatted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHours(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.file, "file", "", "JSON file with hours keyed by day")
	f.BoolVar(&opts.extended, "extended", false, "append the extended weekend hours note")
	f.StringVarP(&opts.format, "format", "f", formatText, "output format (text, json)")

	return cmd
}

func runHours(w io.Writer, opts *hoursOptions) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	raw := config.Load().Store.Hours
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("read hours: %w", err)
		}
		raw = nil
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse hours %s: %w", opts.file, err)
		}
	}

	hours, err := service.ParseWeeklyHours(raw)
	if err != nil {
		return err
	}

	resp := dto.HoursResponse{
		Summary:       service.FormatHours(hours, opts.extended),
		ExtendedHours: service.HasExtendedWeekendHours(hours),
		Hours:         dto.HoursMap(hours),
	}
	if opts.extended && resp.ExtendedHours {
		resp.ExtendedNote, _ = service.FormatExtendedHoursNote(hours)
	}

	if opts.format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Fprintln(w, resp.Summary)
	if resp.ExtendedNote != "" {
		fmt.Fprintf(w, "Late nights: %s\n", resp.ExtendedNote)
	}
	return nil
}
