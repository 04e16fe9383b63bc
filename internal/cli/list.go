package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cvpress/internal/record"
	"cvpress/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Database string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List stored work records",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", DefaultDBPath, "path to SQLite database")

	return cmd
}

// listEntry is the JSON payload for a single record.
type listEntry struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	records, err := st.ListRecords(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load records", err)
	}

	if opts.Format == "json" {
		entries := make([]listEntry, len(records))
		for i, rec := range records {
			entries[i] = listEntry{
				ID:          rec.ID,
				Title:       rec.Title,
				Company:     rec.Company,
				StartDate:   rec.StartDate,
				EndDate:     rec.EndDate,
				Description: rec.Description,
			}
		}
		return formatter.Success(entries)
	}

	return formatter.Success(formatRecords(records))
}

// formatRecords renders the human-readable listing.
func formatRecords(records []record.Record) string {
	if len(records) == 0 {
		return "No records stored."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d record(s):\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(&b, "  [%d] %s at %s (%s)\n", rec.ID, rec.Title, rec.Company, rec.DateRange())
		if rec.Description != "" {
			fmt.Fprintf(&b, "      %s\n", rec.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
