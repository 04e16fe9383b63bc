package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cvpress/internal/record"
	"cvpress/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Database    string
	Title       string
	Company     string
	StartDate   string
	EndDate     string
	Description string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a work record to the database",
		Long: `Add a single work record to the work-history database.

Title, company, and start date are required. An empty end date marks the
position as ongoing and renders as "Present".

Example:
  cvpress add --title "Engineer" --company "Acme" --start "Jan 2022" --end "Dec 2023"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", DefaultDBPath, "path to SQLite database")
	cmd.Flags().StringVar(&opts.Title, "title", "", "job title (required)")
	cmd.Flags().StringVar(&opts.Company, "company", "", "organization name (required)")
	cmd.Flags().StringVar(&opts.StartDate, "start", "", "start date, free-form text (required)")
	cmd.Flags().StringVar(&opts.EndDate, "end", "", "end date, empty for an ongoing position")
	cmd.Flags().StringVar(&opts.Description, "description", "", "free-text narrative")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// addResult is the JSON payload for a stored record.
type addResult struct {
	ID int64 `json:"id"`
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rec := record.Record{
		Title:       opts.Title,
		Company:     opts.Company,
		StartDate:   opts.StartDate,
		EndDate:     opts.EndDate,
		Description: opts.Description,
	}
	if err := rec.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid record", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	id, err := st.AddRecord(cmd.Context(), rec)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to store record", err)
	}

	formatter.VerboseLog("Stored record in %s", opts.Database)
	if opts.Format == "json" {
		return formatter.Success(addResult{ID: id})
	}
	return formatter.Success(fmt.Sprintf("✓ Record stored (ID: %d)", id))
}
