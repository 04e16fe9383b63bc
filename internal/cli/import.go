package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cvpress/internal/record"
	"cvpress/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Database string
}

// importFile is the YAML shape the import command accepts.
type importFile struct {
	Records []record.Record `yaml:"records"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Bulk-load work records from a YAML file",
		Long: `Bulk-load work records from a YAML file into the database.

The file holds a records list:

  records:
    - title: Engineer
      company: Acme
      start_date: Jan 2022
      end_date: Dec 2023
      description: Built widgets

Every record is validated before any is stored; an invalid entry aborts the
whole import.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", DefaultDBPath, "path to SQLite database")

	return cmd
}

// importResult is the JSON payload for a completed import.
type importResult struct {
	Imported int     `json:"imported"`
	IDs      []int64 `json:"ids"`
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read import file", err)
	}

	var file importFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return WrapExitError(ExitCommandError, "failed to parse import file", err)
	}
	if len(file.Records) == 0 {
		return WrapExitError(ExitCommandError, fmt.Sprintf("no records found in %s", path), nil)
	}

	// Validate everything up front so a bad entry aborts before any write.
	for i, rec := range file.Records {
		if err := rec.Validate(); err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("record %d is invalid", i+1), err)
		}
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ids := make([]int64, 0, len(file.Records))
	for i, rec := range file.Records {
		id, err := st.AddRecord(cmd.Context(), rec)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to store record %d", i+1), err)
		}
		formatter.VerboseLog("Imported record %d: %s at %s", id, rec.Title, rec.Company)
		ids = append(ids, id)
	}

	if opts.Format == "json" {
		return formatter.Success(importResult{Imported: len(ids), IDs: ids})
	}
	return formatter.Success(fmt.Sprintf("✓ Imported %d record(s) from %s", len(ids), path))
}
