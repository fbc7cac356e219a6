package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"shiftsync/config"
	"shiftsync/services/backend"
	"shiftsync/services/schedule"
	"shiftsync/utils"

	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse an .xlsx schedule and print it as JSON",
		Long: `Parse every week tab of a local workbook the same way GET /schedule does.

Example:
  shiftsync parse --file schedule.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			if _, err := os.Stat(file); err != nil {
				return fmt.Errorf("checking workbook: %w", err)
			}
			config.LoadConfig()

			svc := schedule.NewService(schedule.NewGridParser(nil), nil, utils.GetLogger())
			resp, err := svc.Build(context.Background(), backend.NewXLSXSpreadsheet(file))
			if err != nil {
				return fmt.Errorf("parsing %s: %w", file, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the .xlsx workbook")
	return cmd
}
