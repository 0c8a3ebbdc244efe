package main

import (
	"fmt"

	"algo-notes-be/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every note to a Markdown file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		notes, err := container.NoteService.ListNotes(cmd.Context())
		if err != nil {
			return fmt.Errorf("error listing notes: %w", err)
		}

		if err := service.ExportMarkdown(exportOut, notes); err != nil {
			return fmt.Errorf("error writing %s: %w", exportOut, err)
		}

		color.Green("Exported %d topic(s) to %s", len(notes), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "notes.md", "Destination Markdown file")
}
