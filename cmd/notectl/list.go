package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"algo-notes-be/internal/dto"
	"algo-notes-be/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	listJSON       bool
	filterTopic    string
	filterSubTopic string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes as a topic tree",
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

		filtered := service.FilterNotes(notes, filterTopic, filterSubTopic)

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(filtered)
		}

		renderTree(os.Stdout, filtered)
		return nil
	},
}

// renderTree prints topic > sub-topic > question, one line each.
func renderTree(w io.Writer, notes []*dto.NoteResponse) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}

	topic := color.New(color.FgCyan, color.Bold)
	subTopic := color.New(color.FgYellow)
	id := color.New(color.FgGreen)

	for _, n := range notes {
		topic.Fprintln(w, n.Topic)
		for _, st := range n.SubTopics {
			subTopic.Fprintf(w, "  %s (%d)\n", st.Name, len(st.Questions))
			for _, q := range st.Questions {
				fmt.Fprintf(w, "    %s %s\n", id.Sprint(q.Id), q.Title)
			}
		}
	}
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterTopic, "topic", "", "Only show this topic")
	listCmd.Flags().StringVar(&filterSubTopic, "sub-topic", "", "Only show this sub-topic")
}
