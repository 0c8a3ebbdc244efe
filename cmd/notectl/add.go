package main

import (
	"fmt"

	"algo-notes-be/internal/dto"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addReq dto.AddQuestionRequest

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a question under a topic and sub-topic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		note, err := container.NoteService.AddQuestion(cmd.Context(), &addReq)
		if err != nil {
			return fmt.Errorf("error adding question: %w", err)
		}

		color.Green("Added %s to %s / %s (note %s)", addReq.QuestionId, note.Topic, addReq.SubTopic, note.Id)
		return nil
	},
}

func init() {
	f := addCmd.Flags()
	f.StringVar(&addReq.Topic, "topic", "", "Topic, e.g. Arrays")
	f.StringVar(&addReq.SubTopic, "sub-topic", "", "Sub-topic, e.g. Sliding Window")
	f.StringVar(&addReq.QuestionId, "id", "", "Question id, unique within the sub-topic")
	f.StringVar(&addReq.Title, "title", "", "Question title")
	f.StringVar(&addReq.Pattern, "pattern", "", "Solution pattern")
	f.StringVar(&addReq.Trick, "trick", "", "Key trick")
	f.StringVar(&addReq.Error, "error", "", "Mistake to avoid")
	f.StringVar(&addReq.Edge, "edge", "", "Edge case")
}
