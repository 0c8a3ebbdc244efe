package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"algo-notes-be/internal/dto"
	"algo-notes-be/internal/pkg/apperror"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// importFile is the YAML layout accepted by `notectl import`.
type importFile struct {
	Questions []dto.AddQuestionRequest `yaml:"questions"`
}

func parseImport(r io.Reader) ([]dto.AddQuestionRequest, error) {
	var f importFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid import file: %w", err)
	}
	return f.Questions, nil
}

var importCmd = &cobra.Command{
	Use:   "import FILE.yaml",
	Short: "Bulk-add questions from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		questions, err := parseImport(file)
		if err != nil {
			return err
		}

		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		added, skipped := 0, 0
		for i := range questions {
			q := &questions[i]
			_, err := container.NoteService.AddQuestion(cmd.Context(), q)
			switch {
			case err == nil:
				added++
			case errors.Is(err, apperror.ErrDuplicateQuestionId), errors.Is(err, apperror.ErrValidation):
				skipped++
				color.Yellow("skip #%d %s/%s/%s: %v", i+1, q.Topic, q.SubTopic, q.QuestionId, err)
			default:
				return fmt.Errorf("import stopped at #%d: %w", i+1, err)
			}
		}

		color.Green("Imported %d question(s), skipped %d", added, skipped)
		return nil
	},
}
