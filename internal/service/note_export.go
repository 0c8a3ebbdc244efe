package service

import (
	"bytes"
	"fmt"
	"io"

	"algo-notes-be/internal/dto"

	"github.com/natefinch/atomic"
)

// RenderMarkdown writes notes in list order: topic, sub-topic and question headings,
// then one bullet per recorded insight.
func RenderMarkdown(w io.Writer, notes []*dto.NoteResponse) error {
	for i, n := range notes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s\n", n.Topic); err != nil {
			return err
		}
		for _, st := range n.SubTopics {
			if _, err := fmt.Fprintf(w, "\n## %s\n", st.Name); err != nil {
				return err
			}
			for _, q := range st.Questions {
				_, err := fmt.Fprintf(w, "\n### %s — %s\n\n- **Pattern:** %s\n- **Trick:** %s\n- **Error:** %s\n- **Edge:** %s\n",
					q.Id, q.Title, q.Pattern, q.Trick, q.Error, q.Edge)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ExportMarkdown renders notes and replaces path atomically, so readers never see a partial file.
func ExportMarkdown(path string, notes []*dto.NoteResponse) error {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, notes); err != nil {
		return err
	}
	return atomic.WriteFile(path, &buf)
}
