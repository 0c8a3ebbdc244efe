package main

import (
	"bytes"
	"strings"
	"testing"

	"algo-notes-be/internal/dto"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImport(t *testing.T) {
	src := `
questions:
  - topic: Arrays
    subTopic: Sliding Window
    questionId: Q1
    title: Max Subarray
    pattern: two-pointer
    trick: expand-shrink
    error: off-by-one
    edge: empty array
  - topic: Graphs
    subTopic: BFS
    questionId: G1
    title: Islands
    pattern: flood fill
    trick: mark visited
    error: revisit
    edge: 1x1 grid
`
	qs, err := parseImport(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Sliding Window", qs[0].SubTopic)
	assert.Equal(t, "G1", qs[1].QuestionId)
	assert.Equal(t, "1x1 grid", qs[1].Edge)
}

func TestParseImportRejectsUnknownFields(t *testing.T) {
	_, err := parseImport(strings.NewReader("questions:\n  - topic: Arrays\n    difficulty: hard\n"))
	assert.Error(t, err)
}

func TestParseImportEmpty(t *testing.T) {
	qs, err := parseImport(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestRenderTree(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	renderTree(&buf, []*dto.NoteResponse{{
		Topic: "Arrays",
		SubTopics: []dto.SubTopicResponse{{
			Name:      "Sliding Window",
			Questions: []dto.QuestionResponse{{Id: "Q1", Title: "Max Subarray"}},
		}},
	}})
	assert.Equal(t, "Arrays\n  Sliding Window (1)\n    Q1 Max Subarray\n", buf.String())

	buf.Reset()
	renderTree(&buf, nil)
	assert.Equal(t, "No notes found.\n", buf.String())
}
