package nats

import (
	"testing"

	"algo-notes-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubjectIsCoveredByStream(t *testing.T) {
	subject := Subject(events.TypeQuestionAdded)

	assert.Equal(t, "notes.QUESTION_ADDED", subject)
	assert.Contains(t, subject, SubjectPrefix+".")
}
