package dto

import "time"

type AddQuestionRequest struct {
	Topic      string `json:"topic" yaml:"topic" validate:"required"`
	SubTopic   string `json:"subTopic" yaml:"subTopic" validate:"required"`
	QuestionId string `json:"questionId" yaml:"questionId" validate:"required"`
	Title      string `json:"title" yaml:"title" validate:"required"`
	Pattern    string `json:"pattern" yaml:"pattern" validate:"required"`
	Trick      string `json:"trick" yaml:"trick" validate:"required"`
	Error      string `json:"error" yaml:"error" validate:"required"`
	Edge       string `json:"edge" yaml:"edge" validate:"required"`
}

type AddQuestionResponse struct {
	Message string        `json:"message"`
	Note    *NoteResponse `json:"note"`
}

type QuestionResponse struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Pattern   string    `json:"pattern"`
	Trick     string    `json:"trick"`
	Error     string    `json:"error"`
	Edge      string    `json:"edge"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubTopicResponse struct {
	Name      string             `json:"name"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"createdAt"`
}

// NoteResponse keeps the "_id" key the browser client already reads.
type NoteResponse struct {
	Id        string             `json:"_id"`
	Topic     string             `json:"topic"`
	SubTopics []SubTopicResponse `json:"subTopics"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// QuestionAddedMessage is the payload carried on the in-process event bus.
type QuestionAddedMessage struct {
	NoteId     string    `json:"note_id"`
	Topic      string    `json:"topic"`
	SubTopic   string    `json:"sub_topic"`
	QuestionId string    `json:"question_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}
