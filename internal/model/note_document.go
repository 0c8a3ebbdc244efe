package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const NoteCollection = "notes"

// NoteDocument is the Mongo shape of a note; field names follow the JSON API.
type NoteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Topic     string             `bson:"topic"`
	SubTopics []SubTopicDocument `bson:"subTopics"`
	Version   int64              `bson:"version"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type SubTopicDocument struct {
	Name      string             `bson:"name"`
	Questions []QuestionDocument `bson:"questions"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type QuestionDocument struct {
	Id        string    `bson:"id"`
	Title     string    `bson:"title"`
	Pattern   string    `bson:"pattern"`
	Trick     string    `bson:"trick"`
	Error     string    `bson:"error"`
	Edge      string    `bson:"edge"`
	CreatedAt time.Time `bson:"createdAt"`
}
