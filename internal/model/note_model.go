package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NoteQuestion and NoteSubTopic are the JSONB payload of Note.SubTopics.
type NoteQuestion struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Pattern   string    `json:"pattern"`
	Trick     string    `json:"trick"`
	Error     string    `json:"error"`
	Edge      string    `json:"edge"`
	CreatedAt time.Time `json:"createdAt"`
}

type NoteSubTopic struct {
	Name      string         `json:"name"`
	Questions []NoteQuestion `json:"questions"`
	CreatedAt time.Time      `json:"createdAt"`
}

type Note struct {
	Id        uuid.UUID                          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Topic     string                             `gorm:"type:varchar(255);not null;uniqueIndex:idx_notes_topic"`
	SubTopics datatypes.JSONType[[]NoteSubTopic] `gorm:"type:jsonb;not null"`
	Version   int64                              `gorm:"not null;default:1"`
	CreatedAt time.Time                          `gorm:"autoCreateTime"`
	UpdatedAt time.Time                          `gorm:"autoUpdateTime;index:idx_notes_updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
