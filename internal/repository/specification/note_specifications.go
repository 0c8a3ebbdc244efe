package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTopic matches the single note owning topic. Topics compare exactly.
func ByTopic(topic string) Specification {
	return Filter("topic", topic)
}

// AtVersion scopes a write to the row id still holding the expected version.
type AtVersion struct {
	ID      uuid.UUID
	Version int64
}

func (s AtVersion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ? AND version = ?", s.ID, s.Version)
}

// RecentlyUpdatedFirst is the listing order used by the notes endpoint.
var RecentlyUpdatedFirst = OrderBy{Field: "updated_at", Desc: true}
