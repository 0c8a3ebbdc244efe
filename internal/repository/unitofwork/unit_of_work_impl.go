package unitofwork

import (
	"time"

	"algo-notes-be/internal/repository/contract"
	"algo-notes-be/internal/repository/implementation"
	"algo-notes-be/internal/repository/mongodb"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type GormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) NoteRepository() contract.NoteRepository {
	return implementation.NewNoteRepository(u.db)
}

type MongoUnitOfWork struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func (u *MongoUnitOfWork) NoteRepository() contract.NoteRepository {
	return mongodb.NewNoteRepository(u.collection, u.timeout)
}

// repositoryUnitOfWork hands out an already-built repository (memory store, cache decorator).
type repositoryUnitOfWork struct {
	notes contract.NoteRepository
}

func (u *repositoryUnitOfWork) NoteRepository() contract.NoteRepository {
	return u.notes
}
