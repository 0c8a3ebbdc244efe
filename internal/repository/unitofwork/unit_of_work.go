package unitofwork

import (
	"algo-notes-be/internal/repository/contract"
)

// UnitOfWork groups the repositories a single request works with.
// Every write is a single-document compare-and-swap, so no transaction
// handle is exposed.
type UnitOfWork interface {
	NoteRepository() contract.NoteRepository
}
