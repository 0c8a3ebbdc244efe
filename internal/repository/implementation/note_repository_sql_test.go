package implementation

import (
	"context"
	"testing"
	"time"

	"algo-notes-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type capturedStatement struct {
	sql  string
	vars []interface{}
}

// dryRunDB renders statements without a server and records each one.
func dryRunDB(t *testing.T) (*gorm.DB, *[]capturedStatement) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost dbname=unused"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var captured []capturedStatement
	capture := func(tx *gorm.DB) {
		captured = append(captured, capturedStatement{
			sql:  tx.Statement.SQL.String(),
			vars: append([]interface{}{}, tx.Statement.Vars...),
		})
	}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))
	return db, &captured
}

func TestSaveExistingNoteIsConditionalOnVersion(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewNoteRepository(db)

	id := uuid.New()
	updatedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	note := entity.NewNote("Arrays", updatedAt)
	note.Id = id.String()
	note.Version = 4
	note.EnsureSubTopic("Sliding Window", updatedAt)

	// Nothing executes in dry-run mode, so the write reports no matched row.
	_ = repo.Save(context.Background(), note)

	require.Len(t, *captured, 1)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.sql, `UPDATE "notes" SET`)
	assert.Contains(t, stmt.sql, `"version"=`)
	assert.Contains(t, stmt.sql, `"sub_topics"=`)
	assert.Contains(t, stmt.sql, "WHERE id = ")
	assert.Contains(t, stmt.sql, "AND version = ")

	require.GreaterOrEqual(t, len(stmt.vars), 3)
	n := len(stmt.vars)
	assert.Contains(t, stmt.vars[:n-2], int64(5), "SET version must be the read version plus one")
	assert.Equal(t, id, stmt.vars[n-2])
	assert.Equal(t, int64(4), stmt.vars[n-1])
}

func TestSaveNewNoteInsertsVersionOne(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewNoteRepository(db)

	note := entity.NewNote("Graphs", time.Now())
	require.NoError(t, repo.Save(context.Background(), note))

	require.Len(t, *captured, 1)
	assert.Contains(t, (*captured)[0].sql, `INSERT INTO "notes"`)
	assert.Contains(t, (*captured)[0].vars, int64(1))
	assert.Equal(t, int64(1), note.Version)
	assert.NotEmpty(t, note.Id)
}
