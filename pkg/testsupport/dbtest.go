package testsupport

import (
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

var dbSequence atomic.Int64

// NewSQLiteMemoryDB opens a named in-memory SQLite database. Each call gets
// its own cache name so tests do not share state.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	name := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSequence.Add(1))
	return sql.Open("sqlite3", name)
}

// NewBunSQLiteDB wraps an in-memory SQLite connection in a bun.DB restricted
// to a single connection so shared-cache state survives across statements.
func NewBunSQLiteDB() (*bun.DB, error) {
	sqlDB, err := NewSQLiteMemoryDB()
	if err != nil {
		return nil, err
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	return db, nil
}
