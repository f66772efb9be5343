package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The tables are created on startup when absent, matching the behaviour of
// the system this service replaces. parent_id intentionally has no foreign
// key to keep deletion of parents from cascading into student rows; the
// role invariants are enforced in the services.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		email         VARCHAR(100) UNIQUE NOT NULL,
		password      VARCHAR(100) NOT NULL,
		role          VARCHAR(20)  NOT NULL,
		surname       VARCHAR(50),
		name          VARCHAR(50),
		patronymic    VARCHAR(50),
		birthdate     VARCHAR(20),
		class_number  INTEGER,
		class_letter  VARCHAR(2),
		parent_id     INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id         SERIAL PRIMARY KEY,
		student_id INTEGER      NOT NULL,
		author_id  INTEGER      NOT NULL,
		text       VARCHAR(1000) NOT NULL,
		created_at VARCHAR(30)  NOT NULL
	)`,
}

// ApplySchema creates the persistent tables when they do not exist yet.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
