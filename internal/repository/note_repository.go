package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/stolovaya/canteen-api/internal/models"
)

// NoteRepository provides database access for student notes.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a note and fills in the generated id.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	const query = `INSERT INTO notes (student_id, author_id, text, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, note.StudentID, note.AuthorID, note.Text, note.CreatedAt).Scan(&note.ID); err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// ListByStudent returns the notes for one student, newest first by id.
func (r *NoteRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Note, error) {
	const query = `SELECT id, student_id, author_id, text, created_at FROM notes WHERE student_id = $1 ORDER BY id DESC`
	var notes []models.Note
	if err := r.db.SelectContext(ctx, &notes, query, studentID); err != nil {
		return nil, fmt.Errorf("list notes by student: %w", err)
	}
	return notes, nil
}

// ListByStudents returns the notes for any of the given students, newest
// first by creation time.
func (r *NoteRepository) ListByStudents(ctx context.Context, studentIDs []int64) ([]models.Note, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT id, student_id, author_id, text, created_at FROM notes WHERE student_id IN (?) ORDER BY created_at DESC`, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("build note query: %w", err)
	}
	query = r.db.Rebind(query)

	var notes []models.Note
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("list notes by students: %w", err)
	}
	return notes, nil
}

// Delete removes a note and reports whether a row was deleted.
func (r *NoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM notes WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete note rows affected: %w", err)
	}
	return affected > 0, nil
}
