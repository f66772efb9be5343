package models

// NoteTimeLayout is the created_at format, second precision, kept
// lexicographically sortable so ORDER BY created_at works on the text
// column.
const NoteTimeLayout = "2006-01-02T15:04:05"

// Note is a free-form remark about a student. student_id and author_id are
// plain integers with no foreign key behind them.
type Note struct {
	ID        int64  `db:"id" json:"id"`
	StudentID int64  `db:"student_id" json:"student_id"`
	AuthorID  int64  `db:"author_id" json:"author_id"`
	Text      string `db:"text" json:"text"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// CookNote is the denormalised note view served to cooks, with student and
// author emails resolved when the accounts still exist.
type CookNote struct {
	ID           int64   `json:"id"`
	StudentID    int64   `json:"student_id"`
	StudentEmail *string `json:"student_email"`
	AuthorID     int64   `json:"author_id"`
	AuthorEmail  *string `json:"author_email"`
	Text         string  `json:"text"`
	CreatedAt    string  `json:"created_at"`
}
