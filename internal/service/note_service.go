package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stolovaya/canteen-api/internal/models"
	"github.com/stolovaya/canteen-api/internal/store"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
)

type noteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	ListByStudent(ctx context.Context, studentID int64) ([]models.Note, error)
	ListByStudents(ctx context.Context, studentIDs []int64) ([]models.Note, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type noteUserRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]models.User, error)
}

// NoteRequest is the payload for adding a note.
type NoteRequest struct {
	StudentID int64  `json:"student_id"`
	AuthorID  int64  `json:"author_id"`
	Text      string `json:"text"`
}

// NoteService handles the notes CRUD and the cook's denormalised
// notes-for-today view.
type NoteService struct {
	repo   noteRepository
	users  noteUserRepository
	orders *store.OrderStore
	logger *zap.Logger
	now    func() time.Time
}

// NewNoteService creates an instance of NoteService.
func NewNoteService(repo noteRepository, users noteUserRepository, orders *store.OrderStore, logger *zap.Logger) *NoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{repo: repo, users: users, orders: orders, logger: logger, now: time.Now}
}

// Add stores a note with a server-side timestamp.
func (s *NoteService) Add(ctx context.Context, req NoteRequest) (*models.Note, error) {
	text := strings.TrimSpace(req.Text)
	if req.StudentID == 0 || req.AuthorID == 0 || text == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id, author_id и text обязательны")
	}

	note := &models.Note{
		StudentID: req.StudentID,
		AuthorID:  req.AuthorID,
		Text:      text,
		CreatedAt: s.now().Format(models.NoteTimeLayout),
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create note")
	}
	return note, nil
}

// ForStudent returns the notes for a student, most recent first.
func (s *NoteService) ForStudent(ctx context.Context, studentID int64) ([]models.Note, error) {
	notes, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notes")
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// Delete removes a note by id.
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete note")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "Не найдено")
	}
	return nil
}

// CookNotesToday collects the notes of every student with an order today
// and resolves student and author emails in one batch lookup.
func (s *NoteService) CookNotesToday(ctx context.Context) ([]models.CookNote, error) {
	today := s.now().Format(models.OrderDateLayout)
	studentIDs := s.orders.StudentIDsByDate(today)
	if len(studentIDs) == 0 {
		return []models.CookNote{}, nil
	}

	notes, err := s.repo.ListByStudents(ctx, studentIDs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notes")
	}

	idSet := make(map[int64]struct{}, len(studentIDs))
	for _, id := range studentIDs {
		idSet[id] = struct{}{}
	}
	for _, n := range notes {
		idSet[n.AuthorID] = struct{}{}
	}
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve note users")
	}
	emailByID := make(map[int64]string, len(users))
	for _, u := range users {
		emailByID[u.ID] = u.Email
	}

	out := make([]models.CookNote, 0, len(notes))
	for _, n := range notes {
		cn := models.CookNote{
			ID:        n.ID,
			StudentID: n.StudentID,
			AuthorID:  n.AuthorID,
			Text:      n.Text,
			CreatedAt: n.CreatedAt,
		}
		if email, ok := emailByID[n.StudentID]; ok {
			e := email
			cn.StudentEmail = &e
		}
		if email, ok := emailByID[n.AuthorID]; ok {
			e := email
			cn.AuthorEmail = &e
		}
		out = append(out, cn)
	}
	return out, nil
}
