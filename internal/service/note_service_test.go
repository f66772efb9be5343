package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stolovaya/canteen-api/internal/models"
	"github.com/stolovaya/canteen-api/internal/store"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
)

type fakeNoteRepo struct {
	notes  map[int64]*models.Note
	nextID int64
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[int64]*models.Note), nextID: 1}
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *models.Note) error {
	note.ID = f.nextID
	f.nextID++
	copy := *note
	f.notes[note.ID] = &copy
	return nil
}

func (f *fakeNoteRepo) ListByStudent(ctx context.Context, studentID int64) ([]models.Note, error) {
	var out []models.Note
	for id := f.nextID - 1; id >= 1; id-- {
		if n, ok := f.notes[id]; ok && n.StudentID == studentID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) ListByStudents(ctx context.Context, studentIDs []int64) ([]models.Note, error) {
	want := make(map[int64]struct{}, len(studentIDs))
	for _, id := range studentIDs {
		want[id] = struct{}{}
	}
	var out []models.Note
	for id := f.nextID - 1; id >= 1; id-- {
		if n, ok := f.notes[id]; ok {
			if _, hit := want[n.StudentID]; hit {
				out = append(out, *n)
			}
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := f.notes[id]; !ok {
		return false, nil
	}
	delete(f.notes, id)
	return true, nil
}

func TestAddNoteValidation(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo(), newFakeUserRepo(), store.NewOrderStore(), zap.NewNop())

	cases := []NoteRequest{
		{AuthorID: 1, Text: "текст"},
		{StudentID: 1, Text: "текст"},
		{StudentID: 1, AuthorID: 1, Text: "   "},
	}
	for _, req := range cases {
		_, err := svc.Add(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestAddNoteStampsTime(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := NewNoteService(repo, newFakeUserRepo(), store.NewOrderStore(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC) }

	note, err := svc.Add(context.Background(), NoteRequest{StudentID: 3, AuthorID: 9, Text: " аллергия "})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01T10:30:00", note.CreatedAt)
	assert.Equal(t, "аллергия", note.Text)
	assert.Equal(t, int64(1), note.ID)
}

func TestDeleteNoteNotFound(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo(), newFakeUserRepo(), store.NewOrderStore(), zap.NewNop())

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "Не найдено", appErr.Message)
}

func TestCookNotesTodayEmptyWithoutOrders(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo(), newFakeUserRepo(), store.NewOrderStore(), zap.NewNop())

	notes, err := svc.CookNotesToday(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCookNotesTodayResolvesEmails(t *testing.T) {
	users := newFakeUserRepo()
	student := &models.User{Email: "kid@school.ru", Password: "pw", Role: models.RoleStudent}
	require.NoError(t, users.Create(context.Background(), student))
	author := &models.User{Email: "mom@school.ru", Password: "pw", Role: models.RoleParent}
	require.NoError(t, users.Create(context.Background(), author))

	notes := newFakeNoteRepo()
	orders := store.NewOrderStore()
	svc := NewNoteService(notes, users, orders, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC) }

	_, err := svc.Add(context.Background(), NoteRequest{StudentID: student.ID, AuthorID: author.ID, Text: "без глютена"})
	require.NoError(t, err)
	// A note about a student who did not order today stays invisible.
	_, err = svc.Add(context.Background(), NoteRequest{StudentID: 77, AuthorID: author.ID, Text: "другая"})
	require.NoError(t, err)

	orders.Add(models.Order{StudentID: student.ID, Dish: "Суп", Date: "2026-09-01"})

	out, err := svc.CookNotesToday(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].StudentEmail)
	assert.Equal(t, "kid@school.ru", *out[0].StudentEmail)
	require.NotNil(t, out[0].AuthorEmail)
	assert.Equal(t, "mom@school.ru", *out[0].AuthorEmail)
	assert.Equal(t, "без глютена", out[0].Text)
}

func TestCookNotesTodayMissingUserLeavesNilEmail(t *testing.T) {
	users := newFakeUserRepo()
	notes := newFakeNoteRepo()
	orders := store.NewOrderStore()
	svc := NewNoteService(notes, users, orders, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC) }

	_, err := svc.Add(context.Background(), NoteRequest{StudentID: 3, AuthorID: 9, Text: "заметка"})
	require.NoError(t, err)
	orders.Add(models.Order{StudentID: 3, Dish: "Суп", Date: "2026-09-01"})

	out, err := svc.CookNotesToday(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].StudentEmail)
	assert.Nil(t, out[0].AuthorEmail)
}
