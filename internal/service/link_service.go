package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/stolovaya/canteen-api/internal/models"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
)

type linkUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SetParent(ctx context.Context, childID, parentID int64) error
	ListChildren(ctx context.Context, parentID int64) ([]models.User, error)
}

// LinkRequest is the payload of the simple linking form.
type LinkRequest struct {
	ParentID   int64  `json:"parent_id"`
	ChildEmail string `json:"child_email"`
}

// FullLinkRequest is the payload of the reconciling linking form. The
// parent supplies the child's personal data; it is matched against any
// existing account field by field.
type FullLinkRequest struct {
	ParentID    int64             `json:"parent_id"`
	Email       string            `json:"email"`
	Surname     string            `json:"surname"`
	Name        string            `json:"name"`
	Patronymic  string            `json:"patronymic"`
	Birthdate   string            `json:"birthdate"`
	ClassNumber models.FlexNumber `json:"class_number"`
	ClassLetter string            `json:"class_letter"`
}

// LinkResult reports the outcome of a full link. TempPassword is only set
// when a fresh student account was created.
type LinkResult struct {
	Message      string `json:"message"`
	ChildID      int64  `json:"child_id"`
	TempPassword string `json:"temp_password,omitempty"`
}

// LinkService implements parent/child account linking, including the
// fill-if-blank / match-if-set reconciliation of the full form.
type LinkService struct {
	repo   linkUserRepository
	logger *zap.Logger
}

// NewLinkService creates an instance of LinkService.
func NewLinkService(repo linkUserRepository, logger *zap.Logger) *LinkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinkService{repo: repo, logger: logger}
}

// Link attaches an existing student account to a parent. Any prior link is
// overwritten.
func (s *LinkService) Link(ctx context.Context, req LinkRequest) (int64, error) {
	childEmail := strings.TrimSpace(req.ChildEmail)
	if req.ParentID == 0 || childEmail == "" {
		return 0, appErrors.Clone(appErrors.ErrValidation, "parent_id и child_email обязательны")
	}

	if err := s.requireParent(ctx, req.ParentID); err != nil {
		return 0, err
	}

	child, err := s.repo.FindByEmail(ctx, childEmail)
	if err != nil || child.Role != models.RoleStudent {
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up child")
		}
		return 0, appErrors.Clone(appErrors.ErrNotFound, "Ученик с такой почтой не найден")
	}

	if err := s.repo.SetParent(ctx, child.ID, req.ParentID); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to link child")
	}
	return child.ID, nil
}

// LinkFull links a child by full personal data. A missing account is
// created with a temporary password; an existing student account is
// reconciled field by field, all-or-nothing: any mismatch aborts the call
// and nothing is persisted, not even fields that were blank and would
// have been filled.
func (s *LinkService) LinkFull(ctx context.Context, req FullLinkRequest) (*LinkResult, error) {
	email := strings.TrimSpace(req.Email)
	surname := strings.TrimSpace(req.Surname)
	name := strings.TrimSpace(req.Name)
	patronymic := strings.TrimSpace(req.Patronymic)
	birthdate := strings.TrimSpace(req.Birthdate)
	classNumber := strings.TrimSpace(req.ClassNumber.String())
	classLetter := strings.TrimSpace(req.ClassLetter)

	if req.ParentID == 0 || email == "" || surname == "" || name == "" || birthdate == "" || classNumber == "" || classLetter == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Обязательны: parent_id, email, фамилия, имя, дата рождения, класс (номер и буква)")
	}

	if err := s.requireParent(ctx, req.ParentID); err != nil {
		return nil, err
	}

	child, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up child")
		}
		return s.createChild(ctx, req.ParentID, email, surname, name, patronymic, birthdate, classNumber, classLetter)
	}

	if child.Role != models.RoleStudent {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Пользователь с такой почтой существует, но не является учеником")
	}
	if child.ParentID != nil && *child.ParentID != req.ParentID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Ученик уже привязан к другому родителю")
	}

	// Work on a copy so a mismatch never leaks partially filled fields
	// into the store.
	updated := *child
	var mismatch []string

	reconcile(&updated.Surname, surname, "фамилия", &mismatch)
	reconcile(&updated.Name, name, "имя", &mismatch)
	reconcile(&updated.Patronymic, patronymic, "отчество", &mismatch)
	reconcile(&updated.Birthdate, birthdate, "дата рождения", &mismatch)

	if updated.ClassNumber == nil {
		n, convErr := strconv.ParseInt(classNumber, 10, 64)
		if convErr != nil {
			mismatch = append(mismatch, "класс (номер)")
		} else {
			updated.ClassNumber = &n
		}
	} else if strconv.FormatInt(*updated.ClassNumber, 10) != classNumber {
		mismatch = append(mismatch, "класс (номер)")
	}

	reconcile(&updated.ClassLetter, classLetter, "класс (буква)", &mismatch)

	if len(mismatch) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Данные ученика не совпадают: "+strings.Join(mismatch, ", "))
	}

	parentID := req.ParentID
	updated.ParentID = &parentID
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to link child")
	}

	return &LinkResult{Message: "linked", ChildID: updated.ID}, nil
}

// Children returns the students linked to a parent.
func (s *LinkService) Children(ctx context.Context, parentID int64) ([]models.ChildSummary, error) {
	kids, err := s.repo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list children")
	}

	out := make([]models.ChildSummary, 0, len(kids))
	for _, k := range kids {
		out = append(out, k.Child())
	}
	return out, nil
}

func (s *LinkService) requireParent(ctx context.Context, parentID int64) error {
	parent, err := s.repo.FindByID(ctx, parentID)
	if err != nil || parent.Role != models.RoleParent {
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up parent")
		}
		return appErrors.Clone(appErrors.ErrNotFound, "Родитель не найден")
	}
	return nil
}

func (s *LinkService) createChild(ctx context.Context, parentID int64, email, surname, name, patronymic, birthdate, classNumber, classLetter string) (*LinkResult, error) {
	n, err := strconv.ParseInt(classNumber, 10, 64)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Данные ученика не совпадают: класс (номер)")
	}

	tempPassword, err := generatePassword(10)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate password")
	}

	child := &models.User{
		Email:       email,
		Password:    tempPassword,
		Role:        models.RoleStudent,
		Surname:     &surname,
		Name:        &name,
		Patronymic:  &patronymic,
		Birthdate:   &birthdate,
		ClassNumber: &n,
		ClassLetter: &classLetter,
		ParentID:    &parentID,
	}
	if err := s.repo.Create(ctx, child); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create child")
	}

	s.logger.Info("student account created by parent link", zap.Int64("child_id", child.ID), zap.Int64("parent_id", parentID))
	return &LinkResult{Message: "created", ChildID: child.ID, TempPassword: tempPassword}, nil
}

// norm is the comparison form used by reconciliation: trimmed, lowered.
func norm(v *string) string {
	if v == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*v))
}

// reconcile fills a blank field from the request or records the label when
// the stored value disagrees with the supplied one.
func reconcile(current **string, supplied, label string, mismatch *[]string) {
	if norm(*current) == "" {
		v := supplied
		*current = &v
		return
	}
	if norm(*current) != strings.ToLower(strings.TrimSpace(supplied)) {
		*mismatch = append(*mismatch, label)
	}
}

const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func generatePassword(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = passwordAlphabet[int(b)%len(passwordAlphabet)]
	}
	return string(buf), nil
}
