package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/stolovaya/canteen-api/internal/models"
)

const userColumns = `id, email, password, role, surname, name, patronymic, birthdate, class_number, class_letter, parent_id`

// UserRepository provides database access for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindByCredentials returns the user matching the exact email/password
// pair. Passwords are stored in plain text, so this is a straight equality
// lookup.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND password = $2 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email, password); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}
	return &user, nil
}

// Create inserts a new user and fills in the generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `INSERT INTO users (email, password, role, surname, name, patronymic, birthdate, class_number, class_letter, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Password, user.Role,
		user.Surname, user.Name, user.Patronymic, user.Birthdate,
		user.ClassNumber, user.ClassLetter, user.ParentID,
	).Scan(&user.ID); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update overwrites the mutable profile fields of a user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	const query = `UPDATE users SET surname = :surname, name = :name, patronymic = :patronymic, birthdate = :birthdate,
		class_number = :class_number, class_letter = :class_letter, parent_id = :parent_id WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetParent links a student record to a parent account.
func (r *UserRepository) SetParent(ctx context.Context, childID, parentID int64) error {
	const query = `UPDATE users SET parent_id = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, childID, parentID); err != nil {
		return fmt.Errorf("set parent: %w", err)
	}
	return nil
}

// UpdateRole changes the role of a user.
func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	const query = `UPDATE users SET role = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, role); err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete removes a user record.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// List returns every user, oldest first.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListChildren returns the student accounts linked to a parent.
func (r *UserRepository) ListChildren(ctx context.Context, parentID int64) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE parent_id = $1 AND role = $2 ORDER BY id`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, parentID, models.RoleStudent); err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return users, nil
}

// ListByIDs returns the users whose ids appear in the given set.
func (r *UserRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+userColumns+` FROM users WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("build user id query: %w", err)
	}
	query = r.db.Rebind(query)

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("list users by ids: %w", err)
	}
	return users, nil
}
