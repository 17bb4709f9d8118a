package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrLoginIDTaken is returned when a login id collides with an existing user
var ErrLoginIDTaken = errors.New("login id already registered")

const uniqueViolation = "23505"

// UserRepository handles user database operations
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a new user repository
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userSelect = `
	SELECT u.user_id, u.login_id, u.first_name, u.last_name, u.password_hash,
	       u.user_role_id, r.role_name, u.security_question_id, u.security_answer_hash
	FROM users u
	JOIN user_roles r ON r.user_role_id = u.user_role_id
`

// UserExists checks whether a login id is already registered
func (r *UserRepository) UserExists(ctx context.Context, loginID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(login_id) = LOWER($1))`
	if err := querierFrom(ctx, r.db).QueryRowxContext(ctx, query, strings.TrimSpace(loginID)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// GetUserByLoginID retrieves a user by login id, returning nil when it does not exist
func (r *UserRepository) GetUserByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	var user models.User
	err := querierFrom(ctx, r.db).GetContext(ctx, &user, userSelect+` WHERE LOWER(u.login_id) = LOWER($1)`, strings.TrimSpace(loginID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by login ID: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID, returning nil when it does not exist
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := querierFrom(ctx, r.db).GetContext(ctx, &user, userSelect+` WHERE u.user_id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return &user, nil
}

// RegisterUser inserts a new user. A concurrent registration of the same login id
// surfaces as ErrLoginIDTaken.
func (r *UserRepository) RegisterUser(ctx context.Context, user *models.User) (bool, error) {
	query := `
		INSERT INTO users (
			login_id, first_name, last_name, password_hash,
			user_role_id, security_question_id, security_answer_hash
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id
	`

	err := querierFrom(ctx, r.db).QueryRowxContext(ctx, query,
		strings.TrimSpace(user.LoginID),
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		user.UserRoleID,
		user.SecurityQuestionID,
		user.SecurityAnswerHash,
	).Scan(&user.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return false, ErrLoginIDTaken
		}
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to register user: %w", err)
	}

	return true, nil
}

// UpdateUser updates the password hash of a user
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) (bool, error) {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE user_id = $2`

	result, err := querierFrom(ctx, r.db).ExecContext(ctx, query, user.PasswordHash, user.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetAllSecurityQuestions returns the password-recovery questions
func (r *UserRepository) GetAllSecurityQuestions(ctx context.Context) ([]models.SecurityQuestion, error) {
	questions := []models.SecurityQuestion{}
	query := `SELECT security_question_id, question FROM security_questions ORDER BY security_question_id`
	if err := querierFrom(ctx, r.db).SelectContext(ctx, &questions, query); err != nil {
		return nil, fmt.Errorf("failed to get security questions: %w", err)
	}
	return questions, nil
}

// GetUserRoles returns the role lookup rows
func (r *UserRepository) GetUserRoles(ctx context.Context) ([]models.UserRole, error) {
	roles := []models.UserRole{}
	query := `SELECT user_role_id, role_name FROM user_roles ORDER BY user_role_id`
	if err := querierFrom(ctx, r.db).SelectContext(ctx, &roles, query); err != nil {
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}
	return roles, nil
}
