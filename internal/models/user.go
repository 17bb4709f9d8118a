package models

// Role names stored in user_roles.role_name
const (
	RoleAdmin     = "Admin"
	RoleAllocator = "Allocator"
	RoleManager   = "Manager"
)

// User is an application login
type User struct {
	UserID             int64  `json:"user_id" db:"user_id"`
	LoginID            string `json:"login_id" db:"login_id"`
	FirstName          string `json:"first_name" db:"first_name"`
	LastName           string `json:"last_name" db:"last_name"`
	PasswordHash       string `json:"-" db:"password_hash"`
	UserRoleID         int64  `json:"user_role_id" db:"user_role_id"`
	RoleName           string `json:"role_name" db:"role_name"`
	SecurityQuestionID int64  `json:"security_question_id" db:"security_question_id"`
	SecurityAnswerHash string `json:"-" db:"security_answer_hash"`
}

// SecurityQuestion is a password-recovery question
type SecurityQuestion struct {
	SecurityQuestionID int64  `json:"security_question_id" db:"security_question_id"`
	Question           string `json:"question" db:"question"`
}

// UserRole is a role lookup row
type UserRole struct {
	UserRoleID int64  `json:"user_role_id" db:"user_role_id"`
	RoleName   string `json:"role_name" db:"role_name"`
}

// RegisterUserDto is the payload for creating a login
type RegisterUserDto struct {
	LoginID            string `json:"login_id" binding:"required" validate:"required,max=50"`
	FirstName          string `json:"first_name" binding:"required" validate:"required,max=50"`
	LastName           string `json:"last_name" binding:"required" validate:"required,max=50"`
	Password           string `json:"password" binding:"required" validate:"required"`
	ConfirmPassword    string `json:"confirm_password" binding:"required" validate:"required,eqfield=Password"`
	UserRoleID         int64  `json:"user_role_id" binding:"required" validate:"required,gt=0"`
	SecurityQuestionID int64  `json:"security_question_id" binding:"required" validate:"required,gt=0"`
	SecurityAnswer     string `json:"security_answer" binding:"required" validate:"required"`
}

// LoginDto carries login credentials
type LoginDto struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordDto resets a password through the security question
type ResetPasswordDto struct {
	LoginID            string `json:"login_id" binding:"required" validate:"required"`
	SecurityQuestionID int64  `json:"security_question_id" binding:"required" validate:"required,gt=0"`
	SecurityAnswer     string `json:"security_answer" binding:"required" validate:"required"`
	NewPassword        string `json:"new_password" binding:"required" validate:"required"`
	ConfirmNewPassword string `json:"confirm_new_password" binding:"required" validate:"required,eqfield=NewPassword"`
}

// TokenDto is returned on successful login or refresh
type TokenDto struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Role         string `json:"role"`
}

// Caller identifies who is invoking a service operation
type Caller struct {
	UserID  int64
	LoginID string
	Role    string
}
