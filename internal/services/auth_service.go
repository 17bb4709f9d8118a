package services

import (
	"context"
	"errors"
	"strings"

	"github.com/benchtrack/allocation-backend/internal/database"
	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/benchtrack/allocation-backend/pkg/jwt"
	"github.com/benchtrack/allocation-backend/pkg/validator"
	"github.com/sirupsen/logrus"
)

// AuthService handles registration, login and password recovery
type AuthService struct {
	users     UserStore
	passwords *PasswordService
	tokens    *jwt.Service
	validator *validator.PayloadValidator
	logger    logrus.FieldLogger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users UserStore,
	passwords *PasswordService,
	tokens *jwt.Service,
	payloadValidator *validator.PayloadValidator,
	logger logrus.FieldLogger,
) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		validator: payloadValidator,
		logger:    logger.WithField("service", "auth"),
	}
}

// RegisterUser creates a login with hashed password and security answer
func (s *AuthService) RegisterUser(ctx context.Context, dto *models.RegisterUserDto) (*models.ServiceResponse[models.User], error) {
	if err := s.validator.Validate(dto); err != nil {
		return invalidPayload[models.User](err), nil
	}

	exists, err := s.users.UserExists(ctx, dto.LoginID)
	if err != nil {
		return nil, err
	}
	if exists {
		return failure[models.User](MsgUserExists), nil
	}

	if !s.passwords.IsStrong(dto.Password) {
		return failure[models.User](MsgWeakPassword), nil
	}

	passwordHash, err := s.passwords.Hash(dto.Password)
	if err != nil {
		return nil, err
	}
	answerHash, err := s.passwords.Hash(normalizeAnswer(dto.SecurityAnswer))
	if err != nil {
		return nil, err
	}

	user := &models.User{
		LoginID:            strings.TrimSpace(dto.LoginID),
		FirstName:          strings.TrimSpace(dto.FirstName),
		LastName:           strings.TrimSpace(dto.LastName),
		PasswordHash:       passwordHash,
		UserRoleID:         dto.UserRoleID,
		SecurityQuestionID: dto.SecurityQuestionID,
		SecurityAnswerHash: answerHash,
	}

	ok, err := s.users.RegisterUser(ctx, user)
	if errors.Is(err, database.ErrLoginIDTaken) {
		return failure[models.User](MsgUserExists), nil
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return failure[models.User](MsgRegisterFailed), nil
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.UserID,
		"login_id": user.LoginID,
	}).Info("User registered")

	return success(*user, MsgUserRegistered), nil
}

// Login validates credentials and issues an access and refresh token pair
func (s *AuthService) Login(ctx context.Context, dto *models.LoginDto) (*models.ServiceResponse[models.TokenDto], error) {
	if dto == nil {
		return failure[models.TokenDto](MsgInvalidCredentials), nil
	}

	user, err := s.ValidateUser(ctx, dto.LoginID, dto.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.WithField("login_id", dto.LoginID).Warn("Failed login attempt")
		return failure[models.TokenDto](MsgInvalidCredentials), nil
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	return success(*tokens, MsgLoginSuccess), nil
}

// ValidateUser returns the user when the password matches, or nil
func (s *AuthService) ValidateUser(ctx context.Context, loginID, password string) (*models.User, error) {
	user, err := s.users.GetUserByLoginID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.passwords.Matches(user.PasswordHash, password) {
		return nil, nil
	}
	return user, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair. The role is
// re-read from the store so role changes apply on refresh.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*models.ServiceResponse[models.TokenDto], error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.logger.WithError(err).Debug("Refresh token rejected")
		return failure[models.TokenDto](MsgInvalidRefreshToken), nil
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return failure[models.TokenDto](MsgInvalidRefreshToken), nil
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	return success(*tokens, MsgNone), nil
}

// ResetPassword sets a new password after checking the security question answer
func (s *AuthService) ResetPassword(ctx context.Context, dto *models.ResetPasswordDto) (*models.ServiceResponse[bool], error) {
	if err := s.validator.Validate(dto); err != nil {
		return invalidPayload[bool](err), nil
	}

	user, err := s.users.GetUserByLoginID(ctx, dto.LoginID)
	if err != nil {
		return nil, err
	}
	if user == nil ||
		user.SecurityQuestionID != dto.SecurityQuestionID ||
		!s.passwords.Matches(user.SecurityAnswerHash, normalizeAnswer(dto.SecurityAnswer)) {
		return failure[bool](MsgInvalidSecurityAnswer), nil
	}

	if !s.passwords.IsStrong(dto.NewPassword) {
		return failure[bool](MsgWeakPassword), nil
	}

	hash, err := s.passwords.Hash(dto.NewPassword)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	ok, err := s.users.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return failure[bool](MsgResetFailed), nil
	}

	s.logger.WithField("user_id", user.UserID).Info("Password reset")

	return success(true, MsgPasswordReset), nil
}

// GetAllSecurityQuestions returns the password-recovery questions
func (s *AuthService) GetAllSecurityQuestions(ctx context.Context) (*models.ServiceResponse[[]models.SecurityQuestion], error) {
	return listResponse(s.users.GetAllSecurityQuestions(ctx))
}

// GetUserRoles returns the role lookup
func (s *AuthService) GetUserRoles(ctx context.Context) (*models.ServiceResponse[[]models.UserRole], error) {
	return listResponse(s.users.GetUserRoles(ctx))
}

func (s *AuthService) issueTokens(user *models.User) (*models.TokenDto, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.UserID, user.LoginID, user.RoleName)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user.UserID, user.LoginID, user.RoleName)
	if err != nil {
		return nil, err
	}

	return &models.TokenDto{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokens.AccessTokenExpiry().Seconds()),
		TokenType:    "Bearer",
		Role:         user.RoleName,
	}, nil
}

// normalizeAnswer makes security answers insensitive to case and surrounding spaces
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
