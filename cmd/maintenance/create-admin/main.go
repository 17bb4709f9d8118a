package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/benchtrack/allocation-backend/internal/config"
	"github.com/benchtrack/allocation-backend/internal/database"
	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/benchtrack/allocation-backend/internal/services"
	"github.com/benchtrack/allocation-backend/pkg/jwt"
	"github.com/benchtrack/allocation-backend/pkg/validator"
	"github.com/sirupsen/logrus"
)

// create-admin bootstraps an Admin login. Registration over HTTP needs an
// Admin token, so the first one has to come from here.
func main() {
	var loginID, firstName, lastName string
	var questionID int64
	flag.StringVar(&loginID, "login", "admin", "login id of the new admin")
	flag.StringVar(&firstName, "first-name", "System", "first name")
	flag.StringVar(&lastName, "last-name", "Admin", "last name")
	flag.Int64Var(&questionID, "security-question-id", 1, "security question used for password recovery")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	answer := os.Getenv("ADMIN_SECURITY_ANSWER")
	if password == "" || answer == "" {
		logger.Fatal("ADMIN_PASSWORD and ADMIN_SECURITY_ANSWER must be set")
	}

	db, err := database.NewConnection(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	authService := services.NewAuthService(
		database.NewUserRepository(db),
		services.NewPasswordService(cfg.Security.BcryptCost),
		jwt.NewService(cfg.JWT.Secret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry),
		validator.NewPayloadValidator(),
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	roles, err := authService.GetUserRoles(ctx)
	if err != nil {
		logger.Fatalf("failed to load user roles: %v", err)
	}
	var adminRoleID int64
	if roles.Data != nil {
		for _, role := range *roles.Data {
			if strings.EqualFold(role.RoleName, models.RoleAdmin) {
				adminRoleID = role.UserRoleID
			}
		}
	}
	if adminRoleID == 0 {
		logger.Fatal("user_roles has no Admin row")
	}

	resp, err := authService.RegisterUser(ctx, &models.RegisterUserDto{
		LoginID:            loginID,
		FirstName:          firstName,
		LastName:           lastName,
		Password:           password,
		ConfirmPassword:    password,
		UserRoleID:         adminRoleID,
		SecurityQuestionID: questionID,
		SecurityAnswer:     answer,
	})
	if err != nil {
		logger.Fatalf("failed to register admin: %v", err)
	}
	if !resp.Success {
		logger.Fatalf("admin not created: %s", resp.Message)
	}

	logger.WithField("login_id", loginID).Info("Admin created")
}
