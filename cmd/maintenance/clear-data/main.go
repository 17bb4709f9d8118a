package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/benchtrack/allocation-backend/internal/config"
	"github.com/benchtrack/allocation-backend/internal/database"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// employeeTables are cleared in one statement; lookups and users are kept
var employeeTables = []string{"employee_skills", "allocations", "employees"}

func main() {
	var dbURLFlag string
	flag.StringVar(&dbURLFlag, "database-url", "", "PostgreSQL connection string (overrides DATABASE_URL)")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	_ = godotenv.Load()

	dbURL := dbURLFlag
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set and -database-url was not provided")
	}

	db, err := database.NewConnection(config.DatabaseConfig{
		URL:                dbURL,
		MaxConnections:     2,
		MaxIdleConnections: 1,
	}, logger)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.TruncateTables(ctx, db, employeeTables...); err != nil {
		logger.Fatalf("failed to truncate tables: %v", err)
	}
	logger.Info("Employee data cleared (tables truncated, identities reset)")

	for _, table := range employeeTables {
		var count int
		if err := db.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); err != nil {
			logger.WithError(err).WithField("table", table).Warn("Could not count rows")
			continue
		}
		logger.WithFields(logrus.Fields{"table": table, "rows": count}).Info("Post-clear row count")
	}
}
