package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// TruncateTables empties tables in one statement and resets their identities
func TruncateTables(ctx context.Context, db Querier, tables ...string) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to truncate")
	}

	names := make([]string, 0, len(tables))
	for _, table := range tables {
		names = append(names, pgx.Identifier{table}.Sanitize())
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(names, ", "))
	if _, err := querierFrom(ctx, db).ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	return nil
}
