package services

import (
	"context"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// logOutcome records the result of a state-changing operation against its caller
func logOutcome[T any](logger logrus.FieldLogger, caller models.Caller, operation string, resp *models.ServiceResponse[T], err error) {
	entry := logger.WithFields(logrus.Fields{
		"operation": operation,
		"user_id":   caller.UserID,
		"login_id":  caller.LoginID,
		"role":      caller.Role,
	})

	switch {
	case err != nil:
		entry.WithError(err).Error("Operation failed")
	case resp == nil:
		entry.Error("Operation returned no response")
	case resp.Success:
		entry.Info(resp.Message)
	default:
		entry.WithField("kind", resp.Kind.String()).Warn(resp.Message)
	}
}

// listResponse wraps a lookup list. An empty list is still a success.
func listResponse[T any](items []T, err error) (*models.ServiceResponse[[]T], error) {
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return success(items, MsgNone), nil
}

// recordsResponse wraps a query result, reporting no records for an empty list
func recordsResponse[T any](items []T, err error) (*models.ServiceResponse[[]T], error) {
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return failure[[]T](MsgNoRecords), nil
	}
	return success(items, MsgNone), nil
}

func getAllJobRoles(ctx context.Context, lookups LookupStore) (*models.ServiceResponse[[]models.JobRole], error) {
	return listResponse(lookups.GetAllJobRoles(ctx))
}
