package services

import "github.com/benchtrack/allocation-backend/internal/models"

func success[T any](data T, msg Message) *models.ServiceResponse[T] {
	return &models.ServiceResponse[T]{
		Success: true,
		Message: msg.Text(),
		Data:    &data,
		Kind:    models.FailureNone,
	}
}

func failure[T any](msg Message) *models.ServiceResponse[T] {
	return &models.ServiceResponse[T]{
		Success: false,
		Message: msg.Text(),
		Kind:    msg.Kind(),
	}
}

// invalidPayload reports a struct-tag validation error with the validator's own wording
func invalidPayload[T any](err error) *models.ServiceResponse[T] {
	return &models.ServiceResponse[T]{
		Success: false,
		Message: err.Error(),
		Kind:    models.FailureInvalidInput,
	}
}
