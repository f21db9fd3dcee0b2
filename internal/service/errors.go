package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/response"
)

func notFound(entity string) error {
	return response.NewAppError(response.ErrCodeNotFound, entity+" not found", "")
}

func forbidden(message string) error {
	return response.NewAppError(response.ErrCodeForbidden, message, "")
}

func unauthorized(message string) error {
	return response.NewAppError(response.ErrCodeUnauthorized, message, "")
}

func invalid(message string) error {
	return response.NewAppError(response.ErrCodeValidation, message, "")
}

func conflict(message string) error {
	return response.NewAppError(response.ErrCodeAlreadyExists, message, "")
}

// internal logs err and wraps it. The handler layer never shows Details to clients.
func internal(logger *zap.Logger, message string, err error) error {
	logger.Error(message, zap.Error(err))
	return response.NewAppError(response.ErrCodeInternal, message, err.Error())
}

// lookupError maps a FindBy* failure to NotFound or Internal
func lookupError(logger *zap.Logger, entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	return internal(logger, "Failed to load "+strings.ToLower(entity), err)
}
