package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/response"
)

func assertAppError(t *testing.T, err error, code string) *response.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func memberCaller(id int64) *auth.Caller {
	return &auth.Caller{AccountID: id, Email: "member@example.com"}
}

func adminCaller(id int64) *auth.Caller {
	return &auth.Caller{AccountID: id, Email: "admin@gmail.com", IsAdmin: true}
}

func int64Ptr(v int64) *int64       { return &v }
func stringPtr(v string) *string    { return &v }
func float64Ptr(v float64) *float64 { return &v }
