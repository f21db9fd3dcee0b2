package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tabletop-events-api/internal/response"
)

var registerTagNameOnce sync.Once

// useJSONFieldNames makes validation errors report the json name of a field
// ("gameId") instead of the Go name ("GameID").
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body. On failure it writes a
// 400 naming the first offending field and returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	useJSONFieldNames()
	if err := c.ShouldBindJSON(req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			return field + " is required"
		case "min":
			if fe.Kind() == reflect.String {
				return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
			}
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		case "gt":
			return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		case "email":
			return field + " must be a valid email address"
		case "latitude", "longitude":
			return fmt.Sprintf("%s must be a valid %s", field, fe.Tag())
		default:
			return field + " is invalid"
		}
	}

	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		return "date must be an RFC 3339 timestamp"
	}
	return "Invalid request body"
}

// parseID parses a positive integer id
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pathID reads the :id path parameter, writing a 400 when it is not a valid id
func pathID(c *gin.Context, entity string) (int64, bool) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+entity+" ID")
	}
	return id, ok
}

// queryID reads an id query parameter. present is false when the parameter
// is absent; a present but malformed value writes a 400.
func queryID(c *gin.Context, name string) (id int64, present bool, ok bool) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return 0, false, true
	}
	id, ok = parseID(raw)
	if !ok {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name)
	}
	return id, true, ok
}

// requiredQueryID is queryID for parameters that must be present
func requiredQueryID(c *gin.Context, name string) (int64, bool) {
	id, present, ok := queryID(c, name)
	if !ok {
		return 0, false
	}
	if !present {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, name+" is required")
		return 0, false
	}
	return id, true
}
