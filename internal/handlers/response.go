package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/benchtrack/allocation-backend/internal/middleware"
	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// queryDateLayout is the format of dates passed in query strings
const queryDateLayout = "2006-01-02"

// ErrorResponse is the envelope written when a request never reaches a service
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// respond writes a service outcome. Infrastructure errors become 500 and are logged.
func respond[T any](c *gin.Context, logger logrus.FieldLogger, successStatus int, resp *models.ServiceResponse[T], err error) {
	if err != nil {
		requestID, _ := c.Get(middleware.RequestIDKey)
		logger.WithError(err).WithFields(logrus.Fields{
			"route":      c.FullPath(),
			"request_id": requestID,
		}).Error("Service call failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(statusFor(resp.Success, resp.Kind, successStatus), resp)
}

func statusFor(success bool, kind models.FailureKind, successStatus int) int {
	if success {
		return successStatus
	}
	switch kind {
	case models.FailureNotFound:
		return http.StatusNotFound
	case models.FailureUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

func caller(c *gin.Context) models.Caller {
	caller, _ := middleware.GetCaller(c)
	return caller
}

// pathID parses the :id route parameter
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid employee id")
		return 0, false
	}
	return id, true
}

// optionalInt reads an integer query parameter, returning 0 when it is absent
func optionalInt(c *gin.Context, key string) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "Invalid "+key+" parameter")
		return 0, false
	}
	return value, true
}

func requiredInt64(c *gin.Context, key string) (int64, bool) {
	value, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		badRequest(c, "Invalid "+key+" parameter")
		return 0, false
	}
	return value, true
}

func requiredDate(c *gin.Context, key string) (time.Time, bool) {
	value, err := time.Parse(queryDateLayout, c.Query(key))
	if err != nil {
		badRequest(c, "Invalid "+key+" parameter, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return value, true
}
