package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/logger"
	"cofre/internal/middleware"
	"cofre/internal/uuid"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseDate parses a "YYYY-MM-DD" (or RFC 3339) body field.
func parseDate(field, value string) (time.Time, error) {
	d, err := dates.ParseDay(value)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

// optionalPeriod reads the month being queried from either ?period=YYYY-MM or
// ?month=M&year=YYYY. It returns nil when none of them is present.
func optionalPeriod(c *gin.Context) (*dates.Period, error) {
	if raw := c.Query("period"); raw != "" {
		p, err := dates.ParsePeriod(raw)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "period must be in YYYY-MM format")
		}
		return &p, nil
	}

	rawMonth, rawYear := c.Query("month"), c.Query("year")
	if rawMonth == "" {
		return nil, nil
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "month must be a number")
	}
	year := time.Now().Year()
	if rawYear != "" {
		if year, err = strconv.Atoi(rawYear); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "year must be a number")
		}
	}
	p, err := dates.NewPeriod(year, month)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidPeriod, err)
	}
	return &p, nil
}

// pathPeriod reads a "YYYY-MM" path parameter named period.
func pathPeriod(c *gin.Context) (dates.Period, error) {
	p, err := dates.ParsePeriod(c.Param("period"))
	if err != nil {
		return dates.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "period must be in YYYY-MM format")
	}
	return p, nil
}

// queryPeriod is optionalPeriod defaulting to the current month.
func queryPeriod(c *gin.Context) (dates.Period, error) {
	p, err := optionalPeriod(c)
	if err != nil {
		return dates.Period{}, err
	}
	if p == nil {
		return dates.PeriodOf(time.Now()), nil
	}
	return *p, nil
}

// queryYear reads ?year, defaulting to the current year.
func queryYear(c *gin.Context) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return time.Now().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "year must be a positive number")
	}
	return year, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

func invalidInput(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
