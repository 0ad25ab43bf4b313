package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aula/internal/shared/errors"
)

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ErrorInfo carries error information in an API response.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse is a paginated list payload.
type ListResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// SuccessResponse sends a successful response with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

// OKResponse sends a 200 response with data.
func OKResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// CreatedResponse sends a 201 response with data.
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// ErrorResponse sends an error response with the given status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   &ErrorInfo{Type: typeForStatus(statusCode), Message: message},
	})
}

// AppErrorResponse maps an error to a response, using the AppError status
// code when available and falling back to 500.
func AppErrorResponse(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, APIResponse{
			Success: false,
			Error: &ErrorInfo{
				Type:    string(appErr.Type),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}

func typeForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return string(errors.ErrorTypeBadRequest)
	case http.StatusUnauthorized:
		return string(errors.ErrorTypeUnauthorized)
	case http.StatusForbidden:
		return string(errors.ErrorTypeForbidden)
	case http.StatusNotFound:
		return string(errors.ErrorTypeNotFound)
	case http.StatusConflict:
		return string(errors.ErrorTypeConflict)
	default:
		return string(errors.ErrorTypeInternal)
	}
}
