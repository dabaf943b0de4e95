package listeners

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"api-footwear/internal/models"
)

// ErrorResponse representa la estructura estándar de errores
type ErrorResponse struct {
	Success   bool        `json:"success"`
	Error     ErrorDetail `json:"error"`
	Timestamp string      `json:"timestamp"`
	Path      string      `json:"path"`
	Method    string      `json:"method"`
}

// ErrorDetail contiene los detalles del error
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Hint    string      `json:"hint,omitempty"`
}

// SuccessResponse representa la estructura estándar de respuestas exitosas
type SuccessResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// Códigos de error estandarizados
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeValidationError = "VALIDATION_ERROR"
	ErrCodeInternalServer  = "INTERNAL_SERVER_ERROR"

	// Errores de negocio
	ErrCodeUnknownCategory = "UNKNOWN_CATEGORY"
	ErrCodeInvalidRoom     = "INVALID_ROOM"
)

// RespondWithError envía una respuesta de error estandarizada
func RespondWithError(c *gin.Context, statusCode int, errorCode, message string, details interface{}, hint string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    errorCode,
			Message: message,
			Details: details,
			Hint:    hint,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Request.URL.Path,
		Method:    c.Request.Method,
	})
}

// RespondWithSuccess envía una respuesta exitosa estandarizada
func RespondWithSuccess(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, SuccessResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// BadRequest - Error 400
func BadRequest(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadRequest, ErrCodeBadRequest, message, details,
		"Verifica que los parámetros de la solicitud sean correctos")
}

// NotFound - Error 404
func NotFound(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusNotFound, ErrCodeNotFound, message, details,
		"Verifica que el recurso existe o que el ID sea correcto")
}

// InternalServerError - Error 500
func InternalServerError(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusInternalServerError, ErrCodeInternalServer, message, details,
		"Revisa los logs del servidor si el error persiste")
}

// ValidationError - Error de validación genérico
func ValidationError(c *gin.Context, field string, message string) {
	RespondWithError(c, http.StatusBadRequest, ErrCodeValidationError,
		"Error de validación",
		gin.H{
			"field":  field,
			"reason": message,
		},
		"Verifica que todos los parámetros tengan el tipo correcto")
}

// UnknownCategory - Error de negocio: categoría fuera del conjunto fijo
func UnknownCategory(c *gin.Context, category string) {
	available := make([]string, 0, len(models.AllCategories)+1)
	available = append(available, models.CategoryAll)
	for _, cat := range models.AllCategories {
		available = append(available, string(cat))
	}
	RespondWithError(c, http.StatusBadRequest, ErrCodeUnknownCategory,
		"Categoría desconocida",
		gin.H{
			"category":  category,
			"available": available,
		},
		"Usa GET /processes/categories para listar las categorías disponibles")
}

// Success - Respuesta exitosa genérica
func Success(c *gin.Context, data interface{}, message string) {
	RespondWithSuccess(c, http.StatusOK, data, message)
}
