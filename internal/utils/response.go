package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {success, message, <key>?}.
// The data key is the entity noun (singular or plural), so the admin front
// end reads response.news, response.banner and so on.

func SuccessResponse(c *gin.Context, message, dataKey string, data interface{}) {
	respond(c, http.StatusOK, true, message, dataKey, data)
}

func CreatedResponse(c *gin.Context, message, dataKey string, data interface{}) {
	respond(c, http.StatusCreated, true, message, dataKey, data)
}

// EmptyListResponse reports an empty collection. Absence of data is a
// normal outcome, not an error, but the legacy contract marks it with
// success=false and an empty list under the entity key.
func EmptyListResponse(c *gin.Context, message, dataKey string) {
	respond(c, http.StatusOK, false, message, dataKey, []interface{}{})
}

func BadRequestResponse(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, false, message, "", nil)
}

func NotFoundResponse(c *gin.Context, resource string) {
	respond(c, http.StatusNotFound, false, resource+" not found", "", nil)
}

func UnauthorizedResponse(c *gin.Context) {
	respond(c, http.StatusUnauthorized, false, ErrMsgUnauthorized, "", nil)
}

func ConflictResponse(c *gin.Context, message string) {
	respond(c, http.StatusConflict, false, message, "", nil)
}

func InternalServerErrorResponse(c *gin.Context) {
	respond(c, http.StatusInternalServerError, false, ErrMsgInternalServer, "", nil)
}

func respond(c *gin.Context, status int, success bool, message, dataKey string, data interface{}) {
	body := gin.H{
		"success": success,
		"message": message,
	}
	if dataKey != "" {
		body[dataKey] = data
	}
	c.JSON(status, body)
}
