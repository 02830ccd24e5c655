package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/copy-census/internal/adapters/http/dto"
)

// NoRoute answers requests for paths the census does not serve.
func NoRoute(c *gin.Context) {
	respondWithCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.URL.Path)
}

// NoMethod answers requests whose path exists under another method.
func NoMethod(c *gin.Context) {
	respondWithCode(c, dto.ErrorCodeMethodNotAllowed, "method "+c.Request.Method+" not allowed")
}

func respondWithCode(c *gin.Context, code, message string) {
	resp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))
	c.JSON(dto.HTTPStatusFromCode(code), resp)
}
