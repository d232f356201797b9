package http

import (
	"reportlog-srv/internal/feedback"

	"github.com/gin-gonic/gin"
)

func getInputFromPath(c *gin.Context) feedback.GetInput {
	return feedback.GetInput{ExecutionID: c.Param("execution_id")}
}
