package api

import (
	"github.com/gin-gonic/gin"

	"github.com/funketh/shinobu-bot/internal/transport/api/middlewares"
)

func getUserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentUserIDKey)
}
