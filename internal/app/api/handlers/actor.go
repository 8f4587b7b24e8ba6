package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/veloweb/subman/internal/app/service/activity"
)

// currentActor reads the authenticated operator set by the auth middleware.
func currentActor(c *gin.Context) activity.Actor {
	return activity.Actor{
		ID:   c.GetString("user_id"),
		Name: c.GetString("user_name"),
	}
}
