package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/veloweb/subman/internal/app/service/activity"
	"github.com/veloweb/subman/pkg/response"
)

// @Summary      List Activities
// @Description  Recent audit entries, newest first.
// @Tags         Activities
// @Produce      json
// @Param        limit query int false "Max entries (default 100)"
// @Success      200  {object}  handlers.RespActivities
// @Router       /api/v1/activities [get]
func ApiListActivities(svc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid limit"))
				return
			}
			limit = n
		}
		items, err := svc.List(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

func RegisterActivityRoutes(r gin.IRouter, svc *activity.Service) {
	r.GET("/activities", ApiListActivities(svc))
}
