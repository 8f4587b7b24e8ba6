package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veloweb/subman/internal/app/service/activity"
	"github.com/veloweb/subman/internal/app/service/auth"
	"github.com/veloweb/subman/pkg/response"
	"github.com/veloweb/subman/pkg/types"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Login
// @Description  Verifies credentials and returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  handlers.RespLogin
// @Router       /api/v1/auth/login [post]
func ApiLogin(authSvc *auth.Service, activitySvc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := authSvc.Login(c.Request.Context(), req.Email, req.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid credentials"))
			return
		}
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		activitySvc.Append(c.Request.Context(),
			activity.Actor{ID: res.User.ID, Name: res.User.Name},
			types.ActivityUserLogin, nil)

		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Logout
// @Description  Records a logout for the authenticated operator.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/auth/logout [post]
func ApiLogout(activitySvc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		activitySvc.Append(c.Request.Context(), currentActor(c), types.ActivityUserLogout, nil)
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// RegisterAuthRoutes wires login on the public group and logout on the
// authenticated group.
func RegisterAuthRoutes(public gin.IRouter, protected gin.IRouter, authSvc *auth.Service, activitySvc *activity.Service) {
	public.POST("/auth/login", ApiLogin(authSvc, activitySvc))
	protected.POST("/auth/logout", ApiLogout(activitySvc))
}
