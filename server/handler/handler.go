// Package handler implements the REST surface of circlehub: users, circles,
// circle news (with per-follower schedule fan-out), followed memberships,
// schedules and notifications.
package handler

import (
	"net/http"

	"github.com/circlehub/circlehub/server/middlewares"
	"github.com/circlehub/circlehub/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler carries the shared dependencies of all route handlers.
type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// RegisterRoutes wires every resource under /api. authMW guards the routes
// that need an acting identity; the caller decides what that middleware is
// (JWT in production, a stub in tests, a no-op when auth is bypassed).
func RegisterRoutes(router *gin.Engine, db *gorm.DB, authMW gin.HandlerFunc) {
	h := New(db)
	api := router.Group("/api")

	users := api.Group("/user")
	users.GET("", h.ListUsers)
	users.POST("", h.CreateUser)
	users.GET("/:user_id", h.GetUser)
	users.PUT("/:user_id", h.UpdateUser)
	users.DELETE("/:user_id", h.DeleteUser)

	circles := api.Group("/circles")
	circles.GET("", h.ListCircles)
	circles.POST("", h.CreateCircle)
	circles.GET("/:circle_id", h.GetCircle)
	circles.PUT("/:circle_id", h.UpdateCircle)
	circles.DELETE("/:circle_id", h.DeleteCircle)

	news := circles.Group("/:circle_id/news")
	news.GET("", h.ListCircleNews)
	news.POST("", h.CreateCircleNews)
	news.GET("/:news_id", h.GetCircleNews)
	news.PUT("/:news_id", h.UpdateCircleNews)
	news.DELETE("/:news_id", h.DeleteCircleNews)

	followed := api.Group("/followed", authMW)
	followed.GET("", h.ListFollowed)
	followed.GET("/current_user", h.ListMyFollowed)
	followed.POST("", h.CreateFollowed)
	followed.DELETE("/:circle_id", h.DeleteFollowed)

	schedules := api.Group("/schedules", authMW)
	schedules.GET("", h.ListMySchedules)
	schedules.PUT("/:schedule_id", h.UpdateSchedule)
	schedules.DELETE("/:schedule_id", h.DeleteSchedule)

	notifications := api.Group("/notifications", authMW)
	notifications.GET("", h.ListMyNotifications)
	notifications.POST("", h.CreateNotification)
	notifications.DELETE("/:notification_id", h.DeleteNotification)
}

// mustCurrentUser resolves the acting user injected by the auth middleware,
// responding 401 when the request carries no usable identity.
func (h *Handler) mustCurrentUser(c *gin.Context) (uint, bool) {
	id, ok := middlewares.CurrentUserId(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, utils.ErrorTokenAuthFail, "no acting user identity")
		return 0, false
	}
	return id, true
}
