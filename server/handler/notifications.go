package handler

import (
	"errors"
	"net/http"

	"github.com/circlehub/circlehub/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	notificationListDefaultSize = 20
	notificationListMaxSize     = 100
)

type notificationCreateRequest struct {
	UserId   uint    `json:"user_id" binding:"required"`
	CircleId uint    `json:"circle_id" binding:"required"`
	Title    string  `json:"title" binding:"required,notblank,max=200"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
	Message  *string `json:"message"`
}

// ListMyNotifications returns the acting user's notifications, newest date
// first, ties broken by id descending.
func (h *Handler) ListMyNotifications(c *gin.Context) {
	userId, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}

	size, err := parseListSize(c, notificationListDefaultSize, notificationListMaxSize)
	if err != nil {
		respondQueryFailure(c, err)
		return
	}

	var notifications []model.Notification
	if err := h.DB.Where("user_id = ?", userId).
		Order("date DESC, id DESC").Limit(size).
		Find(&notifications).Error; err != nil {
		respondQueryFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// CreateNotification delivers a circle notification to a target user. Both
// the target user and the circle must exist.
func (h *Handler) CreateNotification(c *gin.Context) {
	if _, ok := h.mustCurrentUser(c); !ok {
		return
	}

	var req notificationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	var count int64
	if err := h.DB.Model(&model.User{}).Where("id = ?", req.UserId).Count(&count).Error; err != nil {
		respondUnexpected(c, err, "cannot read user")
		return
	}
	if count == 0 {
		respondNotFound(c, "user not found")
		return
	}
	if err := h.DB.Model(&model.Circle{}).Where("id = ?", req.CircleId).Count(&count).Error; err != nil {
		respondUnexpected(c, err, "cannot read circle")
		return
	}
	if count == 0 {
		respondNotFound(c, "circle not found")
		return
	}

	notification := model.Notification{
		UserId:   req.UserId,
		CircleId: req.CircleId,
		Title:    req.Title,
		Date:     mustParseDate(req.Date),
		Message:  req.Message,
	}
	if err := h.DB.Create(&notification).Error; err != nil {
		respondUnexpected(c, err, "cannot create notification")
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	userId, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	notificationId, err := parseIdParam(c, "notification_id")
	if err != nil {
		respondValidation(c, err)
		return
	}

	var notification model.Notification
	if err := h.DB.Where("user_id = ? AND id = ?", userId, notificationId).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "notification not found")
			return
		}
		respondUnexpected(c, err, "cannot read notification")
		return
	}

	if err := h.DB.Delete(&notification).Error; err != nil {
		respondUnexpected(c, err, "cannot delete notification")
		return
	}
	c.Status(http.StatusNoContent)
}
