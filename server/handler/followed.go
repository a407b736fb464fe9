package handler

import (
	"errors"
	"net/http"

	"github.com/circlehub/circlehub/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type followedCreateRequest struct {
	// UserId is accepted for wire compatibility but always overwritten with
	// the acting user's identity.
	UserId   uint    `json:"user_id"`
	CircleId uint    `json:"circle_id" binding:"required"`
	Date     *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	IsAdmin  bool    `json:"is_admin"`
}

// ListFollowed returns every membership row, newest first.
func (h *Handler) ListFollowed(c *gin.Context) {
	var rows []model.Followed
	if err := h.DB.Order("id DESC").Find(&rows).Error; err != nil {
		respondQueryFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListMyFollowed returns the acting user's membership rows, newest first.
func (h *Handler) ListMyFollowed(c *gin.Context) {
	userId, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	var rows []model.Followed
	if err := h.DB.Where("user_id = ?", userId).Order("id DESC").Find(&rows).Error; err != nil {
		respondQueryFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateFollowed makes the acting user follow a circle. A user follows a
// circle at most once: the pre-check gives a friendly conflict message and
// the composite unique index on (user_id, circle_id) closes the race window.
func (h *Handler) CreateFollowed(c *gin.Context) {
	userId, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}

	var req followedCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	var count int64
	if err := h.DB.Model(&model.Circle{}).Where("id = ?", req.CircleId).Count(&count).Error; err != nil {
		respondUnexpected(c, err, "cannot read circle")
		return
	}
	if count == 0 {
		respondNotFound(c, "circle not found")
		return
	}

	var dup int64
	if err := h.DB.Model(&model.Followed{}).
		Where("user_id = ? AND circle_id = ?", userId, req.CircleId).
		Count(&dup).Error; err != nil {
		respondUnexpected(c, err, "cannot check membership")
		return
	}
	if dup > 0 {
		respondConflict(c, "already joined")
		return
	}

	followed := model.Followed{
		UserId:   userId,
		CircleId: req.CircleId,
		IsAdmin:  req.IsAdmin,
	}
	if req.Date != nil {
		d := mustParseDate(*req.Date)
		followed.Date = &d
	}
	if err := h.DB.Create(&followed).Error; err != nil {
		respondWriteError(c, err, "already joined", "cannot create membership")
		return
	}
	c.JSON(http.StatusCreated, followed)
}

// DeleteFollowed removes the acting user's own membership of a circle. Other
// users' rows are unreachable by construction.
func (h *Handler) DeleteFollowed(c *gin.Context) {
	userId, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	circleId, err := parseIdParam(c, "circle_id")
	if err != nil {
		respondValidation(c, err)
		return
	}

	var followed model.Followed
	if err := h.DB.Where("user_id = ? AND circle_id = ?", userId, circleId).
		First(&followed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "membership not found")
			return
		}
		respondUnexpected(c, err, "cannot read membership")
		return
	}

	if err := h.DB.Delete(&followed).Error; err != nil {
		respondUnexpected(c, err, "cannot delete membership")
		return
	}
	c.Status(http.StatusNoContent)
}
