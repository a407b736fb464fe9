package handler

import (
	"errors"
	"net/http"

	"github.com/circlehub/circlehub/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	scheduleListDefaultSize = 50
	scheduleListMaxSize     = 200
)

type scheduleUpdateRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	StartAt *string `json:"start_at" binding:"omitempty,datetime=2006-01-02"`
	EndAt   *string `json:"end_at" binding:"omitempty,datetime=2006-01-02"`
	Memo    *string `json:"memo"`
}

// ListMySchedules returns the acting user's schedule rows, optionally bounded
// by an inclusive date range against start_at, earliest first.
func (h *Handler) ListMySchedules(c *gin.Context) {
	userId, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}

	size, err := parseListSize(c, scheduleListDefaultSize, scheduleListMaxSize)
	if err != nil {
		respondQueryFailure(c, err)
		return
	}
	dateFrom, err := parseDateParam(c, "date_from")
	if err != nil {
		respondQueryFailure(c, err)
		return
	}
	dateTo, err := parseDateParam(c, "date_to")
	if err != nil {
		respondQueryFailure(c, err)
		return
	}

	q := h.DB.Model(&model.UserSchedule{}).Where("user_id = ?", userId)
	if dateFrom != nil {
		q = q.Where("start_at >= ?", *dateFrom)
	}
	if dateTo != nil {
		q = q.Where("start_at <= ?", *dateTo)
	}

	var schedules []model.UserSchedule
	if err := q.Order("start_at ASC, id ASC").Limit(size).Find(&schedules).Error; err != nil {
		respondQueryFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// findMySchedule loads one schedule row scoped to the acting user.
func (h *Handler) findMySchedule(c *gin.Context, userId uint) (*model.UserSchedule, bool) {
	scheduleId, err := parseIdParam(c, "schedule_id")
	if err != nil {
		respondValidation(c, err)
		return nil, false
	}
	var schedule model.UserSchedule
	if err := h.DB.Where("user_id = ? AND id = ?", userId, scheduleId).
		First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "schedule not found")
			return nil, false
		}
		respondUnexpected(c, err, "cannot read schedule")
		return nil, false
	}
	return &schedule, true
}

// UpdateSchedule merges the supplied fields into the acting user's own row.
func (h *Handler) UpdateSchedule(c *gin.Context) {
	userId, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}

	var req scheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	schedule, ok := h.findMySchedule(c, userId)
	if !ok {
		return
	}

	if req.Title != nil {
		schedule.Title = *req.Title
	}
	if req.StartAt != nil {
		schedule.StartAt = mustParseDate(*req.StartAt)
	}
	if req.EndAt != nil {
		schedule.EndAt = mustParseDate(*req.EndAt)
	}
	if req.Memo != nil {
		schedule.Memo = req.Memo
	}

	if err := h.DB.Save(schedule).Error; err != nil {
		respondUnexpected(c, err, "cannot update schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *Handler) DeleteSchedule(c *gin.Context) {
	userId, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	schedule, ok := h.findMySchedule(c, userId)
	if !ok {
		return
	}

	if err := h.DB.Delete(schedule).Error; err != nil {
		respondUnexpected(c, err, "cannot delete schedule")
		return
	}
	c.Status(http.StatusNoContent)
}
