package handler

import (
	"errors"
	"net/http"

	"github.com/circlehub/circlehub/model"
	"github.com/circlehub/circlehub/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	newsListDefaultSize = 50
	newsListMaxSize     = 200
)

type circleNewsRequest struct {
	CircleId uint    `json:"circle_id" binding:"required"`
	Title    string  `json:"title" binding:"required,notblank,max=200"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
	Content  *string `json:"content"`
	HasPhoto bool    `json:"has_photo"`
	PhotoUrl *string `json:"photo_url" binding:"omitempty,max=300"`
}

// ensureCircleExists resolves the circle_id path param and verifies the
// circle exists, responding 404/400 itself on failure.
func (h *Handler) ensureCircleExists(c *gin.Context) (uint, bool) {
	circleId, err := parseIdParam(c, "circle_id")
	if err != nil {
		respondValidation(c, err)
		return 0, false
	}
	var count int64
	if err := h.DB.Model(&model.Circle{}).Where("id = ?", circleId).Count(&count).Error; err != nil {
		respondUnexpected(c, err, "cannot read circle")
		return 0, false
	}
	if count == 0 {
		respondNotFound(c, "circle not found")
		return 0, false
	}
	return circleId, true
}

// ListCircleNews returns at most "size" news items of a circle, optionally
// filtered by a keyword against title/content and an inclusive date range,
// newest date first, ties broken by id descending.
func (h *Handler) ListCircleNews(c *gin.Context) {
	circleId, ok := h.ensureCircleExists(c)
	if !ok {
		return
	}

	size, err := parseListSize(c, newsListDefaultSize, newsListMaxSize)
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

	q := h.DB.Model(&model.CircleNews{}).Where("circle_id = ?", circleId)
	if search := c.Query("search"); search != "" {
		pattern := likePattern(search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}
	if dateFrom != nil {
		q = q.Where("date >= ?", *dateFrom)
	}
	if dateTo != nil {
		q = q.Where("date <= ?", *dateTo)
	}

	var news []model.CircleNews
	if err := q.Order("date DESC, id DESC").Limit(size).Find(&news).Error; err != nil {
		respondQueryFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// CreateCircleNews inserts a news item and fans one schedule row out to every
// follower of the circle, all inside a single transaction. Either the news
// row and every schedule row commit together, or nothing is persisted.
func (h *Handler) CreateCircleNews(c *gin.Context) {
	circleId, ok := h.ensureCircleExists(c)
	if !ok {
		return
	}

	var req circleNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if req.CircleId != circleId {
		respondError(c, http.StatusBadRequest, utils.ErrorValidation, "circle_id mismatch between path and body")
		return
	}

	news := model.CircleNews{
		CircleId: circleId,
		Title:    req.Title,
		Date:     mustParseDate(req.Date),
		Content:  req.Content,
		HasPhoto: req.HasPhoto,
		PhotoUrl: req.PhotoUrl,
	}

	var fanOut utils.GormTransaction = func(tx *gorm.DB) error {
		if err := tx.Create(&news).Error; err != nil {
			return err
		}

		var followerIds []uint
		if err := tx.Model(&model.Followed{}).
			Where("circle_id = ?", circleId).
			Pluck("user_id", &followerIds).Error; err != nil {
			return err
		}
		if len(followerIds) == 0 {
			return nil
		}

		schedules := make([]*model.UserSchedule, 0, len(followerIds))
		for _, userId := range followerIds {
			schedules = append(schedules, &model.UserSchedule{
				UserId:       userId,
				CircleNewsId: news.Id,
				Title:        news.Title,
				StartAt:      news.Date,
				EndAt:        news.Date,
				Memo:         news.Content,
			})
		}
		// return nil will commit the whole transaction
		return tx.Create(&schedules).Error
	}
	if err := h.DB.Transaction(fanOut); err != nil {
		respondWriteError(c, err, "unique constraint failed", "cannot create news")
		return
	}
	c.JSON(http.StatusCreated, news)
}

// findCircleNews loads one news item scoped to the circle in the path.
func (h *Handler) findCircleNews(c *gin.Context, circleId uint) (*model.CircleNews, bool) {
	newsId, err := parseIdParam(c, "news_id")
	if err != nil {
		respondValidation(c, err)
		return nil, false
	}
	var news model.CircleNews
	if err := h.DB.Where("circle_id = ? AND id = ?", circleId, newsId).First(&news).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "circle news not found")
			return nil, false
		}
		respondUnexpected(c, err, "cannot read circle news")
		return nil, false
	}
	return &news, true
}

func (h *Handler) GetCircleNews(c *gin.Context) {
	circleId, ok := h.ensureCircleExists(c)
	if !ok {
		return
	}
	news, ok := h.findCircleNews(c, circleId)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, news)
}

// UpdateCircleNews fully replaces the mutable fields of a news item. The
// owning circle stays the one in the path, and schedule rows fanned out at
// creation time are left untouched.
func (h *Handler) UpdateCircleNews(c *gin.Context) {
	circleId, ok := h.ensureCircleExists(c)
	if !ok {
		return
	}
	news, ok := h.findCircleNews(c, circleId)
	if !ok {
		return
	}

	var req circleNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	news.Title = req.Title
	news.Date = mustParseDate(req.Date)
	news.Content = req.Content
	news.HasPhoto = req.HasPhoto
	news.PhotoUrl = req.PhotoUrl

	if err := h.DB.Save(news).Error; err != nil {
		respondWriteError(c, err, "unique constraint failed", "cannot update circle news")
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *Handler) DeleteCircleNews(c *gin.Context) {
	circleId, ok := h.ensureCircleExists(c)
	if !ok {
		return
	}
	news, ok := h.findCircleNews(c, circleId)
	if !ok {
		return
	}

	if err := h.DB.Delete(news).Error; err != nil {
		respondUnexpected(c, err, "cannot delete circle news")
		return
	}
	c.Status(http.StatusNoContent)
}
