package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/circlehub/circlehub/model"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	circleListDefaultSize = 20
	circleListMaxSize     = 100
)

type circleCreateRequest struct {
	Name              string   `json:"name" binding:"required,notblank,max=100"`
	Description       *string  `json:"description"`
	Image             *string  `json:"image" binding:"omitempty,url,max=300"`
	Tags              []string `json:"tags"`
	SnsLinksX         *string  `json:"sns_links_x" binding:"omitempty,url,max=300"`
	SnsLinksInstagram *string  `json:"sns_links_instagram" binding:"omitempty,url,max=300"`
	SnsLinksLine      *string  `json:"sns_links_line" binding:"omitempty,url,max=300"`
}

type circleUpdateRequest struct {
	Name              *string  `json:"name" binding:"omitempty,max=100"`
	Description       *string  `json:"description"`
	Image             *string  `json:"image" binding:"omitempty,url,max=300"`
	Tags              []string `json:"tags"`
	SnsLinksX         *string  `json:"sns_links_x" binding:"omitempty,url,max=300"`
	SnsLinksInstagram *string  `json:"sns_links_instagram" binding:"omitempty,url,max=300"`
	SnsLinksLine      *string  `json:"sns_links_line" binding:"omitempty,url,max=300"`
}

// tagsJSON converts a tag list to its JSON column value, never null.
func tagsJSON(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	raw, _ := json.Marshal(tags)
	return datatypes.JSON(raw)
}

// attachFollowerCount fills the derived Followers field from the membership
// rows. The count is computed at read time and never stored (see model.Circle).
func (h *Handler) attachFollowerCount(circle *model.Circle) error {
	return h.DB.Model(&model.Followed{}).
		Where("circle_id = ?", circle.Id).
		Count(&circle.Followers).Error
}

func (h *Handler) ListCircles(c *gin.Context) {
	size, err := parseListSize(c, circleListDefaultSize, circleListMaxSize)
	if err != nil {
		respondQueryFailure(c, err)
		return
	}

	var circles []*model.Circle
	if err := h.DB.Limit(size).Find(&circles).Error; err != nil {
		respondQueryFailure(c, err)
		return
	}
	for _, circle := range circles {
		if err := h.attachFollowerCount(circle); err != nil {
			respondUnexpected(c, err, "cannot count followers")
			return
		}
	}
	c.JSON(http.StatusOK, circles)
}

func (h *Handler) CreateCircle(c *gin.Context) {
	var req circleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	circle := model.Circle{
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		Image:             req.Image,
		Tags:              tagsJSON(req.Tags),
		SnsLinksX:         req.SnsLinksX,
		SnsLinksInstagram: req.SnsLinksInstagram,
		SnsLinksLine:      req.SnsLinksLine,
	}
	if err := h.DB.Create(&circle).Error; err != nil {
		respondWriteError(c, err, "circle name already exists", "cannot create circle")
		return
	}
	c.JSON(http.StatusCreated, circle)
}

func (h *Handler) GetCircle(c *gin.Context) {
	id, err := parseIdParam(c, "circle_id")
	if err != nil {
		respondValidation(c, err)
		return
	}

	var circle model.Circle
	if err := h.DB.First(&circle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "circle not found")
			return
		}
		respondUnexpected(c, err, "cannot read circle")
		return
	}
	if err := h.attachFollowerCount(&circle); err != nil {
		respondUnexpected(c, err, "cannot count followers")
		return
	}
	c.JSON(http.StatusOK, circle)
}

func (h *Handler) UpdateCircle(c *gin.Context) {
	id, err := parseIdParam(c, "circle_id")
	if err != nil {
		respondValidation(c, err)
		return
	}

	var req circleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	var circle model.Circle
	if err := h.DB.First(&circle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "circle not found")
			return
		}
		respondUnexpected(c, err, "cannot read circle")
		return
	}

	if req.Name != nil {
		circle.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		circle.Description = req.Description
	}
	if req.Image != nil {
		circle.Image = req.Image
	}
	if req.Tags != nil {
		circle.Tags = tagsJSON(req.Tags)
	}
	if req.SnsLinksX != nil {
		circle.SnsLinksX = req.SnsLinksX
	}
	if req.SnsLinksInstagram != nil {
		circle.SnsLinksInstagram = req.SnsLinksInstagram
	}
	if req.SnsLinksLine != nil {
		circle.SnsLinksLine = req.SnsLinksLine
	}

	if err := h.DB.Save(&circle).Error; err != nil {
		respondWriteError(c, err, "circle name already exists", "cannot update circle")
		return
	}
	if err := h.attachFollowerCount(&circle); err != nil {
		respondUnexpected(c, err, "cannot count followers")
		return
	}
	c.JSON(http.StatusOK, circle)
}

func (h *Handler) DeleteCircle(c *gin.Context) {
	id, err := parseIdParam(c, "circle_id")
	if err != nil {
		respondValidation(c, err)
		return
	}

	var circle model.Circle
	if err := h.DB.First(&circle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "circle not found")
			return
		}
		respondUnexpected(c, err, "cannot read circle")
		return
	}

	if err := h.DB.Delete(&circle).Error; err != nil {
		respondUnexpected(c, err, "cannot delete circle")
		return
	}
	c.Status(http.StatusNoContent)
}
