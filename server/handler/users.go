package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/circlehub/circlehub/model"
	"github.com/circlehub/circlehub/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	userListDefaultSize = 20
	userListMaxSize     = 100
)

// userSortColumns whitelists the sortable columns of the user list. Unknown
// keys fall back to id.
var userSortColumns = []string{"id", "name", "created_at"}

type userCreateRequest struct {
	Name      string  `json:"name" binding:"required,notblank,max=40"`
	Email     string  `json:"email" binding:"required,email,max=255"`
	Icon      *string `json:"icon" binding:"omitempty,url,max=200"`
	LoginId   string  `json:"login_id" binding:"required,min=6,max=40"`
	LoginPass string  `json:"login_pass" binding:"required,min=6,max=200"`
}

type userUpdateRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=40"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Icon      *string `json:"icon" binding:"omitempty,url,max=200"`
	LoginId   *string `json:"login_id" binding:"omitempty,min=6,max=40"`
	LoginPass *string `json:"login_pass" binding:"omitempty,min=6,max=200"`
}

// ListUsers returns at most "size" users, optionally filtered by a keyword
// matched case-insensitively against name, email and login_id, sorted by the
// "sort" param ("-" prefix for descending, default "-id").
func (h *Handler) ListUsers(c *gin.Context) {
	size, err := parseListSize(c, userListDefaultSize, userListMaxSize)
	if err != nil {
		respondQueryFailure(c, err)
		return
	}

	q := h.DB.Model(&model.User{})

	if search := c.Query("search"); search != "" {
		pattern := likePattern(search)
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(login_id) LIKE ?",
			pattern, pattern, pattern)
	}

	sort := c.DefaultQuery("sort", "-id")
	desc := strings.HasPrefix(sort, "-")
	column := strings.TrimPrefix(sort, "-")
	if !utils.ContainsString(userSortColumns, column) {
		column = "id"
	}
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	var users []model.User
	if err := q.Order(fmt.Sprintf("%s %s", column, direction)).Limit(size).Find(&users).Error; err != nil {
		respondQueryFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req userCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	hashed, err := utils.HashPassword(req.LoginPass)
	if err != nil {
		respondUnexpected(c, err, "cannot hash password")
		return
	}

	user := model.User{
		Name:      req.Name,
		Email:     req.Email,
		Icon:      req.Icon,
		LoginId:   req.LoginId,
		LoginPass: hashed,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		respondWriteError(c, err, "email or login_id already exists", "cannot create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := parseIdParam(c, "user_id")
	if err != nil {
		respondValidation(c, err)
		return
	}

	var user model.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "user not found")
			return
		}
		respondUnexpected(c, err, "cannot read user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser merges the supplied fields into the stored row; absent fields
// are left untouched. A supplied login_pass is re-hashed before storage.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := parseIdParam(c, "user_id")
	if err != nil {
		respondValidation(c, err)
		return
	}

	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	var user model.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "user not found")
			return
		}
		respondUnexpected(c, err, "cannot read user")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Icon != nil {
		user.Icon = req.Icon
	}
	if req.LoginId != nil {
		user.LoginId = *req.LoginId
	}
	if req.LoginPass != nil {
		hashed, err := utils.HashPassword(*req.LoginPass)
		if err != nil {
			respondUnexpected(c, err, "cannot hash password")
			return
		}
		user.LoginPass = hashed
	}

	if err := h.DB.Save(&user).Error; err != nil {
		respondWriteError(c, err, "email or login_id already exists", "cannot update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := parseIdParam(c, "user_id")
	if err != nil {
		respondValidation(c, err)
		return
	}

	var user model.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "user not found")
			return
		}
		respondUnexpected(c, err, "cannot read user")
		return
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		respondUnexpected(c, err, "cannot delete user")
		return
	}
	c.Status(http.StatusNoContent)
}
