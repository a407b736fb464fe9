package handler

import (
	"net/http"

	"github.com/circlehub/circlehub/utils"
	Logger "github.com/circlehub/circlehub/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type errorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

func respondError(c *gin.Context, status int, code string, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Msg: msg})
}

func respondNotFound(c *gin.Context, msg string) {
	respondError(c, http.StatusNotFound, utils.ErrorNotFound, msg)
}

func respondConflict(c *gin.Context, msg string) {
	respondError(c, http.StatusConflict, utils.ErrorConflict, msg)
}

func respondValidation(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, utils.ErrorValidation, err.Error())
}

func respondQueryFailure(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, utils.ErrorQueryFailure, err.Error())
}

// respondUnexpected reports any persistence failure that is not a uniqueness
// violation. The wrapped error is logged, the client only sees msg.
func respondUnexpected(c *gin.Context, err error, msg string) {
	Logger.Log.Error(errors.Wrap(err, msg))
	respondError(c, http.StatusInternalServerError, utils.ErrorUnexpected, msg)
}

// respondWriteError maps a commit failure to the taxonomy: uniqueness
// violations are conflicts, everything else is unexpected.
func respondWriteError(c *gin.Context, err error, conflictMsg string, unexpectedMsg string) {
	if utils.IsUniqueViolation(err) {
		respondConflict(c, conflictMsg)
		return
	}
	respondUnexpected(c, err, unexpectedMsg)
}
