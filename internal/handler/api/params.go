package api

import (
	"net/http"
	"strconv"

	"meeting-room-approval/internal/handler/httperr"
	"meeting-room-approval/internal/handler/middleware"
	"meeting-room-approval/internal/handler/validation"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID      = errs.Kind("id must be a positive integer", errs.ErrValidation)
	errInvalidRequest = errs.Kind("invalid request", errs.ErrValidation)
	errNoActor        = errs.New("authenticated user missing from context")
)

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidRequest), "Invalid request", validation.Describe(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidRequest), "Invalid query", validation.Describe(err))
		return false
	}
	return true
}

// actorFrom reads what RequireAuth stored. Missing values mean the route was
// wired without the middleware.
func actorFrom(c *gin.Context) (commands.Actor, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoActor, "Internal server error", nil)
		return commands.Actor{}, false
	}
	role, _ := middleware.GetUserRole(c)
	return commands.Actor{ID: id, Role: role}, true
}
