package api

import (
	"net/http"

	"peer-tutor-scheduler/internal/handler/httperr"
	"peer-tutor-scheduler/internal/handler/middleware"
	"peer-tutor-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("no authenticated user on request")

// actorID returns the authenticated caller or aborts with 401.
func actorID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return "", false
	}
	return userID, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
		return false
	}
	return true
}
