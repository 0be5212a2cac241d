//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"peer-tutor-scheduler/internal/domain/user"
	reqdto "peer-tutor-scheduler/internal/handler/dto/request"
	"peer-tutor-scheduler/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// token builds the fake bearer token understood by fakeAuth.
func token(userID string, role user.Role) string {
	return userID + ":" + string(role)
}

// fakeAuth trusts "Bearer <user>:<role>" so handler tests skip JWT signing.
func fakeAuth(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	userID, role, ok := strings.Cut(raw, ":")
	if !ok || userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	middleware.SetActor(c, userID, user.Role(role))
	c.Next()
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := reqdto.RegisterValidators(); err != nil {
		panic(err)
	}
	return gin.New()
}
