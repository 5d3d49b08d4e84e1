package auth

import (
	"net/http"

	"blog/models"

	"github.com/gin-gonic/gin"
)

// HandlerFunc receives the authenticated user, pre-loaded from the session.
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds auth checks + User pre-loading. Requests
// without a valid session are redirected to the login page before the
// handler runs.
type Router struct {
	Base  *gin.Engine
	Store *models.Store
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c, cr.Store)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
