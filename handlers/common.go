package handlers

import (
	"net/http"

	"blog/auth"

	"github.com/gin-gonic/gin"
)

func (a *App) session(c *gin.Context) *auth.Session {
	return auth.LoadSession(c, a.Store)
}

// render draws a template, adding the drained flash notices and the current
// user (when logged in) to the handler-supplied data.
func (a *App) render(c *gin.Context, name string, data gin.H) {
	session := a.session(c)
	if data == nil {
		data = gin.H{}
	}
	data["Notices"] = session.Notices()
	if user := session.User(); user.ID != 0 {
		data["CurrentUser"] = user
	}
	c.HTML(http.StatusOK, name, data)
}

// redirectWithNotice queues a one-shot notice and redirects, the shared exit
// path for validation failures and post-action confirmations.
func redirectWithNotice(c *gin.Context, session *auth.Session, severity, message, location string) {
	session.Notify(severity, message)
	c.Redirect(http.StatusFound, location)
}
