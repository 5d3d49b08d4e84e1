package handlers

import (
	"errors"
	"net/http"

	"blog/auth"
	"blog/models"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type RegisterRequest struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Remember string `form:"remember"`
}

func (a *App) RegisterForm(c *gin.Context) {
	if a.session(c).User().ID != 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}
	a.render(c, "register.tmpl", nil)
}

func (a *App) Register(c *gin.Context) {
	session := a.session(c)
	if session.User().ID != 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}
	postReq := RegisterRequest{}
	_ = c.ShouldBindWith(&postReq, binding.Form)
	if postReq.Username == "" || postReq.Email == "" || postReq.Password == "" {
		redirectWithNotice(c, session, auth.SeverityError, "All fields are required.", "/register")
		return
	}
	hash, err := utils.HashPassword(postReq.Password)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	_, err = a.Store.CreateUser(postReq.Username, postReq.Email, hash)
	switch {
	case errors.Is(err, models.ErrDuplicateUsername):
		redirectWithNotice(c, session, auth.SeverityError, "Username already taken.", "/register")
	case errors.Is(err, models.ErrDuplicateEmail):
		redirectWithNotice(c, session, auth.SeverityError, "Email already registered.", "/register")
	case err != nil:
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		redirectWithNotice(c, session, auth.SeveritySuccess, "Registration successful! Please log in.", "/login")
	}
}

func (a *App) LoginForm(c *gin.Context) {
	if a.session(c).User().ID != 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}
	a.render(c, "login.tmpl", nil)
}

func (a *App) Login(c *gin.Context) {
	session := a.session(c)
	if session.User().ID != 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}
	postReq := LoginRequest{}
	_ = c.ShouldBindWith(&postReq, binding.Form)
	user, err := a.Store.FindUserByUsername(postReq.Username)
	// One generic message whether the username or the password was wrong.
	if err != nil || !utils.CheckPassword(postReq.Password, user.PasswordHash) {
		redirectWithNotice(c, session, auth.SeverityError, "Invalid username or password.", "/login")
		return
	}
	session.LoginUser(&user, postReq.Remember != "")
	c.Redirect(http.StatusFound, "/")
}

func (a *App) Logout(c *gin.Context, _ *models.User) {
	a.session(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

// UserPosts is the public author page: all posts by one user, newest first.
func (a *App) UserPosts(c *gin.Context) {
	user, err := a.Store.FindUserByUsername(c.Param("username"))
	if errors.Is(err, models.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	posts, err := a.Store.PostsByAuthor(user.ID)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	a.render(c, "user_posts.tmpl", gin.H{"Author": user, "Posts": posts})
}
