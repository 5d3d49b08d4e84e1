package handlers

import (
	"blog/auth"

	"github.com/gin-gonic/gin"
)

// Routes attaches every application route to the engine. Routes that mutate
// or expose user-owned state go through the auth.Router guard.
func (a *App) Routes(router *gin.Engine) {
	authRouter := &auth.Router{Base: router, Store: a.Store}

	// Public pages
	router.GET("/", a.Index)
	router.GET("/register", a.RegisterForm)
	router.POST("/register", a.Register)
	router.GET("/login", a.LoginForm)
	router.POST("/login", a.Login)
	router.GET("/post/:id", a.PostView)
	router.GET("/user/:username", a.UserPosts)

	// Authenticated pages
	authRouter.GET("/logout", a.Logout)
	authRouter.GET("/create", a.CreatePostForm)
	authRouter.POST("/create", a.CreatePost)
	authRouter.GET("/post/:id/edit", a.EditPostForm)
	authRouter.POST("/post/:id/edit", a.EditPost)
	authRouter.POST("/post/:id/delete", a.DeletePost)
}
