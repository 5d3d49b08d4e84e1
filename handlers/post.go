package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PostRequest struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

func (a *App) Index(c *gin.Context) {
	posts, err := a.Store.ListPostsByRecency()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	a.render(c, "index.tmpl", gin.H{"Posts": posts})
}

// loadPost resolves the :id path parameter. A malformed or unknown id is a
// 404, reported before any ownership check.
func (a *App) loadPost(c *gin.Context) (models.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return models.Post{}, false
	}
	post, err := a.Store.GetPostByID(id)
	if errors.Is(err, models.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return models.Post{}, false
	}
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return models.Post{}, false
	}
	return post, true
}

func (a *App) PostView(c *gin.Context) {
	post, ok := a.loadPost(c)
	if !ok {
		return
	}
	a.render(c, "view_post.tmpl", gin.H{"Post": post})
}

func (a *App) CreatePostForm(c *gin.Context, _ *models.User) {
	a.render(c, "create_post.tmpl", nil)
}

func (a *App) CreatePost(c *gin.Context, user *models.User) {
	session := a.session(c)
	postReq := PostRequest{}
	_ = c.ShouldBindWith(&postReq, binding.Form)
	if message, ok := validatePost(&postReq); !ok {
		redirectWithNotice(c, session, auth.SeverityError, message, "/create")
		return
	}
	if _, err := a.Store.CreatePost(postReq.Title, postReq.Content, user.ID); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	redirectWithNotice(c, session, auth.SeveritySuccess, "Post created successfully!", "/")
}

func (a *App) EditPostForm(c *gin.Context, user *models.User) {
	post, ok := a.loadPost(c)
	if !ok {
		return
	}
	if post.UserID != user.ID {
		redirectWithNotice(c, a.session(c), auth.SeverityError, "You can only edit your own posts.", "/")
		return
	}
	a.render(c, "edit_post.tmpl", gin.H{"Post": post})
}

func (a *App) EditPost(c *gin.Context, user *models.User) {
	session := a.session(c)
	post, ok := a.loadPost(c)
	if !ok {
		return
	}
	if post.UserID != user.ID {
		redirectWithNotice(c, session, auth.SeverityError, "You can only edit your own posts.", "/")
		return
	}
	postReq := PostRequest{}
	_ = c.ShouldBindWith(&postReq, binding.Form)
	if message, ok := validatePost(&postReq); !ok {
		redirectWithNotice(c, session, auth.SeverityError, message, fmt.Sprintf("/post/%d/edit", post.ID))
		return
	}
	if _, err := a.Store.UpdatePost(post.ID, postReq.Title, postReq.Content); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	redirectWithNotice(c, session, auth.SeveritySuccess, "Post updated successfully!", fmt.Sprintf("/post/%d", post.ID))
}

// DeletePost is POST-only so a plain cross-site link can't trigger it.
func (a *App) DeletePost(c *gin.Context, user *models.User) {
	session := a.session(c)
	post, ok := a.loadPost(c)
	if !ok {
		return
	}
	if post.UserID != user.ID {
		redirectWithNotice(c, session, auth.SeverityError, "You can only delete your own posts.", "/")
		return
	}
	if err := a.Store.DeletePost(post.ID); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	redirectWithNotice(c, session, auth.SeveritySuccess, "Post deleted successfully!", "/")
}

func validatePost(postReq *PostRequest) (string, bool) {
	if postReq.Title == "" || postReq.Content == "" {
		return "Title and content are required.", false
	}
	// The bound is in characters, matching the title column, not bytes.
	if utf8.RuneCountInString(postReq.Title) > models.TitleMaxLength {
		return "Title is too long.", false
	}
	return "", true
}
