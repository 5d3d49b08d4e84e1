package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// TitleMaxLength matches the title column bound.
const TitleMaxLength = 100

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string `gorm:"type:varchar(100)"`
	Content   string `gorm:"type:text"`
	UserID    uint64 `gorm:"not null;index"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (s *Store) CreatePost(title, content string, authorID uint64) (Post, error) {
	p := Post{Title: title, Content: content, UserID: authorID}
	return p, s.DB.Create(&p).Error
}

// ListPostsByRecency returns all posts newest-created first, with the author
// eagerly loaded.
func (s *Store) ListPostsByRecency() ([]Post, error) {
	posts := []Post{}
	err := s.DB.Preload("User").Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (s *Store) GetPostByID(id uint64) (Post, error) {
	var p Post
	err := s.DB.Preload("User").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Post{}, ErrNotFound
	}
	return p, err
}

// PostsByAuthor is the explicit form of the author back-reference: all posts
// belonging to one user, newest-created first.
func (s *Store) PostsByAuthor(userID uint64) ([]Post, error) {
	posts := []Post{}
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

// UpdatePost overwrites title and content. UpdatedAt is refreshed by gorm,
// CreatedAt and UserID are never touched.
func (s *Store) UpdatePost(id uint64, title, content string) (Post, error) {
	post, err := s.GetPostByID(id)
	if err != nil {
		return Post{}, err
	}
	err = s.DB.Model(&post).Updates(map[string]interface{}{
		"title":   title,
		"content": content,
	}).Error
	if err != nil {
		return Post{}, err
	}
	// Re-read so the returned post carries the refreshed UpdatedAt.
	return s.GetPostByID(id)
}

func (s *Store) DeletePost(id uint64) error {
	return s.DB.Delete(&Post{}, id).Error
}
