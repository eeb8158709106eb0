package services

import (
	"errors"
	"strings"

	"github.com/sonomandeep/Moon/models"
	"github.com/sonomandeep/Moon/utils"
	"gorm.io/gorm"
)

type PostService struct {
	DB *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{DB: db}
}

func (s *PostService) GetPosts(p utils.Pagination) ([]models.Post, error) {
	var posts []models.Post
	if err := s.DB.Order("id").Offset(p.Skip).Limit(p.Limit).Find(&posts).Error; err != nil {
		return nil, utils.NewInternalServerError()
	}
	return posts, nil
}

func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.DB.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFound("Post not found")
	}
	if err != nil {
		return nil, utils.NewInternalServerError()
	}
	return &post, nil
}

func (s *PostService) CreatePost(actorID uint, description string) (*models.Post, error) {
	post := models.Post{
		Description: strings.TrimSpace(description),
		UserID:      actorID,
	}

	if err := s.DB.Create(&post).Error; err != nil {
		return nil, utils.NewInternalServerError()
	}

	return &post, nil
}

// PostPatch carries the fields a PATCH request may touch.
type PostPatch struct {
	Description *string `json:"description"`
}

// UpdatePost applies the patch after checking the actor owns the post.
func (s *PostService) UpdatePost(actorID, postID uint, patch PostPatch) (*models.Post, error) {
	post, err := s.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != actorID {
		return nil, utils.NewUnauthorized("")
	}

	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		if err := s.DB.Model(post).Update("description", description).Error; err != nil {
			return nil, utils.NewInternalServerError()
		}
	}

	return s.GetPostByID(postID)
}

func (s *PostService) DeletePost(actorID, postID uint) error {
	post, err := s.GetPostByID(postID)
	if err != nil {
		return err
	}

	if post.UserID != actorID {
		return utils.NewUnauthorized("")
	}

	if err := s.DB.Delete(post).Error; err != nil {
		return utils.NewInternalServerError()
	}

	return nil
}

// LikePost appends the actor to the likers list. Repeated likes by the same
// user are not deduplicated.
func (s *PostService) LikePost(actorID, postID uint) error {
	post, err := s.GetPostByID(postID)
	if err != nil {
		return err
	}

	post.Likes = append(post.Likes, int64(actorID))
	if err := s.DB.Model(post).Update("likes", post.Likes).Error; err != nil {
		return utils.NewInternalServerError()
	}

	return nil
}
