package services

import (
	"errors"

	"github.com/lib/pq"
	"github.com/sonomandeep/Moon/models"
	"github.com/sonomandeep/Moon/utils"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func contains(list pq.Int64Array, id uint) bool {
	for _, element := range list {
		if uint(element) == id {
			return true
		}
	}
	return false
}

func remove(list pq.Int64Array, id uint) pq.Int64Array {
	filtered := make(pq.Int64Array, 0, len(list))
	for _, element := range list {
		if uint(element) != id {
			filtered = append(filtered, element)
		}
	}
	return filtered
}

// GetUsers returns a page of users with their follower/followed lists
// expanded to summaries, resolved in one batch query.
func (s *UserService) GetUsers(p utils.Pagination) ([]models.UserView, error) {
	var users []models.User
	if err := s.DB.Order("id").Offset(p.Skip).Limit(p.Limit).Find(&users).Error; err != nil {
		return nil, utils.NewInternalServerError()
	}

	ids := make([]int64, 0)
	for _, user := range users {
		ids = append(ids, user.Followers...)
		ids = append(ids, user.Followed...)
	}

	summaries := map[int64]models.UserSummary{}
	if len(ids) > 0 {
		var related []models.User
		if err := s.DB.Where("id IN ?", ids).Find(&related).Error; err != nil {
			return nil, utils.NewInternalServerError()
		}
		for _, user := range related {
			summaries[int64(user.ID)] = user.Summary()
		}
	}

	expand := func(list pq.Int64Array) []models.UserSummary {
		expanded := make([]models.UserSummary, 0, len(list))
		for _, id := range list {
			// Deleted users leave dangling ids behind; skip them.
			if summary, ok := summaries[id]; ok {
				expanded = append(expanded, summary)
			}
		}
		return expanded
	}

	views := make([]models.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, models.UserView{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Followers: expand(user.Followers),
			Followed:  expand(user.Followed),
		})
	}

	return views, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFound("")
	}
	if err != nil {
		return nil, utils.NewInternalServerError()
	}
	return &user, nil
}

// UserPatch carries the fields a PATCH request may touch. Nil fields are
// left untouched.
type UserPatch struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (s *UserService) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Username != nil {
		updates["username"] = *patch.Username
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Password != nil {
		hashed, err := HashPassword(*patch.Password)
		if err != nil {
			return nil, utils.NewInternalServerError()
		}
		updates["password"] = hashed
	}

	if len(updates) > 0 {
		if err := s.DB.Model(user).Updates(updates).Error; err != nil {
			return nil, utils.NewInternalServerError()
		}
	}

	return s.GetUserByID(id)
}

// DeleteUser removes the record. No cascade: posts and edges pointing at the
// user keep their ids.
func (s *UserService) DeleteUser(id uint) error {
	result := s.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return utils.NewInternalServerError()
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFound("")
	}
	return nil
}

// FollowUser adds the directed edge actor->target, writing both sides of
// the adjacency in a single transaction. Duplicate edges are rejected.
func (s *UserService) FollowUser(actorID, targetID uint) error {
	if actorID == targetID {
		return utils.NewBadRequest("You cannot follow yourself")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.First(&target, targetID).Error; err != nil {
			return utils.NewNotFound("")
		}

		if contains(target.Followers, actorID) {
			return utils.NewBadRequest("You are already following this user")
		}

		var actor models.User
		if err := tx.First(&actor, actorID).Error; err != nil {
			return utils.NewNotFound("")
		}

		target.Followers = append(target.Followers, int64(actorID))
		if err := tx.Model(&target).Update("followers", target.Followers).Error; err != nil {
			return utils.NewInternalServerError()
		}

		actor.Followed = append(actor.Followed, int64(targetID))
		if err := tx.Model(&actor).Update("followed", actor.Followed).Error; err != nil {
			return utils.NewInternalServerError()
		}

		return nil
	})
}

// UnfollowUser removes the directed edge actor->target, mirroring FollowUser.
func (s *UserService) UnfollowUser(actorID, targetID uint) error {
	if actorID == targetID {
		return utils.NewBadRequest("You cannot unfollow yourself")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.First(&target, targetID).Error; err != nil {
			return utils.NewNotFound("")
		}

		if !contains(target.Followers, actorID) {
			return utils.NewBadRequest("You are not following this user")
		}

		var actor models.User
		if err := tx.First(&actor, actorID).Error; err != nil {
			return utils.NewNotFound("")
		}

		target.Followers = remove(target.Followers, actorID)
		if err := tx.Model(&target).Update("followers", target.Followers).Error; err != nil {
			return utils.NewInternalServerError()
		}

		actor.Followed = remove(actor.Followed, targetID)
		if err := tx.Model(&actor).Update("followed", actor.Followed).Error; err != nil {
			return utils.NewInternalServerError()
		}

		return nil
	})
}
