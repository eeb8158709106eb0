package models

import (
	"time"

	"github.com/lib/pq"
)

// User carries the follow graph redundantly on both sides: "A follows B"
// means B.Followers contains A and A.Followed contains B. Both arrays are
// always written together inside one transaction.
type User struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Username  string        `gorm:"unique;not null" json:"username"`
	Email     string        `gorm:"unique;not null" json:"email"`
	Password  string        `gorm:"not null" json:"-"`
	JwtToken  string        `json:"-"` // single active session; overwritten on every login
	Followers pq.Int64Array `gorm:"type:bigint[];default:'{}'" json:"followers"`
	Followed  pq.Int64Array `gorm:"type:bigint[];default:'{}'" json:"followed"`
}

// UserSummary is the shape follower/followed lists expand to in listings.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserView struct {
	ID        uint          `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Followers []UserSummary `json:"followers"`
	Followed  []UserSummary `json:"followed"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
