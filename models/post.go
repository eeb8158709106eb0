package models

import (
	"time"

	"github.com/lib/pq"
)

type Post struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string        `gorm:"type:varchar(512)" json:"description"`
	UserID      uint          `gorm:"not null" json:"user"`
	Likes       pq.Int64Array `gorm:"type:bigint[];default:'{}'" json:"likes"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
