package model

import "time"

// Notification is a per-user message tied to a circle.
type Notification struct {
	Id        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UserId    uint      `json:"user_id" gorm:"index;not null"`
	CircleId  uint      `json:"circle_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	Message   *string   `json:"message"`
}
