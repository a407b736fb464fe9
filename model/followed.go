package model

import "time"

/*

Followed is a membership relation between a user and a circle

Id: primary key, auto increment
CreatedAt: time when relation is created
UserId: following user
CircleId: followed circle
Date: day the membership started, supplied by the client
IsAdmin: whether the user administers the circle

The composite unique index on (user_id, circle_id) guarantees one row per
membership even under concurrent follow attempts; the handler's pre-check only
exists to return a friendly conflict message.

*/
type Followed struct {
	Id        uint       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time  `json:"created_at"`
	UserId    uint       `json:"user_id" gorm:"uniqueIndex:idx_user_circle;not null"`
	CircleId  uint       `json:"circle_id" gorm:"uniqueIndex:idx_user_circle;not null"`
	Date      *time.Time `json:"date"`
	IsAdmin   bool       `json:"is_admin" gorm:"not null;default:false"`
}
