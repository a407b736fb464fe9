package model

import "time"

/*

User is a platform account that can follow circles and receive fan-out schedules

Id: primary key, auto increment
CreatedAt: time when entity is created
Name: display name
Email: contact address, globally unique
Icon: optional avatar URL
LoginId: login identifier, globally unique
LoginPass: bcrypt hash of the password, never serialized

Followed: all circle memberships of this user, "has-many" relation
Schedules: calendar entries fanned out from circle news, "has-many" relation

*/
type User struct {
	Id        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name" gorm:"size:40;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Icon      *string   `json:"icon" gorm:"size:200"`
	LoginId   string    `json:"login_id" gorm:"size:40;uniqueIndex;not null"`
	LoginPass string    `json:"-" gorm:"size:200;not null"`

	Followed  []*Followed     `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Schedules []*UserSchedule `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}
