package model

import "time"

/*

CircleNews is a news item posted under a circle

Id: primary key, auto increment
CreatedAt: time when entity is created
CircleId: owning circle, "belongs-to" relation
Title: news title in plain text
Date: day the news is about, also used as the start/end of fanned-out schedules
Content: optional body in plain text
HasPhoto: whether the item carries a photo
PhotoUrl: optional photo URL

Creating a news item fans one UserSchedule out to every follower of the circle
inside the same transaction.

*/
type CircleNews struct {
	Id        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	CircleId  uint      `json:"circle_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Date      time.Time `json:"date" gorm:"index;not null"`
	Content   *string   `json:"content"`
	HasPhoto  bool      `json:"has_photo" gorm:"not null;default:false"`
	PhotoUrl  *string   `json:"photo_url" gorm:"size:300"`
}
