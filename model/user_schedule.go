package model

import "time"

/*

UserSchedule is a per-user calendar entry derived from a circle news item

Id: primary key, auto increment
CreatedAt: time when entity is created
UserId: owning user
CircleNewsId: originating news item
Title: mirrors the news title at fan-out time
StartAt / EndAt: both equal to the news date at fan-out time
Memo: mirrors the news content at fan-out time, editable afterwards

Fan-out rows are snapshots: they are not rewritten when the originating news
item is later updated or deleted.

*/
type UserSchedule struct {
	Id           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UserId       uint      `json:"user_id" gorm:"index;not null"`
	CircleNewsId uint      `json:"circlenews_id" gorm:"index;not null"`
	Title        string    `json:"title" gorm:"size:200;not null"`
	StartAt      time.Time `json:"start_at" gorm:"index;not null"`
	EndAt        time.Time `json:"end_at" gorm:"not null"`
	Memo         *string   `json:"memo"`
}
