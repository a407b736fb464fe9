package model

import (
	"time"

	"gorm.io/datatypes"
)

/*

Circle is a club/group entity users can follow

Id: primary key, auto increment
CreatedAt: time when entity is created
Name: display name, globally unique
Description: free-form description
Image: optional cover image URL
Tags: list of tag strings stored as a JSON column
SnsLinksX / SnsLinksInstagram / SnsLinksLine: optional SNS profile URLs

Followers: number of followed rows for this circle. This is a derived value
computed with a COUNT at read time and is never stored on the table, so it
cannot drift from the membership rows.

News: news items posted under this circle, "has-many" relation
Followed: all memberships of this circle, "has-many" relation

*/
type Circle struct {
	Id                uint           `json:"id" gorm:"primaryKey"`
	CreatedAt         time.Time      `json:"created_at"`
	Name              string         `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description       *string        `json:"description"`
	Image             *string        `json:"image" gorm:"size:300"`
	Tags              datatypes.JSON `json:"tags"`
	SnsLinksX         *string        `json:"sns_links_x" gorm:"size:300"`
	SnsLinksInstagram *string        `json:"sns_links_instagram" gorm:"size:300"`
	SnsLinksLine      *string        `json:"sns_links_line" gorm:"size:300"`

	Followers int64 `json:"followers" gorm:"-"`

	News     []*CircleNews `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Followed []*Followed   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}
