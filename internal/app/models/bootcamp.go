package models

import (
	"time"
)

// Bootcamp defines the bootcamp model based on the 'bootcamps' table
type Bootcamp struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Devworks Bootcamp"`
	Slug        string    `json:"slug" db:"slug" example:"devworks-bootcamp"`
	Description string    `json:"description" db:"description"`
	Website     *string   `json:"website,omitempty" db:"website" example:"https://devworks.com"`
	Phone       *string   `json:"phone,omitempty" db:"phone" example:"(111) 111-1111"`
	Email       *string   `json:"email,omitempty" db:"email" example:"enroll@devworks.com"`
	Address     string    `json:"address" db:"address" example:"233 Bay State Rd Boston MA 02215"`
	Latitude    *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64  `json:"longitude,omitempty" db:"longitude"`
	Careers     []string  `json:"careers" db:"careers" example:"Web Development,UI/UX"`
	AverageCost *int      `json:"averageCost,omitempty" db:"average_cost" example:"10000"` // derived from course tuitions
	Photo       *string   `json:"photo,omitempty" db:"photo" example:"photo_1.jpg"`
	UserID      int64     `json:"user" db:"user_id" example:"3"` // owning user reference
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Courses []*Course `json:"courses,omitempty"` // Relation, no db tag
}
