package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID                    int64        `json:"id" db:"id" example:"7"`
	Title                 string       `json:"title" db:"title" example:"Full Stack Web Development"`
	Description           string       `json:"description" db:"description"`
	Weeks                 int          `json:"weeks" db:"weeks" example:"12"`
	Tuition               int          `json:"tuition" db:"tuition" example:"10000"`
	MinimumSkill          MinimumSkill `json:"minimumSkill" db:"minimum_skill" example:"intermediate"`
	ScholarshipsAvailable bool         `json:"scholarshipsAvailable" db:"scholarships_available"`
	BootcampID            int64        `json:"bootcamp" db:"bootcamp_id" example:"1"` // owning bootcamp reference
	CreatedAt             time.Time    `json:"createdAt" db:"created_at"`

	Bootcamp *BootcampRef `json:"bootcampInfo,omitempty"` // Relation expansion, no db tag
}

// BootcampRef is the restricted bootcamp subset expanded inline on course lists
type BootcampRef struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Devworks Bootcamp"`
	Description string `json:"description"`
}
