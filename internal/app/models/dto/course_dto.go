package dto

// CreateCourseRequest is the payload for POST /bootcamps/:id/courses
type CreateCourseRequest struct {
	Title                 string `json:"title" binding:"required" example:"Full Stack Web Development"`
	Description           string `json:"description" binding:"required"`
	Weeks                 int    `json:"weeks" binding:"required,min=1" example:"12"`
	Tuition               int    `json:"tuition" binding:"required,min=0" example:"10000"`
	MinimumSkill          string `json:"minimumSkill" binding:"required,oneof=beginner intermediate advance" example:"intermediate"`
	ScholarshipsAvailable bool   `json:"scholarshipsAvailable"`
}

// UpdateCourseRequest is the payload for PUT /courses/:id
type UpdateCourseRequest struct {
	Title                 *string `json:"title" binding:"omitempty"`
	Description           *string `json:"description" binding:"omitempty"`
	Weeks                 *int    `json:"weeks" binding:"omitempty,min=1"`
	Tuition               *int    `json:"tuition" binding:"omitempty,min=0"`
	MinimumSkill          *string `json:"minimumSkill" binding:"omitempty,oneof=beginner intermediate advance"`
	ScholarshipsAvailable *bool   `json:"scholarshipsAvailable"`
}
