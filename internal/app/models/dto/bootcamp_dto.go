package dto

// CreateBootcampRequest is the payload for POST /bootcamps
type CreateBootcampRequest struct {
	Name        string   `json:"name" binding:"required,max=50" example:"Devworks Bootcamp"`
	Description string   `json:"description" binding:"required,max=500"`
	Website     *string  `json:"website" binding:"omitempty,url" example:"https://devworks.com"`
	Phone       *string  `json:"phone" binding:"omitempty,max=20" example:"(111) 111-1111"`
	Email       *string  `json:"email" binding:"omitempty,email" example:"enroll@devworks.com"`
	Address     string   `json:"address" binding:"required"`
	Careers     []string `json:"careers" binding:"required,dive,oneof='Web Development' 'Mobile Development' 'UI/UX' 'Data Science' 'Business' 'Other'"`
}

// UpdateBootcampRequest is the payload for PUT /bootcamps/:id.
// All fields optional; zero values mean "leave unchanged".
type UpdateBootcampRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=50"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Website     *string  `json:"website" binding:"omitempty,url"`
	Phone       *string  `json:"phone" binding:"omitempty,max=20"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Address     *string  `json:"address" binding:"omitempty"`
	Careers     []string `json:"careers" binding:"omitempty,dive,oneof='Web Development' 'Mobile Development' 'UI/UX' 'Data Science' 'Business' 'Other'"`
}
