package dto

// APIResponse is the uniform envelope returned by every endpoint
type APIResponse struct {
	Success    bool         `json:"success" example:"true"`
	Count      *int         `json:"count,omitempty" example:"25"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Data       interface{}  `json:"data,omitempty"`
	Error      *ErrorDetail `json:"error,omitempty"`
}

// PageRef points at an adjacent page in a paginated collection
type PageRef struct {
	Page  int `json:"page" example:"2"`
	Limit int `json:"limit" example:"25"`
}

// Pagination describes the current page of a collection and its neighbours.
// Next is present only when more results exist beyond the current page,
// Prev only when not on the first page.
type Pagination struct {
	Page  int      `json:"page" example:"1"`
	Limit int      `json:"limit" example:"25"`
	Total int64    `json:"total" example:"120"`
	Next  *PageRef `json:"next,omitempty"`
	Prev  *PageRef `json:"prev,omitempty"`
}

// NewDataResponse wraps a single resource in the uniform envelope
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewListResponse wraps a collection page in the uniform envelope
func NewListResponse(data interface{}, count int, pagination *Pagination) APIResponse {
	return APIResponse{
		Success:    true,
		Count:      &count,
		Pagination: pagination,
		Data:       data,
	}
}
