package dto

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ListParams defines the query parameters shared by all list endpoints.
type ListParams struct {
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Search string `form:"search"`
}

// Offset converts the 1-based page into a row offset.
func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ListData wraps a page of items with pagination metadata.
type ListData struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// NewListData builds the list payload for a page of results.
func NewListData(items any, total int64, params ListParams) ListData {
	return ListData{Items: items, Total: total, Page: params.Page, Limit: params.Limit}
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
