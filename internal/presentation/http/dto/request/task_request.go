package request

// CreateTaskRequest represents a calendar task creation request
type CreateTaskRequest struct {
	ClientID    *string `json:"client_id" binding:"omitempty,uuid"`
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	DueAt       string  `json:"due_at" binding:"required"`
	AllDay      bool    `json:"all_day"`
	Remind      bool    `json:"remind"`
}

// UpdateTaskRequest represents a calendar task update request
type UpdateTaskRequest struct {
	ClientID    *string `json:"client_id" binding:"omitempty,uuid"`
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	DueAt       *string `json:"due_at" binding:"omitempty"`
	AllDay      *bool   `json:"all_day"`
	Remind      *bool   `json:"remind"`
	Done        *bool   `json:"done"`
}

// TaskFilterRequest represents task list filters
type TaskFilterRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// CalendarRangeRequest represents a calendar window query
type CalendarRangeRequest struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}
