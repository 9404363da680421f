package dto

type CreateReportDTO struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required,max=200"`
	Type    string `json:"type" validate:"required,max=100"`
	Status  *bool  `json:"status" validate:"required"`
}

type UpdateReportDTO struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required,max=200"`
	Type    string `json:"type" validate:"required,max=100"`
	Status  *bool  `json:"status" validate:"required"`
}
