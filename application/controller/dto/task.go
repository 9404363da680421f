package dto

import (
	"time"

	"taskdesk.io/entities"
)

type CreateTaskDTO struct {
	Title         string              `json:"title" validate:"required,max=200"`
	Description   string              `json:"description" validate:"required,max=2000"`
	Group         entities.TaskGroup  `json:"group" validate:"required,oneof=Finance HR IT Sales"`
	CurrentStatus entities.TaskStatus `json:"currentStatus" validate:"omitempty,oneof=Pending 'In Progress' Completed 'On Hold'"`
	ScheduledDate time.Time           `json:"scheduledDate" validate:"required"`
	AssignedTo    *string             `json:"assignedTo"`
}

type UpdateTaskDTO struct {
	Title         string              `json:"title" validate:"required,max=200"`
	Description   string              `json:"description" validate:"required,max=2000"`
	Group         entities.TaskGroup  `json:"group" validate:"required,oneof=Finance HR IT Sales"`
	CurrentStatus entities.TaskStatus `json:"currentStatus" validate:"omitempty,oneof=Pending 'In Progress' Completed 'On Hold'"`
	ScheduledDate time.Time           `json:"scheduledDate" validate:"required"`
	AssignedTo    *string             `json:"assignedTo"`
}

type TaskListQuery struct {
	Search    string
	Page      int64
	Limit     int64
	CreatedAt *time.Time
}
