package entities

import (
	"time"

	"taskdesk.io/application/utils"
)

type TaskGroup string

const (
	FinanceGroup TaskGroup = "Finance"
	HRGroup      TaskGroup = "HR"
	ITGroup      TaskGroup = "IT"
	SalesGroup   TaskGroup = "Sales"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskOnHold     TaskStatus = "On Hold"
)

type Task struct {
	Title         string     `bson:"title" json:"title"`
	Description   string     `bson:"description" json:"description"`
	Group         TaskGroup  `bson:"group" json:"group"`
	CurrentStatus TaskStatus `bson:"currentStatus" json:"currentStatus"`
	ScheduledDate time.Time  `bson:"scheduledDate" json:"scheduledDate"`
	AssignedTo    *string    `bson:"assignedTo" json:"assignedTo"`
	WorkspaceID   *string    `bson:"workspaceId" json:"workspaceId"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model Task) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	if model.CurrentStatus == "" {
		model.CurrentStatus = TaskPending
	}
	model.UpdatedAt = now
	return &model
}
