package request

import (
	"time"

	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/usecase"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateActivityRequest struct {
	Name           string     `json:"name" binding:"required"`
	Description    string     `json:"description"`
	Assignee       string     `json:"assignee"`
	TentativeStart *time.Time `json:"tentative_start"`
	TentativeEnd   *time.Time `json:"tentative_end"`
}

func (r CreateActivityRequest) ToInput() usecase.NewActivityInput {
	return usecase.NewActivityInput{
		Name:           r.Name,
		Description:    r.Description,
		Assignee:       r.Assignee,
		TentativeStart: r.TentativeStart,
		TentativeEnd:   r.TentativeEnd,
	}
}

// UpdateActivityStatusRequest carries a kanban column move.
type UpdateActivityStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateActivityStatusRequest) ResolveStatus() entities.ActivityStatus {
	return entities.ActivityStatus(r.Status)
}
