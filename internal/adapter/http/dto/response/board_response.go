package response

import (
	"time"

	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/usecase"
)

type ActivityResponse struct {
	ID             string     `json:"id"`
	CategoryID     string     `json:"category_id"`
	ProjectID      string     `json:"project_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"`
	Assignee       string     `json:"assignee,omitempty"`
	TentativeStart *time.Time `json:"tentative_start,omitempty"`
	TentativeEnd   *time.Time `json:"tentative_end,omitempty"`
	Deleted        bool       `json:"deleted"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromActivity(a entities.Activity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID,
		CategoryID:     a.CategoryID,
		ProjectID:      a.ProjectID,
		Name:           a.Name,
		Description:    a.Description,
		Status:         string(a.Status),
		Assignee:       a.Assignee,
		TentativeStart: a.TentativeStart,
		TentativeEnd:   a.TentativeEnd,
		Deleted:        a.Deleted,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type CategoryResponse struct {
	ID          string             `json:"id"`
	ProjectID   string             `json:"project_id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status"`
	Progress    int                `json:"progress"`
	Activities  []ActivityResponse `json:"activities"`
}

type BoardResponse struct {
	ProjectID   string             `json:"project_id"`
	Progress    int                `json:"progress"`
	StatusLabel string             `json:"status_label"`
	Categories  []CategoryResponse `json:"categories"`
}

func FromBoardSummary(s usecase.BoardSummary) BoardResponse {
	out := BoardResponse{
		ProjectID:   s.ProjectID,
		Progress:    s.Progress,
		StatusLabel: string(s.StatusLabel),
		Categories:  make([]CategoryResponse, 0, len(s.Categories)),
	}
	for _, cb := range s.Categories {
		cr := CategoryResponse{
			ID:          cb.Category.ID,
			ProjectID:   cb.Category.ProjectID,
			Name:        cb.Category.Name,
			Description: cb.Category.Description,
			Status:      string(cb.Status),
			Progress:    cb.Progress,
			Activities:  make([]ActivityResponse, 0, len(cb.Category.Activities)),
		}
		for _, a := range cb.Category.Activities {
			cr.Activities = append(cr.Activities, FromActivity(a))
		}
		out.Categories = append(out.Categories, cr)
	}
	return out
}

// ProgressResponse is returned after every activity mutation so list
// views can update their cached project summary without refetching.
type ProgressResponse struct {
	ProjectID   string           `json:"project_id"`
	Progress    int              `json:"progress"`
	StatusLabel string           `json:"status_label"`
	Activity    ActivityResponse `json:"activity"`
}

func FromProgressReport(r usecase.ProgressReport) ProgressResponse {
	return ProgressResponse{
		ProjectID:   r.ProjectID,
		Progress:    r.Progress,
		StatusLabel: string(r.StatusLabel),
		Activity:    FromActivity(r.Activity),
	}
}
