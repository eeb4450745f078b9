package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/domain/progress"
	"conecta_tool/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProjectID      = errors.New("invalid project id")
	ErrInvalidCategoryID     = errors.New("invalid category id")
	ErrInvalidActivityID     = errors.New("invalid activity id")
	ErrInvalidCategoryName   = errors.New("invalid category name")
	ErrInvalidActivityName   = errors.New("invalid activity name")
	ErrInvalidActivityStatus = errors.New("invalid activity status")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrActivityNotFound      = errors.New("activity not found")
)

// BoardSummary is a project board with every derived aggregate attached.
type BoardSummary struct {
	ProjectID   string
	Progress    int
	StatusLabel entities.ProjectStatusLabel
	Categories  []CategoryBoard
}

type CategoryBoard struct {
	Category entities.Category
	Status   entities.CategoryStatus
	Progress int
}

// ProgressReport is returned after every activity mutation so callers
// can update a cached project summary without refetching the board.
type ProgressReport struct {
	ProjectID   string
	Progress    int
	StatusLabel entities.ProjectStatusLabel
	Activity    entities.Activity
}

// NewActivityInput carries operator-entered activity fields.
type NewActivityInput struct {
	Name           string
	Description    string
	Assignee       string
	TentativeStart *time.Time
	TentativeEnd   *time.Time
}

// IBoardUseCase exposes the project activity board operations.
type IBoardUseCase interface {
	GetBoard(ctx context.Context, projectID string) (BoardSummary, error)
	CreateCategory(ctx context.Context, projectID, name, description string) (entities.Category, error)
	CreateActivity(ctx context.Context, categoryID string, in NewActivityInput) (entities.Activity, error)
	UpdateActivityStatus(ctx context.Context, activityID string, status entities.ActivityStatus) (ProgressReport, error)
	DeleteActivity(ctx context.Context, activityID string) (ProgressReport, error)
}

type BoardUseCase struct {
	loader     BoardLoader
	categories interfaces.ICategoryRepository
	activities interfaces.IActivityRepository
}

var _ IBoardUseCase = (*BoardUseCase)(nil)

func NewBoardUseCase(loader BoardLoader, categories interfaces.ICategoryRepository, activities interfaces.IActivityRepository) *BoardUseCase {
	return &BoardUseCase{loader: loader, categories: categories, activities: activities}
}

func (u *BoardUseCase) GetBoard(ctx context.Context, projectID string) (BoardSummary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return BoardSummary{}, ErrInvalidProjectID
	}

	cats, err := u.loader.Load(ctx, projectID)
	if err != nil {
		return BoardSummary{}, err
	}
	return summarize(projectID, cats), nil
}

func (u *BoardUseCase) CreateCategory(ctx context.Context, projectID, name, description string) (entities.Category, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Category{}, ErrInvalidProjectID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}

	now := time.Now().UTC()
	c := entities.Category{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.categories.Create(ctx, c)
}

func (u *BoardUseCase) CreateActivity(ctx context.Context, categoryID string, in NewActivityInput) (entities.Activity, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return entities.Activity{}, ErrInvalidCategoryID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Activity{}, ErrInvalidActivityName
	}

	cat, err := u.categories.GetByID(ctx, categoryID)
	if err != nil {
		return entities.Activity{}, err
	}
	if cat.ID == "" {
		return entities.Activity{}, ErrCategoryNotFound
	}

	now := time.Now().UTC()
	a := entities.Activity{
		ID:             uuid.NewString(),
		CategoryID:     cat.ID,
		ProjectID:      cat.ProjectID,
		Name:           name,
		Description:    strings.TrimSpace(in.Description),
		Status:         entities.ActivityStatusPorIniciar,
		Assignee:       strings.TrimSpace(in.Assignee),
		TentativeStart: in.TentativeStart,
		TentativeEnd:   in.TentativeEnd,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.activities.Create(ctx, a)
}

// UpdateActivityStatus applies the optimistic in-place update, persists
// the change, and confirms or rolls back against the persisted outcome.
// The returned report carries the recomputed project progress and status
// label; on persistence failure the rollback restores the prior local
// state and the error is surfaced once (no retry).
func (u *BoardUseCase) UpdateActivityStatus(ctx context.Context, activityID string, status entities.ActivityStatus) (ProgressReport, error) {
	activityID = strings.TrimSpace(activityID)
	if activityID == "" {
		return ProgressReport{}, ErrInvalidActivityID
	}
	if !entities.ValidActivityStatus(status) {
		return ProgressReport{}, ErrInvalidActivityStatus
	}

	a, err := u.activities.GetByID(ctx, activityID)
	if err != nil {
		return ProgressReport{}, err
	}
	if a.ID == "" {
		return ProgressReport{}, ErrActivityNotFound
	}

	cats, err := u.loader.Load(ctx, a.ProjectID)
	if err != nil {
		return ProgressReport{}, err
	}

	var report ProgressReport
	tracker := progress.NewTracker(a.ProjectID, cats, func(projectID string, p int, label entities.ProjectStatusLabel) {
		report.ProjectID = projectID
		report.Progress = p
		report.StatusLabel = label
	})

	tok, err := tracker.BeginStatusChange(activityID, status)
	if err != nil {
		return ProgressReport{}, err
	}

	updated, err := u.activities.UpdateStatus(ctx, activityID, status)
	if err != nil {
		tracker.Fail(tok)
		return ProgressReport{}, err
	}
	if updated.ID == "" {
		tracker.Fail(tok)
		return ProgressReport{}, ErrActivityNotFound
	}

	tracker.Confirm(tok)
	report.Activity = updated
	return report, nil
}

// DeleteActivity soft-deletes the activity and reports the recomputed
// aggregates. The delete is persisted first; removal is not optimistic.
func (u *BoardUseCase) DeleteActivity(ctx context.Context, activityID string) (ProgressReport, error) {
	activityID = strings.TrimSpace(activityID)
	if activityID == "" {
		return ProgressReport{}, ErrInvalidActivityID
	}

	deleted, err := u.activities.SoftDelete(ctx, activityID)
	if err != nil {
		return ProgressReport{}, err
	}
	if deleted.ID == "" {
		return ProgressReport{}, ErrActivityNotFound
	}

	cats, err := u.loader.Load(ctx, deleted.ProjectID)
	if err != nil {
		return ProgressReport{}, err
	}

	var report ProgressReport
	tracker := progress.NewTracker(deleted.ProjectID, cats, func(projectID string, p int, label entities.ProjectStatusLabel) {
		report.ProjectID = projectID
		report.Progress = p
		report.StatusLabel = label
	})
	// The reloaded board may already reflect the persisted delete;
	// RemoveActivity is idempotent over the flag either way.
	if err := tracker.RemoveActivity(activityID); err != nil {
		return ProgressReport{}, err
	}
	report.Activity = deleted
	return report, nil
}

func summarize(projectID string, cats []entities.Category) BoardSummary {
	s := BoardSummary{
		ProjectID:  projectID,
		Progress:   progress.ProjectProgress(cats),
		Categories: make([]CategoryBoard, 0, len(cats)),
	}
	s.StatusLabel = progress.ProjectStatusLabel(s.Progress, progress.AnyInProgress(cats))
	for _, c := range cats {
		s.Categories = append(s.Categories, CategoryBoard{
			Category: c,
			Status:   progress.CategoryStatus(c),
			Progress: progress.CategoryProgress(c),
		})
	}
	return s
}
