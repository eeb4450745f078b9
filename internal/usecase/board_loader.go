package usecase

import (
	"context"
	"errors"
	"sort"

	"conecta_tool/internal/domain/entities"
	"conecta_tool/internal/usecase/interfaces"
)

// BoardLoader produces a project's categories with nested activities.
// Two implementations exist: a joined loader (two queries, nested in
// memory) and a naive per-category loader (N+1). Both must satisfy the
// same progress contract over identical data.
type BoardLoader interface {
	Load(ctx context.Context, projectID string) ([]entities.Category, error)
}

// JoinedBoardLoader fetches categories and the project's full activity
// set in two queries and nests them by category. It requires the
// denormalized project index on activities.
type JoinedBoardLoader struct {
	categories interfaces.ICategoryRepository
	activities interfaces.IActivityRepository
}

func NewJoinedBoardLoader(categories interfaces.ICategoryRepository, activities interfaces.IActivityRepository) *JoinedBoardLoader {
	return &JoinedBoardLoader{categories: categories, activities: activities}
}

func (l *JoinedBoardLoader) Load(ctx context.Context, projectID string) ([]entities.Category, error) {
	cats, err := l.categories.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	acts, err := l.activities.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]entities.Activity, len(cats))
	for _, a := range acts {
		byCategory[a.CategoryID] = append(byCategory[a.CategoryID], a)
	}
	for i := range cats {
		cats[i].Activities = byCategory[cats[i].ID]
	}
	sortBoard(cats)
	return cats, nil
}

// PerCategoryBoardLoader is the fallback path: one activity query per
// category.
type PerCategoryBoardLoader struct {
	categories interfaces.ICategoryRepository
	activities interfaces.IActivityRepository
}

func NewPerCategoryBoardLoader(categories interfaces.ICategoryRepository, activities interfaces.IActivityRepository) *PerCategoryBoardLoader {
	return &PerCategoryBoardLoader{categories: categories, activities: activities}
}

func (l *PerCategoryBoardLoader) Load(ctx context.Context, projectID string) ([]entities.Category, error) {
	cats, err := l.categories.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for i := range cats {
		acts, err := l.activities.ListByCategoryID(ctx, cats[i].ID)
		if err != nil {
			return nil, err
		}
		cats[i].Activities = acts
	}
	sortBoard(cats)
	return cats, nil
}

// FallbackBoardLoader tries the joined shape first and degrades to the
// per-category path when the deployment does not support it.
type FallbackBoardLoader struct {
	joined      BoardLoader
	perCategory BoardLoader
}

func NewFallbackBoardLoader(joined, perCategory BoardLoader) *FallbackBoardLoader {
	return &FallbackBoardLoader{joined: joined, perCategory: perCategory}
}

func (l *FallbackBoardLoader) Load(ctx context.Context, projectID string) ([]entities.Category, error) {
	cats, err := l.joined.Load(ctx, projectID)
	if err == nil {
		return cats, nil
	}
	if !errors.Is(err, interfaces.ErrJoinedShapeUnsupported) {
		return nil, err
	}
	return l.perCategory.Load(ctx, projectID)
}

// sortBoard fixes the display order: categories by creation then ID,
// activities inside each category by ID.
func sortBoard(cats []entities.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		if !cats[i].CreatedAt.Equal(cats[j].CreatedAt) {
			return cats[i].CreatedAt.Before(cats[j].CreatedAt)
		}
		return cats[i].ID < cats[j].ID
	})
	for i := range cats {
		acts := cats[i].Activities
		sort.SliceStable(acts, func(a, b int) bool { return acts[a].ID < acts[b].ID })
	}
}
