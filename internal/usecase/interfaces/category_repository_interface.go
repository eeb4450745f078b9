package interfaces

import (
	"context"

	"conecta_tool/internal/domain/entities"
)

// ICategoryRepository abstracts DynamoDB persistence for Category.
// Categories are returned without activities; the board loaders decide
// how activities get attached.
type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Category, error)
}
