package interfaces

import (
	"context"
	"errors"

	"conecta_tool/internal/domain/entities"
)

// ErrJoinedShapeUnsupported is returned by ListByProjectID when the
// deployment lacks the denormalized project index; callers fall back to
// per-category activity queries.
var ErrJoinedShapeUnsupported = errors.New("joined board shape unsupported")

// IActivityRepository abstracts DynamoDB persistence for Activity.
//
// Removal is always a soft delete: the row keeps its history and the
// progress engine filters it out.
type IActivityRepository interface {
	Create(ctx context.Context, a entities.Activity) (entities.Activity, error)
	GetByID(ctx context.Context, id string) (entities.Activity, error)
	ListByCategoryID(ctx context.Context, categoryID string) ([]entities.Activity, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Activity, error)
	UpdateStatus(ctx context.Context, id string, status entities.ActivityStatus) (entities.Activity, error)
	SoftDelete(ctx context.Context, id string) (entities.Activity, error)
}
