package department

import "context"

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, dept Department) (Department, error)
}
