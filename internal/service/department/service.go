package department

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stafftrack/attendance-backend-go/internal/domain/master/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to generate department id: %w", err)
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		ID:   id.String(),
		Name: req.Name,
	})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return department.DepartmentResponse{ID: created.ID, Name: created.Name}, nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, department.DepartmentResponse{ID: dept.ID, Name: dept.Name})
	}
	return responses, nil
}
