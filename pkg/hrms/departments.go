package hrms

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// departmentService implements the DepartmentService interface
type departmentService struct {
	client *Client
}

// List retrieves all departments
func (s *departmentService) List(ctx context.Context) ([]*Department, error) {
	path, err := endpoint.Resolve(endpoint.DepartmentsList)
	if err != nil {
		return nil, err
	}

	var result struct {
		Departments []*Department `json:"departments"`
	}

	if err := s.client.do(ctx, string(endpoint.DepartmentsList), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	return result.Departments, nil
}

// Create adds a department
func (s *departmentService) Create(ctx context.Context, params *DepartmentParams) (*Department, error) {
	if params == nil || params.Name == "" {
		return nil, errors.New("department name is required")
	}

	path, err := endpoint.Resolve(endpoint.DepartmentsCreate)
	if err != nil {
		return nil, err
	}

	var result struct {
		Department *Department `json:"department"`
	}

	if err := s.client.do(ctx, string(endpoint.DepartmentsCreate), http.MethodPost, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create department")
	}

	return result.Department, nil
}

// Update modifies a department
func (s *departmentService) Update(ctx context.Context, departmentID string, params *DepartmentParams) (*Department, error) {
	path, err := endpoint.Resolve(endpoint.DepartmentsUpdate, departmentID)
	if err != nil {
		return nil, err
	}

	var result struct {
		Department *Department `json:"department"`
	}

	if err := s.client.do(ctx, string(endpoint.DepartmentsUpdate), http.MethodPut, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update department")
	}

	return result.Department, nil
}

// Delete removes a department
func (s *departmentService) Delete(ctx context.Context, departmentID string) error {
	path, err := endpoint.Resolve(endpoint.DepartmentsDelete, departmentID)
	if err != nil {
		return err
	}

	if err := s.client.do(ctx, string(endpoint.DepartmentsDelete), http.MethodDelete, path, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete department")
	}
	return nil
}
