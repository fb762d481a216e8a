package hrms

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// employeeService implements the EmployeeService interface
type employeeService struct {
	client *Client
}

// List retrieves a directory page
func (s *employeeService) List(ctx context.Context, params *ListParams, search string) (*EmployeeList, error) {
	if params == nil {
		params = &ListParams{}
	}

	path, err := endpoint.Resolve(endpoint.EmployeesList)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "page", Value: pageValue(params.Page)},
		{Key: "limit", Value: limitValue(params.Limit)},
		{Key: "search", Value: search},
	})

	var result struct {
		Employees  []*Employee `json:"employees"`
		Total      *int        `json:"total"`
		Pagination *Pagination `json:"pagination"`
	}

	if err := s.client.do(ctx, string(endpoint.EmployeesList), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return &EmployeeList{
		Employees:  result.Employees,
		Pagination: normalizePagination(result.Total, result.Pagination, params.Page, params.Limit, len(result.Employees)),
	}, nil
}

// Get retrieves a single employee by ID
func (s *employeeService) Get(ctx context.Context, employeeID string) (*Employee, error) {
	path, err := endpoint.Resolve(endpoint.EmployeesGetByID, employeeID)
	if err != nil {
		return nil, err
	}

	var result struct {
		Employee *Employee `json:"employee"`
	}

	if err := s.client.do(ctx, string(endpoint.EmployeesGetByID), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get employee")
	}

	return result.Employee, nil
}

// Profile retrieves the authenticated user's own record
func (s *employeeService) Profile(ctx context.Context) (*Employee, error) {
	path, err := endpoint.Resolve(endpoint.EmployeesProfile)
	if err != nil {
		return nil, err
	}

	var result struct {
		Employee *Employee `json:"employee"`
	}

	if err := s.client.do(ctx, string(endpoint.EmployeesProfile), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return result.Employee, nil
}

// Update modifies an employee record
func (s *employeeService) Update(ctx context.Context, employeeID string, params *UpdateEmployeeParams) (*Employee, error) {
	path, err := endpoint.Resolve(endpoint.EmployeesUpdate, employeeID)
	if err != nil {
		return nil, err
	}

	var result struct {
		Employee *Employee `json:"employee"`
	}

	if err := s.client.do(ctx, string(endpoint.EmployeesUpdate), http.MethodPut, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update employee")
	}

	return result.Employee, nil
}

// pageValue serializes a page number, defaulting to the first page.
func pageValue(page int) string {
	if page <= 0 {
		page = 1
	}
	return strconv.Itoa(page)
}

// limitValue serializes a page size; zero means server default and is
// omitted from the query string.
func limitValue(limit int) string {
	if limit <= 0 {
		return ""
	}
	return strconv.Itoa(limit)
}
