package hrms

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// taskReportService implements the TaskReportService interface
type taskReportService struct {
	client *Client
}

// List retrieves task reports for a date range
func (s *taskReportService) List(ctx context.Context, params *ListParams) (*TaskReportList, error) {
	if params == nil {
		params = &ListParams{}
	}

	path, err := endpoint.Resolve(endpoint.TaskReportsList)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "operation", Value: "reports"},
		{Key: "startDate", Value: params.StartDate.String()},
		{Key: "endDate", Value: params.EndDate.String()},
		{Key: "page", Value: pageValue(params.Page)},
		{Key: "limit", Value: limitValue(params.Limit)},
	})

	var result struct {
		Reports    []*TaskReport `json:"reports"`
		Total      *int          `json:"total"`
		Pagination *Pagination   `json:"pagination"`
	}

	if err := s.client.do(ctx, string(endpoint.TaskReportsList), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list task reports")
	}

	return &TaskReportList{
		Reports:    result.Reports,
		Pagination: normalizePagination(result.Total, result.Pagination, params.Page, params.Limit, len(result.Reports)),
	}, nil
}

// Overview summarizes submission compliance for a period
func (s *taskReportService) Overview(ctx context.Context, period string) (*TaskReportOverview, error) {
	if period == "" {
		period = "month"
	}

	path, err := endpoint.Resolve(endpoint.TaskReportsOverview)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "operation", Value: "overview"},
		{Key: "period", Value: period},
	})

	var result struct {
		Overview *TaskReportOverview `json:"overview"`
	}

	if err := s.client.do(ctx, string(endpoint.TaskReportsOverview), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get task reports overview")
	}

	return result.Overview, nil
}

// ForEmployee retrieves one employee's reports over a date range
func (s *taskReportService) ForEmployee(ctx context.Context, employeeID string, start, end Date) ([]*TaskReport, error) {
	if employeeID == "" {
		return nil, errors.New("employee ID is required")
	}

	path, err := endpoint.Resolve(endpoint.TaskReportsEmployee)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "operation", Value: "employee"},
		{Key: "employeeId", Value: employeeID},
		{Key: "startDate", Value: start.String()},
		{Key: "endDate", Value: end.String()},
	})

	var result struct {
		Reports []*TaskReport `json:"reports"`
	}

	if err := s.client.do(ctx, string(endpoint.TaskReportsEmployee), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get employee task reports")
	}

	return result.Reports, nil
}

// Submit files the caller's daily report
func (s *taskReportService) Submit(ctx context.Context, params *SubmitTaskReportParams) (*TaskReport, error) {
	if params == nil {
		return nil, errors.New("task report params are required")
	}
	if params.Summary == "" {
		return nil, errors.New("summary is required")
	}

	path, err := endpoint.Resolve(endpoint.TaskReportsSubmit)
	if err != nil {
		return nil, err
	}

	var result struct {
		Report *TaskReport `json:"report"`
	}

	if err := s.client.do(ctx, string(endpoint.TaskReportsSubmit), http.MethodPost, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to submit task report")
	}

	return result.Report, nil
}
