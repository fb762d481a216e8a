package hrms

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// leaveService implements the LeaveService interface
type leaveService struct {
	client *Client
}

// List retrieves leave requests with optional filters
func (s *leaveService) List(ctx context.Context, params *LeaveListParams) (*LeaveList, error) {
	if params == nil {
		params = &LeaveListParams{}
	}

	path, err := endpoint.Resolve(endpoint.LeavesList)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "status", Value: params.Status},
		{Key: "employeeName", Value: params.EmployeeName},
		{Key: "startDate", Value: params.StartDate.String()},
		{Key: "endDate", Value: params.EndDate.String()},
		{Key: "page", Value: pageValue(params.Page)},
		{Key: "limit", Value: limitValue(params.Limit)},
	})

	var result struct {
		Leaves     []*LeaveRequest `json:"leaves"`
		Total      *int            `json:"total"`
		Pagination *Pagination     `json:"pagination"`
	}

	if err := s.client.do(ctx, string(endpoint.LeavesList), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list leaves")
	}

	return &LeaveList{
		Leaves:     result.Leaves,
		Pagination: normalizePagination(result.Total, result.Pagination, params.Page, params.Limit, len(result.Leaves)),
	}, nil
}

// Request submits a leave application
func (s *leaveService) Request(ctx context.Context, params *RequestLeaveParams) (*LeaveRequest, error) {
	if params == nil {
		return nil, errors.New("leave request params are required")
	}
	if params.StartDate.IsZero() || params.EndDate.IsZero() {
		return nil, errors.New("both start and end dates are required")
	}
	if params.Reason == "" {
		return nil, errors.New("reason is required")
	}

	path, err := endpoint.Resolve(endpoint.LeavesRequest)
	if err != nil {
		return nil, err
	}

	var result struct {
		Leave *LeaveRequest `json:"leave"`
	}

	if err := s.client.do(ctx, string(endpoint.LeavesRequest), http.MethodPost, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to request leave")
	}

	return result.Leave, nil
}

// UpdateStatus approves or rejects a request
func (s *leaveService) UpdateStatus(ctx context.Context, leaveID, status, comment string) (*LeaveRequest, error) {
	path, err := endpoint.Resolve(endpoint.LeavesUpdateStatus, leaveID)
	if err != nil {
		return nil, err
	}

	body := map[string]string{
		"status": status,
	}
	if comment != "" {
		body["comment"] = comment
	}

	var result struct {
		Leave *LeaveRequest `json:"leave"`
	}

	if err := s.client.do(ctx, string(endpoint.LeavesUpdateStatus), http.MethodPatch, path, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update leave status")
	}

	return result.Leave, nil
}

// Balance returns the caller's remaining allowance per leave type
func (s *leaveService) Balance(ctx context.Context) (*LeaveBalance, error) {
	path, err := endpoint.Resolve(endpoint.LeavesBalance)
	if err != nil {
		return nil, err
	}

	var result struct {
		Balance *LeaveBalance `json:"balance"`
	}

	if err := s.client.do(ctx, string(endpoint.LeavesBalance), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get leave balance")
	}

	return result.Balance, nil
}
