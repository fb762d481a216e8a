package hrms

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// attendanceService implements the AttendanceService interface
type attendanceService struct {
	client *Client
}

// CheckIn records today's check-in. A double check-in comes back as an
// expected validation error; see IsExpectedValidation.
func (s *attendanceService) CheckIn(ctx context.Context, params *CheckInParams) (*AttendanceRecord, error) {
	path, err := endpoint.Resolve(endpoint.AttendanceCheckIn)
	if err != nil {
		return nil, err
	}

	var result struct {
		Attendance *AttendanceRecord `json:"attendance"`
	}

	if err := s.client.do(ctx, string(endpoint.AttendanceCheckIn), http.MethodPost, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to check in")
	}

	return result.Attendance, nil
}

// CheckOut records today's check-out
func (s *attendanceService) CheckOut(ctx context.Context, params *CheckOutParams) (*AttendanceRecord, error) {
	path, err := endpoint.Resolve(endpoint.AttendanceCheckOut)
	if err != nil {
		return nil, err
	}

	var result struct {
		Attendance *AttendanceRecord `json:"attendance"`
	}

	if err := s.client.do(ctx, string(endpoint.AttendanceCheckOut), http.MethodPost, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to check out")
	}

	return result.Attendance, nil
}

// Today returns the caller's attendance record for today
func (s *attendanceService) Today(ctx context.Context) (*AttendanceRecord, error) {
	path, err := endpoint.Resolve(endpoint.AttendanceToday)
	if err != nil {
		return nil, err
	}

	var result struct {
		Attendance *AttendanceRecord `json:"attendance"`
	}

	if err := s.client.do(ctx, string(endpoint.AttendanceToday), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get today's attendance")
	}

	return result.Attendance, nil
}

// Records retrieves filtered attendance records
func (s *attendanceService) Records(ctx context.Context, params *ListParams, employeeName string) (*AttendanceList, error) {
	if params == nil {
		params = &ListParams{}
	}

	path, err := endpoint.Resolve(endpoint.AttendanceRecords)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "operation", Value: "records"},
		{Key: "startDate", Value: params.StartDate.String()},
		{Key: "endDate", Value: params.EndDate.String()},
		{Key: "employeeName", Value: employeeName},
		{Key: "page", Value: pageValue(params.Page)},
		{Key: "limit", Value: limitValue(params.Limit)},
	})

	var result struct {
		Records    []*AttendanceRecord `json:"records"`
		Total      *int                `json:"total"`
		Pagination *Pagination         `json:"pagination"`
	}

	if err := s.client.do(ctx, string(endpoint.AttendanceRecords), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get attendance records")
	}

	return &AttendanceList{
		Records:    result.Records,
		Pagination: normalizePagination(result.Total, result.Pagination, params.Page, params.Limit, len(result.Records)),
	}, nil
}

// Overview returns the team-wide summary for a date
func (s *attendanceService) Overview(ctx context.Context, date Date) (*AttendanceOverview, error) {
	path, err := endpoint.Resolve(endpoint.AttendanceOverview)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "operation", Value: "overview"},
		{Key: "date", Value: date.String()},
	})

	var result struct {
		Overview *AttendanceOverview `json:"overview"`
	}

	if err := s.client.do(ctx, string(endpoint.AttendanceOverview), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get attendance overview")
	}

	return result.Overview, nil
}

// EmployeeSummary returns one employee's analysis over a date range
func (s *attendanceService) EmployeeSummary(ctx context.Context, employeeID string, start, end Date) (*EmployeeAttendanceSummary, error) {
	if employeeID == "" {
		return nil, errors.New("employee ID is required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, errors.New("both start and end dates are required")
	}

	path, err := endpoint.Resolve(endpoint.AttendanceEmployee)
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
		Summary *EmployeeAttendanceSummary `json:"summary"`
	}

	if err := s.client.do(ctx, string(endpoint.AttendanceEmployee), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get employee attendance")
	}

	return result.Summary, nil
}

// MissingCheckouts lists records with a check-in but no check-out
func (s *attendanceService) MissingCheckouts(ctx context.Context) ([]*AttendanceRecord, error) {
	path, err := endpoint.Resolve(endpoint.AttendanceMissingCheckouts)
	if err != nil {
		return nil, err
	}

	var result struct {
		Records []*AttendanceRecord `json:"records"`
	}

	if err := s.client.do(ctx, string(endpoint.AttendanceMissingCheckouts), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get missing checkouts")
	}

	return result.Records, nil
}
