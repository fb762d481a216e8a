// Package endpoint maps logical operation names to HRMS API paths.
//
// Static entries are literal paths. Parameterized entries interpolate their
// arguments with percent-encoding so identifiers containing '/', spaces or
// other reserved characters cannot alter the route shape.
package endpoint

import (
	"fmt"
	"net/url"
	"strings"
)

// Name identifies a logical API operation.
type Name string

const (
	AuthLogin          Name = "AUTH.LOGIN"
	AuthLogout         Name = "AUTH.LOGOUT"
	AuthForgotPassword Name = "AUTH.FORGOT_PASSWORD"
	AuthResetPassword  Name = "AUTH.RESET_PASSWORD"

	EmployeesList    Name = "EMPLOYEES.LIST"
	EmployeesProfile Name = "EMPLOYEES.PROFILE"
	EmployeesGetByID Name = "EMPLOYEES.GET_BY_ID"
	EmployeesUpdate  Name = "EMPLOYEES.UPDATE"

	AttendanceCheckIn          Name = "ATTENDANCE.CHECK_IN"
	AttendanceCheckOut         Name = "ATTENDANCE.CHECK_OUT"
	AttendanceToday            Name = "ATTENDANCE.TODAY"
	AttendanceRecords          Name = "ATTENDANCE.RECORDS"
	AttendanceOverview         Name = "ATTENDANCE.OVERVIEW"
	AttendanceEmployee         Name = "ATTENDANCE.EMPLOYEE"
	AttendanceMissingCheckouts Name = "ATTENDANCE.MISSING_CHECKOUTS"

	LeavesList         Name = "LEAVES.LIST"
	LeavesRequest      Name = "LEAVES.REQUEST"
	LeavesUpdateStatus Name = "LEAVES.UPDATE_STATUS"
	LeavesBalance      Name = "LEAVES.BALANCE"

	RegularizationsList    Name = "REGULARIZATIONS.LIST"
	RegularizationsRequest Name = "REGULARIZATIONS.REQUEST"
	RegularizationsReview  Name = "REGULARIZATIONS.REVIEW"

	TicketsList         Name = "TICKETS.LIST"
	TicketsCreate       Name = "TICKETS.CREATE"
	TicketsGetByID      Name = "TICKETS.GET_BY_ID"
	TicketsUpdateStatus Name = "TICKETS.UPDATE_STATUS"
	TicketsAddComment   Name = "TICKETS.ADD_COMMENT"

	TaskReportsList     Name = "TASK_REPORTS.LIST"
	TaskReportsOverview Name = "TASK_REPORTS.OVERVIEW"
	TaskReportsEmployee Name = "TASK_REPORTS.EMPLOYEE"
	TaskReportsSubmit   Name = "TASK_REPORTS.SUBMIT"

	HolidaysList   Name = "HOLIDAYS.LIST"
	HolidaysCreate Name = "HOLIDAYS.CREATE"
	HolidaysDelete Name = "HOLIDAYS.DELETE"

	DepartmentsList   Name = "DEPARTMENTS.LIST"
	DepartmentsCreate Name = "DEPARTMENTS.CREATE"
	DepartmentsUpdate Name = "DEPARTMENTS.UPDATE"
	DepartmentsDelete Name = "DEPARTMENTS.DELETE"

	SettingsGet    Name = "SETTINGS.GET"
	SettingsUpdate Name = "SETTINGS.UPDATE"

	DocumentsList    Name = "DOCUMENTS.LIST"
	DocumentsGetByID Name = "DOCUMENTS.GET_BY_ID"
	DocumentsDelete  Name = "DOCUMENTS.DELETE"

	Ping Name = "PING"
)

type entry struct {
	// path is the literal path for static entries. Always begins with '/'.
	path string

	// build produces the path for parameterized entries. Arguments arrive
	// already percent-encoded.
	build func(params []string) string

	// arity is the number of parameters build expects.
	arity int
}

var registry = map[Name]entry{
	AuthLogin:          {path: "/auth/login"},
	AuthLogout:         {path: "/auth/logout"},
	AuthForgotPassword: {path: "/auth/forgot-password"},
	AuthResetPassword:  {path: "/auth/reset-password"},

	EmployeesList:    {path: "/employees"},
	EmployeesProfile: {path: "/employees/profile"},
	EmployeesGetByID: {arity: 1, build: func(p []string) string {
		return "/employees/" + p[0]
	}},
	EmployeesUpdate: {arity: 1, build: func(p []string) string {
		return "/employees/" + p[0]
	}},

	AttendanceCheckIn:          {path: "/attendance/checkin"},
	AttendanceCheckOut:         {path: "/attendance/checkout"},
	AttendanceToday:            {path: "/attendance/today"},
	AttendanceRecords:          {path: "/hr/attendance"},
	AttendanceOverview:         {path: "/hr/attendance"},
	AttendanceEmployee:         {path: "/hr/attendance"},
	AttendanceMissingCheckouts: {path: "/attendance/missing-checkouts"},

	LeavesList:    {path: "/leaves"},
	LeavesRequest: {path: "/leaves"},
	LeavesUpdateStatus: {arity: 1, build: func(p []string) string {
		return "/leaves/" + p[0] + "/status"
	}},
	LeavesBalance: {path: "/leaves/balance"},

	RegularizationsList:    {path: "/regularizations"},
	RegularizationsRequest: {path: "/regularizations"},
	RegularizationsReview: {arity: 1, build: func(p []string) string {
		return "/regularizations/" + p[0] + "/review"
	}},

	TicketsList:   {path: "/tickets"},
	TicketsCreate: {path: "/tickets"},
	TicketsGetByID: {arity: 1, build: func(p []string) string {
		return "/tickets/" + p[0]
	}},
	TicketsUpdateStatus: {arity: 1, build: func(p []string) string {
		return "/tickets/" + p[0] + "/status"
	}},
	TicketsAddComment: {arity: 1, build: func(p []string) string {
		return "/tickets/" + p[0] + "/comments"
	}},

	TaskReportsList:     {path: "/hr/task-reports"},
	TaskReportsOverview: {path: "/hr/task-reports"},
	TaskReportsEmployee: {path: "/hr/task-reports"},
	TaskReportsSubmit:   {path: "/task-reports"},

	HolidaysList:   {path: "/holidays"},
	HolidaysCreate: {path: "/holidays"},
	HolidaysDelete: {arity: 1, build: func(p []string) string {
		return "/holidays/" + p[0]
	}},

	DepartmentsList:   {path: "/departments"},
	DepartmentsCreate: {path: "/departments"},
	DepartmentsUpdate: {arity: 1, build: func(p []string) string {
		return "/departments/" + p[0]
	}},
	DepartmentsDelete: {arity: 1, build: func(p []string) string {
		return "/departments/" + p[0]
	}},

	SettingsGet:    {path: "/settings"},
	SettingsUpdate: {path: "/settings"},

	DocumentsList:    {path: "/documents"},
	DocumentsGetByID: {arity: 1, build: func(p []string) string {
		return "/documents/" + p[0]
	}},
	DocumentsDelete: {arity: 1, build: func(p []string) string {
		return "/documents/" + p[0]
	}},

	Ping: {path: "/health"},
}

// Resolve returns the API path for a named operation. Parameterized entries
// percent-encode every interpolated segment.
func Resolve(name Name, params ...string) (string, error) {
	e, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("endpoint: unknown operation %q", name)
	}

	if e.build == nil {
		if len(params) != 0 {
			return "", fmt.Errorf("endpoint: %s takes no parameters, got %d", name, len(params))
		}
		return e.path, nil
	}

	if len(params) != e.arity {
		return "", fmt.Errorf("endpoint: %s requires %d parameter(s), got %d", name, e.arity, len(params))
	}

	encoded := make([]string, len(params))
	for i, p := range params {
		if p == "" {
			return "", fmt.Errorf("endpoint: %s parameter %d is empty", name, i)
		}
		encoded[i] = url.PathEscape(p)
	}

	return e.build(encoded), nil
}

// MustResolve resolves an operation and panics on error. Intended for static
// entries whose names are compile-time constants.
func MustResolve(name Name, params ...string) string {
	path, err := Resolve(name, params...)
	if err != nil {
		panic(err)
	}
	return path
}

// Param is a single query-string key/value pair. Using an ordered slice
// instead of a map keeps the serialized order equal to insertion order.
type Param struct {
	Key   string
	Value string
}

// BuildQuery serializes params into a query string without the leading '?'.
// Pairs with empty values are dropped. The operation is idempotent: the same
// input always yields the same output. Key order is insertion order, not
// sorted, so the result is not canonical across differently-ordered inputs.
func BuildQuery(params []Param) string {
	var b strings.Builder
	for _, p := range params {
		if p.Key == "" || p.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// WithQuery appends a serialized query string to path, omitting the '?' when
// every pair was filtered out.
func WithQuery(path string, params []Param) string {
	qs := BuildQuery(params)
	if qs == "" {
		return path
	}
	return path + "?" + qs
}
