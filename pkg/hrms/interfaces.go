package hrms

import (
	"context"
)

// AuthService handles authentication and the password-reset workflow
type AuthService interface {
	// Login authenticates and stores the bearer token for later requests
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout invalidates the server session and clears the stored token
	Logout(ctx context.Context) error

	// ForgotPassword starts the password-reset workflow
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword completes the password-reset workflow
	ResetPassword(ctx context.Context, resetToken, newPassword string) error

	// Session returns the current session, or an error when not
	// authenticated
	Session() (*Session, error)
}

// EmployeeService handles the employee directory
type EmployeeService interface {
	// List retrieves a directory page, optionally filtered by search term
	List(ctx context.Context, params *ListParams, search string) (*EmployeeList, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, employeeID string) (*Employee, error)

	// Profile retrieves the authenticated user's own record
	Profile(ctx context.Context) (*Employee, error)

	// Update modifies an employee record
	Update(ctx context.Context, employeeID string, params *UpdateEmployeeParams) (*Employee, error)
}

// AttendanceService handles check-in/out and attendance reporting
type AttendanceService interface {
	// CheckIn records today's check-in
	CheckIn(ctx context.Context, params *CheckInParams) (*AttendanceRecord, error)

	// CheckOut records today's check-out
	CheckOut(ctx context.Context, params *CheckOutParams) (*AttendanceRecord, error)

	// Today returns the caller's attendance record for today
	Today(ctx context.Context) (*AttendanceRecord, error)

	// Records retrieves filtered attendance records (admin/hr)
	Records(ctx context.Context, params *ListParams, employeeName string) (*AttendanceList, error)

	// Overview returns the team-wide summary for a date
	Overview(ctx context.Context, date Date) (*AttendanceOverview, error)

	// EmployeeSummary returns one employee's analysis over a date range
	EmployeeSummary(ctx context.Context, employeeID string, start, end Date) (*EmployeeAttendanceSummary, error)

	// MissingCheckouts lists records with a check-in but no check-out
	MissingCheckouts(ctx context.Context) ([]*AttendanceRecord, error)
}

// LeaveService handles leave requests
type LeaveService interface {
	// List retrieves leave requests with optional status/employee filters
	List(ctx context.Context, params *LeaveListParams) (*LeaveList, error)

	// Request submits a leave application
	Request(ctx context.Context, params *RequestLeaveParams) (*LeaveRequest, error)

	// UpdateStatus approves or rejects a request (admin/hr)
	UpdateStatus(ctx context.Context, leaveID, status, comment string) (*LeaveRequest, error)

	// Balance returns the caller's remaining allowance per leave type
	Balance(ctx context.Context) (*LeaveBalance, error)
}

// RegularizationService handles attendance-correction requests
type RegularizationService interface {
	// List retrieves regularization requests, optionally filtered by status
	List(ctx context.Context, params *ListParams, status string) (*RegularizationList, error)

	// Request submits a regularization
	Request(ctx context.Context, params *RequestRegularizationParams) (*Regularization, error)

	// Review approves or rejects a request (admin/hr)
	Review(ctx context.Context, regularizationID, status, comment string) (*Regularization, error)
}

// TicketService handles help-desk tickets
type TicketService interface {
	// List retrieves tickets, optionally filtered by status
	List(ctx context.Context, params *ListParams, status string) (*TicketList, error)

	// Create opens a ticket
	Create(ctx context.Context, params *CreateTicketParams) (*Ticket, error)

	// Get retrieves a ticket with its comment thread
	Get(ctx context.Context, ticketID string) (*Ticket, error)

	// UpdateStatus transitions a ticket
	UpdateStatus(ctx context.Context, ticketID, status string) (*Ticket, error)

	// AddComment appends to the ticket thread
	AddComment(ctx context.Context, ticketID, body string) (*TicketComment, error)
}

// TaskReportService handles daily work reports
type TaskReportService interface {
	// List retrieves task reports for a date range
	List(ctx context.Context, params *ListParams) (*TaskReportList, error)

	// Overview summarizes submission compliance for a period
	Overview(ctx context.Context, period string) (*TaskReportOverview, error)

	// ForEmployee retrieves one employee's reports over a date range
	ForEmployee(ctx context.Context, employeeID string, start, end Date) ([]*TaskReport, error)

	// Submit files the caller's daily report
	Submit(ctx context.Context, params *SubmitTaskReportParams) (*TaskReport, error)
}

// HolidayService administers the holiday calendar
type HolidayService interface {
	// List retrieves the calendar for a year (0 means the current year)
	List(ctx context.Context, year int) ([]*Holiday, error)

	// Create adds a holiday
	Create(ctx context.Context, params *CreateHolidayParams) (*Holiday, error)

	// Delete removes a holiday
	Delete(ctx context.Context, holidayID string) error
}

// DepartmentService administers departments
type DepartmentService interface {
	// List retrieves all departments
	List(ctx context.Context) ([]*Department, error)

	// Create adds a department
	Create(ctx context.Context, params *DepartmentParams) (*Department, error)

	// Update modifies a department
	Update(ctx context.Context, departmentID string, params *DepartmentParams) (*Department, error)

	// Delete removes a department
	Delete(ctx context.Context, departmentID string) error
}

// SettingsService administers organization-wide settings
type SettingsService interface {
	// Get retrieves current settings
	Get(ctx context.Context) (*Settings, error)

	// Update replaces settings
	Update(ctx context.Context, settings *Settings) (*Settings, error)
}

// DocumentService manages stored document metadata
type DocumentService interface {
	// List retrieves document records, optionally scoped to an employee
	List(ctx context.Context, params *ListParams, employeeID string) (*DocumentList, error)

	// Get retrieves one document record
	Get(ctx context.Context, documentID string) (*Document, error)

	// Delete removes a document record
	Delete(ctx context.Context, documentID string) error
}
