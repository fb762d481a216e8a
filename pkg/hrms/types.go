package hrms

import (
	"time"
)

// Session represents an authenticated session
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Pagination is the canonical pagination envelope. The backend exposes two
// competing shapes (a bare total and a nested pagination object); both are
// normalized into this type at the client boundary.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// normalizePagination reconciles the two server envelope shapes. page and
// limit are the values the caller requested; count is the number of items
// actually returned, used as a last-resort total.
func normalizePagination(total *int, pg *Pagination, page, limit, count int) Pagination {
	if page <= 0 {
		page = 1
	}

	if pg != nil {
		out := *pg
		if out.Page == 0 {
			out.Page = page
		}
		if out.Limit == 0 {
			out.Limit = limit
		}
		if out.TotalPages == 0 && out.Limit > 0 {
			out.TotalPages = (out.Total + out.Limit - 1) / out.Limit
		}
		return out
	}

	if total != nil {
		out := Pagination{Page: page, Limit: limit, Total: *total}
		if limit > 0 {
			out.TotalPages = (*total + limit - 1) / limit
		}
		return out
	}

	// Neither shape present: the endpoint is unpaginated.
	return Pagination{Page: page, Limit: limit, Total: count, TotalPages: 1}
}

// ListParams are the common pagination and date-range query parameters every
// list endpoint accepts.
type ListParams struct {
	Page      int
	Limit     int
	StartDate Date
	EndDate   Date
}

// Employee represents a directory entry
type Employee struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Department  string     `json:"department"`
	Designation string     `json:"designation"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	JoiningDate Date       `json:"joiningDate"`
	Address     string     `json:"address,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

// EmployeeList is a paginated directory page
type EmployeeList struct {
	Employees  []*Employee `json:"employees"`
	Pagination Pagination  `json:"pagination"`
}

// UpdateEmployeeParams carries the mutable directory fields. Nil fields are
// left unchanged.
type UpdateEmployeeParams struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Status      *string `json:"status,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// AttendanceRecord is one day's attendance for one employee
type AttendanceRecord struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	EmployeeName  string     `json:"employeeName"`
	Date          Date       `json:"date"`
	CheckInTime   *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime  *time.Time `json:"checkOutTime,omitempty"`
	Status        string     `json:"status"`
	WorkHours     float64    `json:"workHours"`
	Location      string     `json:"location,omitempty"`
	IsRegularized bool       `json:"isRegularized"`
}

// AttendanceList is a paginated set of attendance records
type AttendanceList struct {
	Records    []*AttendanceRecord `json:"records"`
	Pagination Pagination          `json:"pagination"`
}

// AttendanceOverview is the team-wide daily summary
type AttendanceOverview struct {
	Date         Date `json:"date"`
	Present      int  `json:"present"`
	Absent       int  `json:"absent"`
	OnLeave      int  `json:"onLeave"`
	NotCheckedIn int  `json:"notCheckedIn"`
	Total        int  `json:"total"`
}

// EmployeeAttendanceSummary is the per-employee analysis over a date range
type EmployeeAttendanceSummary struct {
	EmployeeID   string              `json:"employeeId"`
	EmployeeName string              `json:"employeeName"`
	PresentDays  int                 `json:"presentDays"`
	AbsentDays   int                 `json:"absentDays"`
	LeaveDays    int                 `json:"leaveDays"`
	AvgWorkHours float64             `json:"avgWorkHours"`
	Records      []*AttendanceRecord `json:"records,omitempty"`
}

// CheckInParams for attendance check-in
type CheckInParams struct {
	Location string `json:"location,omitempty"`
	Note     string `json:"note,omitempty"`
}

// CheckOutParams for attendance check-out
type CheckOutParams struct {
	Note string `json:"note,omitempty"`
}

// LeaveRequest represents a leave application
type LeaveRequest struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	EmployeeName  string    `json:"employeeName"`
	Type          string    `json:"type"`
	StartDate     Date      `json:"startDate"`
	EndDate       Date      `json:"endDate"`
	Days          float64   `json:"days"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	ReviewedBy    string    `json:"reviewedBy,omitempty"`
	ReviewComment string    `json:"reviewComment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// LeaveList is a paginated set of leave requests
type LeaveList struct {
	Leaves     []*LeaveRequest `json:"leaves"`
	Pagination Pagination      `json:"pagination"`
}

// LeaveListParams filter the leave listing
type LeaveListParams struct {
	ListParams
	Status       string
	EmployeeName string
}

// RequestLeaveParams creates a leave request
type RequestLeaveParams struct {
	Type      string `json:"type"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
	Reason    string `json:"reason"`
	HalfDay   bool   `json:"halfDay,omitempty"`
}

// LeaveBalance is the remaining allowance per leave type
type LeaveBalance struct {
	EmployeeID string             `json:"employeeId"`
	Balances   map[string]float64 `json:"balances"`
}

// Regularization is a request to correct a past attendance record
type Regularization struct {
	ID                string    `json:"id"`
	EmployeeID        string    `json:"employeeId"`
	EmployeeName      string    `json:"employeeName"`
	Date              Date      `json:"date"`
	RequestedCheckIn  string    `json:"requestedCheckIn"`
	RequestedCheckOut string    `json:"requestedCheckOut"`
	Reason            string    `json:"reason"`
	Status            string    `json:"status"`
	ReviewedBy        string    `json:"reviewedBy,omitempty"`
	ReviewComment     string    `json:"reviewComment,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// RegularizationList is a paginated set of regularization requests
type RegularizationList struct {
	Regularizations []*Regularization `json:"regularizations"`
	Pagination      Pagination        `json:"pagination"`
}

// RequestRegularizationParams creates a regularization request
type RequestRegularizationParams struct {
	Date              Date   `json:"date"`
	RequestedCheckIn  string `json:"requestedCheckIn"`
	RequestedCheckOut string `json:"requestedCheckOut"`
	Reason            string `json:"reason"`
}

// Ticket is a help-desk ticket
type Ticket struct {
	ID          string           `json:"id"`
	Subject     string           `json:"subject"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Priority    string           `json:"priority"`
	Status      string           `json:"status"`
	CreatedBy   string           `json:"createdBy"`
	AssignedTo  string           `json:"assignedTo,omitempty"`
	Comments    []*TicketComment `json:"comments,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// TicketComment is one message on a ticket thread
type TicketComment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// TicketList is a paginated set of tickets
type TicketList struct {
	Tickets    []*Ticket  `json:"tickets"`
	Pagination Pagination `json:"pagination"`
}

// CreateTicketParams opens a new ticket
type CreateTicketParams struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority,omitempty"`
}

// TaskReport is a daily work summary
type TaskReport struct {
	ID           string      `json:"id"`
	EmployeeID   string      `json:"employeeId"`
	EmployeeName string      `json:"employeeName"`
	Date         Date        `json:"date"`
	Summary      string      `json:"summary"`
	Tasks        []*TaskItem `json:"tasks,omitempty"`
	TotalHours   float64     `json:"totalHours"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// TaskItem is one line of a task report
type TaskItem struct {
	Title      string  `json:"title"`
	Status     string  `json:"status"`
	HoursSpent float64 `json:"hoursSpent"`
}

// TaskReportList is a paginated set of task reports
type TaskReportList struct {
	Reports    []*TaskReport `json:"reports"`
	Pagination Pagination    `json:"pagination"`
}

// TaskReportOverview summarizes submission compliance for a period
type TaskReportOverview struct {
	Period         string  `json:"period"`
	Submitted      int     `json:"submitted"`
	Missing        int     `json:"missing"`
	ComplianceRate float64 `json:"complianceRate"`
}

// SubmitTaskReportParams submits a daily report
type SubmitTaskReportParams struct {
	Date    Date        `json:"date"`
	Summary string      `json:"summary"`
	Tasks   []*TaskItem `json:"tasks,omitempty"`
}

// Holiday is a company holiday
type Holiday struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     Date   `json:"date"`
	Type     string `json:"type,omitempty"`
	Optional bool   `json:"optional"`
}

// CreateHolidayParams adds a holiday to the calendar
type CreateHolidayParams struct {
	Name     string `json:"name"`
	Date     Date   `json:"date"`
	Type     string `json:"type,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// Department is an organizational unit
type Department struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Head          string `json:"head,omitempty"`
	EmployeeCount int    `json:"employeeCount"`
}

// DepartmentParams creates or updates a department
type DepartmentParams struct {
	Name string `json:"name"`
	Head string `json:"head,omitempty"`
}

// Settings are the organization-wide HR settings
type Settings struct {
	WorkStartTime        string   `json:"workStartTime"`
	WorkEndTime          string   `json:"workEndTime"`
	Timezone             string   `json:"timezone"`
	WeekOffs             []string `json:"weekOffs"`
	LateMarkAfterMinutes int      `json:"lateMarkAfterMinutes"`
	AutoCheckoutTime     string   `json:"autoCheckoutTime,omitempty"`
}

// Document is stored document metadata. Blob upload is handled elsewhere;
// this client only manages the records.
type Document struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// DocumentList is a paginated set of document records
type DocumentList struct {
	Documents  []*Document `json:"documents"`
	Pagination Pagination  `json:"pagination"`
}
