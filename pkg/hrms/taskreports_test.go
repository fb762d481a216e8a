package hrms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskReportService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	params := &ListParams{
		StartDate: NewDate(2024, time.March, 1),
		EndDate:   NewDate(2024, time.March, 31),
	}

	mockTransport.On("Do",
		mock.Anything,
		"GET",
		"/hr/task-reports?operation=reports&startDate=2024-03-01&endDate=2024-03-31&page=1",
		nil,
		mock.Anything,
	).Return(`{"reports": [{"id": "tr-1", "summary": "Shipped payroll export", "totalHours": 7.5}], "total": 1}`, nil)

	list, err := client.TaskReports.List(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, list.Reports, 1)
	assert.Equal(t, 7.5, list.Reports[0].TotalHours)

	mockTransport.AssertExpectations(t)
}

func TestTaskReportService_OverviewDefaultsPeriod(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		"GET",
		"/hr/task-reports?operation=overview&period=month",
		nil,
		mock.Anything,
	).Return(`{"overview": {"period": "month", "submitted": 18, "missing": 2, "complianceRate": 0.9}}`, nil)

	overview, err := client.TaskReports.Overview(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, 18, overview.Submitted)
	assert.Equal(t, 0.9, overview.ComplianceRate)

	mockTransport.AssertExpectations(t)
}

func TestTaskReportService_Submit(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	params := &SubmitTaskReportParams{
		Date:    NewDate(2024, time.March, 15),
		Summary: "Shipped payroll export",
		Tasks: []*TaskItem{
			{Title: "Payroll export", Status: "done", HoursSpent: 5},
		},
	}

	mockTransport.On("Do",
		mock.Anything, "POST", "/task-reports", params, mock.Anything,
	).Return(`{"report": {"id": "tr-2", "summary": "Shipped payroll export"}}`, nil)

	report, err := client.TaskReports.Submit(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, "tr-2", report.ID)
}

func TestTaskReportService_SubmitRequiresSummary(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	_, err := client.TaskReports.Submit(context.Background(), &SubmitTaskReportParams{
		Date: NewDate(2024, time.March, 15),
	})
	require.Error(t, err)

	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
