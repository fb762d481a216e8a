package hrms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockResponse := `{
		"employees": [
			{"id": "emp-1", "name": "Priya Sharma", "department": "Engineering"},
			{"id": "emp-2", "name": "Arun Mehta", "department": "Finance"}
		],
		"pagination": {"page": 1, "limit": 20, "total": 42, "totalPages": 3}
	}`

	mockTransport.On("Do",
		mock.Anything,
		"GET",
		"/employees?page=1&limit=20",
		nil,
		mock.Anything,
	).Return(mockResponse, nil)

	list, err := client.Employees.List(context.Background(), &ListParams{Page: 1, Limit: 20}, "")

	require.NoError(t, err)
	assert.Len(t, list.Employees, 2)
	assert.Equal(t, "Priya Sharma", list.Employees[0].Name)
	assert.Equal(t, 42, list.Pagination.Total)
	assert.Equal(t, 3, list.Pagination.TotalPages)

	mockTransport.AssertExpectations(t)
}

func TestEmployeeService_ListBareTotalEnvelope(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	// Older endpoints return a bare total instead of a pagination object.
	mockResponse := `{
		"employees": [{"id": "emp-1", "name": "Priya Sharma"}],
		"total": 7
	}`

	mockTransport.On("Do",
		mock.Anything, "GET", mock.AnythingOfType("string"), nil, mock.Anything,
	).Return(mockResponse, nil)

	list, err := client.Employees.List(context.Background(), &ListParams{Page: 2, Limit: 5}, "")

	require.NoError(t, err)
	assert.Equal(t, 7, list.Pagination.Total)
	assert.Equal(t, 2, list.Pagination.Page)
	assert.Equal(t, 2, list.Pagination.TotalPages)
}

func TestEmployeeService_ListSearchEncoded(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		"GET",
		"/employees?page=1&search=Priya+Sharma",
		nil,
		mock.Anything,
	).Return(`{"employees": []}`, nil)

	_, err := client.Employees.List(context.Background(), nil, "Priya Sharma")
	require.NoError(t, err)

	mockTransport.AssertExpectations(t)
}

func TestEmployeeService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		"GET",
		"/employees/emp-1",
		nil,
		mock.Anything,
	).Return(`{"employee": {"id": "emp-1", "name": "Priya Sharma", "role": "admin"}}`, nil)

	employee, err := client.Employees.Get(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "emp-1", employee.ID)
	assert.Equal(t, "admin", employee.Role)

	mockTransport.AssertExpectations(t)
}

func TestEmployeeService_GetEncodesID(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	// IDs containing reserved characters must not alter the route shape.
	mockTransport.On("Do",
		mock.Anything, "GET", "/employees/A%2F1", nil, mock.Anything,
	).Return(`{"employee": {"id": "A/1"}}`, nil)

	employee, err := client.Employees.Get(context.Background(), "A/1")
	require.NoError(t, err)
	assert.Equal(t, "A/1", employee.ID)

	mockTransport.AssertExpectations(t)
}

func TestEmployeeService_Update(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	dept := "Platform"
	params := &UpdateEmployeeParams{Department: &dept}

	mockTransport.On("Do",
		mock.Anything,
		"PUT",
		"/employees/emp-1",
		params,
		mock.Anything,
	).Return(`{"employee": {"id": "emp-1", "department": "Platform"}}`, nil)

	employee, err := client.Employees.Update(context.Background(), "emp-1", params)

	require.NoError(t, err)
	assert.Equal(t, "Platform", employee.Department)

	mockTransport.AssertExpectations(t)
}

func TestEmployeeService_GetEmptyID(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	_, err := client.Employees.Get(context.Background(), "")
	require.Error(t, err)

	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
