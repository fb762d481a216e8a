package hrms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegularizationService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		"GET",
		"/regularizations?status=pending&page=1",
		nil,
		mock.Anything,
	).Return(`{
		"regularizations": [{"id": "rg-1", "reason": "Forgot to check out", "status": "pending"}],
		"total": 1
	}`, nil)

	list, err := client.Regularizations.List(context.Background(), nil, "pending")

	require.NoError(t, err)
	require.Len(t, list.Regularizations, 1)
	assert.Equal(t, "Forgot to check out", list.Regularizations[0].Reason)

	mockTransport.AssertExpectations(t)
}

func TestRegularizationService_Request(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	params := &RequestRegularizationParams{
		Date:              NewDate(2024, time.March, 14),
		RequestedCheckIn:  "09:30",
		RequestedCheckOut: "18:00",
		Reason:            "Forgot to check out",
	}

	mockTransport.On("Do",
		mock.Anything, "POST", "/regularizations", params, mock.Anything,
	).Return(`{"regularization": {"id": "rg-2", "status": "pending"}}`, nil)

	reg, err := client.Regularizations.Request(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, "rg-2", reg.ID)
}

func TestRegularizationService_RequestValidation(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	_, err := client.Regularizations.Request(context.Background(), &RequestRegularizationParams{
		Reason: "Forgot to check out",
	})
	require.Error(t, err)

	_, err = client.Regularizations.Request(context.Background(), &RequestRegularizationParams{
		Date: NewDate(2024, time.March, 14),
	})
	require.Error(t, err)

	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegularizationService_Review(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		"PATCH",
		"/regularizations/rg-1/review",
		map[string]string{"status": "approved", "comment": "verified with logs"},
		mock.Anything,
	).Return(`{"regularization": {"id": "rg-1", "status": "approved"}}`, nil)

	reg, err := client.Regularizations.Review(context.Background(), "rg-1", "approved", "verified with logs")

	require.NoError(t, err)
	assert.Equal(t, "approved", reg.Status)

	mockTransport.AssertExpectations(t)
}
