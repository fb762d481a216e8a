package hrms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTicketService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		"GET",
		"/tickets?status=open&page=1",
		nil,
		mock.Anything,
	).Return(`{
		"tickets": [{"id": "tk-1", "subject": "Laptop not booting", "status": "open"}],
		"total": 1
	}`, nil)

	list, err := client.Tickets.List(context.Background(), nil, "open")

	require.NoError(t, err)
	require.Len(t, list.Tickets, 1)
	assert.Equal(t, "Laptop not booting", list.Tickets[0].Subject)

	mockTransport.AssertExpectations(t)
}

func TestTicketService_Create(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	params := &CreateTicketParams{
		Subject:     "Laptop not booting",
		Description: "Black screen since morning",
		Category:    "it",
		Priority:    "high",
	}

	mockTransport.On("Do",
		mock.Anything, "POST", "/tickets", params, mock.Anything,
	).Return(`{"ticket": {"id": "tk-2", "subject": "Laptop not booting", "priority": "high"}}`, nil)

	ticket, err := client.Tickets.Create(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, "tk-2", ticket.ID)
	assert.Equal(t, "high", ticket.Priority)
}

func TestTicketService_CreateRequiresSubject(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	_, err := client.Tickets.Create(context.Background(), &CreateTicketParams{Description: "no subject"})
	require.Error(t, err)

	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTicketService_GetWithComments(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything, "GET", "/tickets/tk-1", nil, mock.Anything,
	).Return(`{
		"ticket": {
			"id": "tk-1",
			"subject": "Laptop not booting",
			"comments": [{"id": "cm-1", "author": "IT Desk", "body": "Checking it now"}]
		}
	}`, nil)

	ticket, err := client.Tickets.Get(context.Background(), "tk-1")

	require.NoError(t, err)
	require.Len(t, ticket.Comments, 1)
	assert.Equal(t, "IT Desk", ticket.Comments[0].Author)
}

func TestTicketService_UpdateStatus(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		"PATCH",
		"/tickets/tk-1/status",
		map[string]string{"status": "resolved"},
		mock.Anything,
	).Return(`{"ticket": {"id": "tk-1", "status": "resolved"}}`, nil)

	ticket, err := client.Tickets.UpdateStatus(context.Background(), "tk-1", "resolved")

	require.NoError(t, err)
	assert.Equal(t, "resolved", ticket.Status)

	mockTransport.AssertExpectations(t)
}

func TestTicketService_AddComment(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newMockClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		"POST",
		"/tickets/tk-1/comments",
		map[string]string{"body": "Restarted, same issue"},
		mock.Anything,
	).Return(`{"comment": {"id": "cm-2", "body": "Restarted, same issue"}}`, nil)

	comment, err := client.Tickets.AddComment(context.Background(), "tk-1", "Restarted, same issue")

	require.NoError(t, err)
	assert.Equal(t, "cm-2", comment.ID)

	mockTransport.AssertExpectations(t)
}
