package hrms

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// ticketService implements the TicketService interface
type ticketService struct {
	client *Client
}

// List retrieves tickets
func (s *ticketService) List(ctx context.Context, params *ListParams, status string) (*TicketList, error) {
	if params == nil {
		params = &ListParams{}
	}

	path, err := endpoint.Resolve(endpoint.TicketsList)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "status", Value: status},
		{Key: "page", Value: pageValue(params.Page)},
		{Key: "limit", Value: limitValue(params.Limit)},
	})

	var result struct {
		Tickets    []*Ticket   `json:"tickets"`
		Total      *int        `json:"total"`
		Pagination *Pagination `json:"pagination"`
	}

	if err := s.client.do(ctx, string(endpoint.TicketsList), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return &TicketList{
		Tickets:    result.Tickets,
		Pagination: normalizePagination(result.Total, result.Pagination, params.Page, params.Limit, len(result.Tickets)),
	}, nil
}

// Create opens a ticket
func (s *ticketService) Create(ctx context.Context, params *CreateTicketParams) (*Ticket, error) {
	if params == nil {
		return nil, errors.New("ticket params are required")
	}
	if params.Subject == "" {
		return nil, errors.New("subject is required")
	}

	path, err := endpoint.Resolve(endpoint.TicketsCreate)
	if err != nil {
		return nil, err
	}

	var result struct {
		Ticket *Ticket `json:"ticket"`
	}

	if err := s.client.do(ctx, string(endpoint.TicketsCreate), http.MethodPost, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create ticket")
	}

	return result.Ticket, nil
}

// Get retrieves a ticket with its comment thread
func (s *ticketService) Get(ctx context.Context, ticketID string) (*Ticket, error) {
	path, err := endpoint.Resolve(endpoint.TicketsGetByID, ticketID)
	if err != nil {
		return nil, err
	}

	var result struct {
		Ticket *Ticket `json:"ticket"`
	}

	if err := s.client.do(ctx, string(endpoint.TicketsGetByID), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get ticket")
	}

	return result.Ticket, nil
}

// UpdateStatus transitions a ticket
func (s *ticketService) UpdateStatus(ctx context.Context, ticketID, status string) (*Ticket, error) {
	path, err := endpoint.Resolve(endpoint.TicketsUpdateStatus, ticketID)
	if err != nil {
		return nil, err
	}

	var result struct {
		Ticket *Ticket `json:"ticket"`
	}

	body := map[string]string{"status": status}
	if err := s.client.do(ctx, string(endpoint.TicketsUpdateStatus), http.MethodPatch, path, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update ticket status")
	}

	return result.Ticket, nil
}

// AddComment appends to the ticket thread
func (s *ticketService) AddComment(ctx context.Context, ticketID, commentBody string) (*TicketComment, error) {
	if commentBody == "" {
		return nil, errors.New("comment body is required")
	}

	path, err := endpoint.Resolve(endpoint.TicketsAddComment, ticketID)
	if err != nil {
		return nil, err
	}

	var result struct {
		Comment *TicketComment `json:"comment"`
	}

	body := map[string]string{"body": commentBody}
	if err := s.client.do(ctx, string(endpoint.TicketsAddComment), http.MethodPost, path, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to add comment")
	}

	return result.Comment, nil
}
