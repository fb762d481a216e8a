package hrms

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// documentService implements the DocumentService interface
type documentService struct {
	client *Client
}

// List retrieves document records
func (s *documentService) List(ctx context.Context, params *ListParams, employeeID string) (*DocumentList, error) {
	if params == nil {
		params = &ListParams{}
	}

	path, err := endpoint.Resolve(endpoint.DocumentsList)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "employeeId", Value: employeeID},
		{Key: "page", Value: pageValue(params.Page)},
		{Key: "limit", Value: limitValue(params.Limit)},
	})

	var result struct {
		Documents  []*Document `json:"documents"`
		Total      *int        `json:"total"`
		Pagination *Pagination `json:"pagination"`
	}

	if err := s.client.do(ctx, string(endpoint.DocumentsList), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return &DocumentList{
		Documents:  result.Documents,
		Pagination: normalizePagination(result.Total, result.Pagination, params.Page, params.Limit, len(result.Documents)),
	}, nil
}

// Get retrieves one document record
func (s *documentService) Get(ctx context.Context, documentID string) (*Document, error) {
	path, err := endpoint.Resolve(endpoint.DocumentsGetByID, documentID)
	if err != nil {
		return nil, err
	}

	var result struct {
		Document *Document `json:"document"`
	}

	if err := s.client.do(ctx, string(endpoint.DocumentsGetByID), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get document")
	}

	return result.Document, nil
}

// Delete removes a document record
func (s *documentService) Delete(ctx context.Context, documentID string) error {
	path, err := endpoint.Resolve(endpoint.DocumentsDelete, documentID)
	if err != nil {
		return err
	}

	if err := s.client.do(ctx, string(endpoint.DocumentsDelete), http.MethodDelete, path, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete document")
	}
	return nil
}
