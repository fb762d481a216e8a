package hrms

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// regularizationService implements the RegularizationService interface
type regularizationService struct {
	client *Client
}

// List retrieves regularization requests
func (s *regularizationService) List(ctx context.Context, params *ListParams, status string) (*RegularizationList, error) {
	if params == nil {
		params = &ListParams{}
	}

	path, err := endpoint.Resolve(endpoint.RegularizationsList)
	if err != nil {
		return nil, err
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "status", Value: status},
		{Key: "startDate", Value: params.StartDate.String()},
		{Key: "endDate", Value: params.EndDate.String()},
		{Key: "page", Value: pageValue(params.Page)},
		{Key: "limit", Value: limitValue(params.Limit)},
	})

	var result struct {
		Regularizations []*Regularization `json:"regularizations"`
		Total           *int              `json:"total"`
		Pagination      *Pagination       `json:"pagination"`
	}

	if err := s.client.do(ctx, string(endpoint.RegularizationsList), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list regularizations")
	}

	return &RegularizationList{
		Regularizations: result.Regularizations,
		Pagination:      normalizePagination(result.Total, result.Pagination, params.Page, params.Limit, len(result.Regularizations)),
	}, nil
}

// Request submits a regularization
func (s *regularizationService) Request(ctx context.Context, params *RequestRegularizationParams) (*Regularization, error) {
	if params == nil {
		return nil, errors.New("regularization params are required")
	}
	if params.Date.IsZero() {
		return nil, errors.New("date is required")
	}
	if params.Reason == "" {
		return nil, errors.New("reason is required")
	}

	path, err := endpoint.Resolve(endpoint.RegularizationsRequest)
	if err != nil {
		return nil, err
	}

	var result struct {
		Regularization *Regularization `json:"regularization"`
	}

	if err := s.client.do(ctx, string(endpoint.RegularizationsRequest), http.MethodPost, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to request regularization")
	}

	return result.Regularization, nil
}

// Review approves or rejects a request
func (s *regularizationService) Review(ctx context.Context, regularizationID, status, comment string) (*Regularization, error) {
	path, err := endpoint.Resolve(endpoint.RegularizationsReview, regularizationID)
	if err != nil {
		return nil, err
	}

	body := map[string]string{
		"status": status,
	}
	if comment != "" {
		body["comment"] = comment
	}

	var result struct {
		Regularization *Regularization `json:"regularization"`
	}

	if err := s.client.do(ctx, string(endpoint.RegularizationsReview), http.MethodPatch, path, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to review regularization")
	}

	return result.Regularization, nil
}
