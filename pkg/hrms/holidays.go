package hrms

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/endpoint"
)

// holidayService implements the HolidayService interface
type holidayService struct {
	client *Client
}

// List retrieves the calendar for a year
func (s *holidayService) List(ctx context.Context, year int) ([]*Holiday, error) {
	path, err := endpoint.Resolve(endpoint.HolidaysList)
	if err != nil {
		return nil, err
	}

	var yearValue string
	if year > 0 {
		yearValue = strconv.Itoa(year)
	}
	path = endpoint.WithQuery(path, []endpoint.Param{
		{Key: "year", Value: yearValue},
	})

	var result struct {
		Holidays []*Holiday `json:"holidays"`
	}

	if err := s.client.do(ctx, string(endpoint.HolidaysList), http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list holidays")
	}

	return result.Holidays, nil
}

// Create adds a holiday
func (s *holidayService) Create(ctx context.Context, params *CreateHolidayParams) (*Holiday, error) {
	if params == nil {
		return nil, errors.New("holiday params are required")
	}
	if params.Name == "" || params.Date.IsZero() {
		return nil, errors.New("name and date are required")
	}

	path, err := endpoint.Resolve(endpoint.HolidaysCreate)
	if err != nil {
		return nil, err
	}

	var result struct {
		Holiday *Holiday `json:"holiday"`
	}

	if err := s.client.do(ctx, string(endpoint.HolidaysCreate), http.MethodPost, path, params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create holiday")
	}

	return result.Holiday, nil
}

// Delete removes a holiday
func (s *holidayService) Delete(ctx context.Context, holidayID string) error {
	path, err := endpoint.Resolve(endpoint.HolidaysDelete, holidayID)
	if err != nil {
		return err
	}

	if err := s.client.do(ctx, string(endpoint.HolidaysDelete), http.MethodDelete, path, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete holiday")
	}
	return nil
}
