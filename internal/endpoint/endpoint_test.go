package endpoint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_StaticEntries(t *testing.T) {
	path, err := Resolve(EmployeesProfile)
	require.NoError(t, err)
	assert.Equal(t, "/employees/profile", path)

	path, err = Resolve(AttendanceCheckIn)
	require.NoError(t, err)
	assert.Equal(t, "/attendance/checkin", path)
}

func TestResolve_AllPathsStartWithSlash(t *testing.T) {
	for name, e := range registry {
		if e.build == nil {
			assert.True(t, strings.HasPrefix(e.path, "/"), "literal path for %s must begin with '/'", name)
			continue
		}
		params := make([]string, e.arity)
		for i := range params {
			params[i] = "x"
		}
		path, err := Resolve(name, params...)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, "/"), "built path for %s must begin with '/'", name)
	}
}

func TestResolve_EncodesReservedCharacters(t *testing.T) {
	// An ID containing a slash must not split the route.
	path, err := Resolve(EmployeesGetByID, "A/1")
	require.NoError(t, err)
	assert.Equal(t, "/employees/A%2F1", path)
	assert.NotContains(t, strings.TrimPrefix(path, "/employees/"), "/")

	path, err = Resolve(DepartmentsUpdate, "Human Resources")
	require.NoError(t, err)
	assert.NotContains(t, path, " ")
	assert.Equal(t, "/departments/Human%20Resources", path)

	path, err = Resolve(TicketsGetByID, "t?1&x=2")
	require.NoError(t, err)
	assert.NotContains(t, path, "&")
	assert.NotContains(t, path, "=")
}

func TestResolve_ArityAndUnknowns(t *testing.T) {
	_, err := Resolve(Name("NOT.A.THING"))
	assert.Error(t, err)

	_, err = Resolve(EmployeesGetByID)
	assert.Error(t, err)

	_, err = Resolve(EmployeesProfile, "unexpected")
	assert.Error(t, err)

	_, err = Resolve(EmployeesGetByID, "")
	assert.Error(t, err)
}

func TestBuildQuery_DropsEmptyValues(t *testing.T) {
	qs := BuildQuery([]Param{
		{Key: "page", Value: "1"},
		{Key: "search", Value: ""},
		{Key: "limit", Value: "50"},
		{Key: "", Value: "orphan"},
	})
	assert.Equal(t, "page=1&limit=50", qs)
}

func TestBuildQuery_Idempotent(t *testing.T) {
	params := []Param{
		{Key: "startDate", Value: "2024-01-01"},
		{Key: "endDate", Value: "2024-01-31"},
		{Key: "employeeName", Value: "Priya Sharma"},
	}
	first := BuildQuery(params)
	second := BuildQuery(params)
	assert.Equal(t, first, second)
	assert.Equal(t, "startDate=2024-01-01&endDate=2024-01-31&employeeName=Priya+Sharma", first)
}

func TestBuildQuery_PreservesInsertionOrder(t *testing.T) {
	qs := BuildQuery([]Param{
		{Key: "z", Value: "1"},
		{Key: "a", Value: "2"},
	})
	assert.Equal(t, "z=1&a=2", qs)
}

func TestWithQuery(t *testing.T) {
	path := WithQuery("/hr/attendance", []Param{
		{Key: "operation", Value: "records"},
		{Key: "page", Value: "1"},
	})
	assert.Equal(t, "/hr/attendance?operation=records&page=1", path)

	// All pairs filtered: no dangling '?'.
	path = WithQuery("/hr/attendance", []Param{{Key: "search", Value: ""}})
	assert.Equal(t, "/hr/attendance", path)
}
