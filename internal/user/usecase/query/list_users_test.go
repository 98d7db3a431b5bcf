package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franvila/comic-commerce/internal/user/domain"
)

func TestParseFilterDefaults(t *testing.T) {
	filter, errs := ParseFilter(url.Values{})
	require.Nil(t, errs)

	assert.Nil(t, filter.ID)
	assert.Empty(t, filter.Username)
	assert.Empty(t, filter.Email)
	assert.Nil(t, filter.IsStaff)
	assert.Empty(t, filter.Search)
	assert.Equal(t, domain.OrderingIDAsc, filter.Ordering)
}

func TestParseFilterAllParameters(t *testing.T) {
	values := url.Values{}
	values.Set("id", "7")
	values.Set("username", "pet")
	values.Set("email", "peter@example.com")
	values.Set("is_staff", "true")
	values.Set("search", "parker")
	values.Set("ordering", "-pk")

	filter, errs := ParseFilter(values)
	require.Nil(t, errs)

	require.NotNil(t, filter.ID)
	assert.Equal(t, uint(7), *filter.ID)
	assert.Equal(t, "pet", filter.Username)
	assert.Equal(t, "peter@example.com", filter.Email)
	require.NotNil(t, filter.IsStaff)
	assert.True(t, *filter.IsStaff)
	assert.Equal(t, "parker", filter.Search)
	assert.Equal(t, domain.OrderingIDDesc, filter.Ordering)
}

func TestParseFilterInvalidID(t *testing.T) {
	values := url.Values{}
	values.Set("id", "abc")

	_, errs := ParseFilter(values)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"A valid integer is required."}, errs["id"])
}

func TestParseFilterInvalidBoolean(t *testing.T) {
	values := url.Values{}
	values.Set("is_staff", "maybe")

	_, errs := ParseFilter(values)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Must be a valid boolean."}, errs["is_staff"])
}

func TestParseFilterCollectsMultipleFailures(t *testing.T) {
	values := url.Values{}
	values.Set("id", "abc")
	values.Set("is_staff", "maybe")

	_, errs := ParseFilter(values)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "id")
	assert.Contains(t, errs, "is_staff")
}

func TestParseFilterUnknownOrderingFallsBack(t *testing.T) {
	values := url.Values{}
	values.Set("ordering", "password; DROP TABLE users")

	filter, errs := ParseFilter(values)
	require.Nil(t, errs)
	assert.Equal(t, domain.OrderingIDAsc, filter.Ordering)
}

func TestNormalizeOrdering(t *testing.T) {
	assert.Equal(t, domain.OrderingIDAsc, domain.NormalizeOrdering("pk"))
	assert.Equal(t, domain.OrderingIDDesc, domain.NormalizeOrdering("-pk"))
	assert.Equal(t, domain.OrderingUsernameAsc, domain.NormalizeOrdering("username"))
	assert.Equal(t, domain.OrderingIDAsc, domain.NormalizeOrdering(""))
	assert.Equal(t, domain.OrderingIDAsc, domain.NormalizeOrdering("-username"))
}
