package query

import (
	"context"
	"net/url"
	"strconv"

	"github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/pkg/validation"
)

// ListUsersQuery narrows the user collection with an already-parsed filter.
type ListUsersQuery struct {
	Filter domain.UserFilter
}

// paramBinding pairs a query-parameter name with the predicate it
// contributes to the filter. Bindings are applied left to right, so the
// narrowing order (filters, then search, then sort) is fixed by the table
// and new parameters are additive.
type paramBinding struct {
	name string
	bind func(value string, filter *domain.UserFilter) error
}

var errInvalidInteger = &bindError{"A valid integer is required."}
var errInvalidBoolean = &bindError{"Must be a valid boolean."}

type bindError struct{ message string }

func (e *bindError) Error() string { return e.message }

var filterBindings = []paramBinding{
	{
		name: "id",
		bind: func(value string, f *domain.UserFilter) error {
			id, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return errInvalidInteger
			}
			parsed := uint(id)
			f.ID = &parsed
			return nil
		},
	},
	{
		name: "username",
		bind: func(value string, f *domain.UserFilter) error {
			f.Username = value
			return nil
		},
	},
	{
		name: "email",
		bind: func(value string, f *domain.UserFilter) error {
			f.Email = value
			return nil
		},
	},
	{
		name: "is_staff",
		bind: func(value string, f *domain.UserFilter) error {
			staff, err := strconv.ParseBool(value)
			if err != nil {
				return errInvalidBoolean
			}
			f.IsStaff = &staff
			return nil
		},
	},
	{
		name: "search",
		bind: func(value string, f *domain.UserFilter) error {
			f.Search = value
			return nil
		},
	},
	{
		// Unrecognized ordering values fall back to the default instead
		// of erroring, so column names are never exposed to clients.
		name: "ordering",
		bind: func(value string, f *domain.UserFilter) error {
			f.Ordering = domain.NormalizeOrdering(value)
			return nil
		},
	},
}

// ParseFilter translates query parameters into a UserFilter by walking the
// binding table in order. Coercion failures are client errors collected per
// parameter; absent parameters contribute nothing.
func ParseFilter(values url.Values) (domain.UserFilter, validation.Errors) {
	filter := domain.UserFilter{Ordering: domain.OrderingIDAsc}
	errs := validation.Errors{}

	for _, binding := range filterBindings {
		value := values.Get(binding.name)
		if value == "" {
			continue
		}
		if err := binding.bind(value, &filter); err != nil {
			errs.Add(binding.name, err.Error())
		}
	}

	if len(errs) > 0 {
		return domain.UserFilter{}, errs
	}
	return filter, nil
}

// ListUsersHandler handles the filtered user listing
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ctx context.Context, q ListUsersQuery) ([]domain.User, error) {
	return h.repo.List(ctx, q.Filter)
}
