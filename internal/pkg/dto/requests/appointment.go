package requests

import (
	"net/url"
	"strconv"

	"telemed-service/internal/pkg/constvars"
)

// ListAppointmentsQuery carries pagination for GET /appointments.
type ListAppointmentsQuery struct {
	Page     int
	PageSize int
}

func ParseListAppointmentsQuery(values url.Values) ListAppointmentsQuery {
	query := ListAppointmentsQuery{
		Page:     1,
		PageSize: constvars.DefaultPageSize,
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		query.Page = page
	}
	if pageSize, err := strconv.Atoi(values.Get("page_size")); err == nil && pageSize > 0 {
		query.PageSize = pageSize
	}
	if query.PageSize > constvars.MaxPageSize {
		query.PageSize = constvars.MaxPageSize
	}
	return query
}
