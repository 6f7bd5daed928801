package models

import (
	"net/url"
	"strconv"
)

//Filter types accepted by the distribution api.
const (
	FilterGitBranch = "git_branch"
	FilterGitTag    = "git_tag"
	FilterLastBuild = "last_build"
)

//Visibility values accepted by the distribution api.
const (
	VisibilityActive   = "active"
	VisibilityInactive = "inactive"
	VisibilityUnlisted = "unlisted"
)

//Security modes accepted by the distribution api.
const (
	SecurityPublic   = "public"
	SecurityPassword = "password"
	SecurityLoggedIn = "logged_in"
)

//Sort directions accepted by the distribution api.
const (
	SortAscending  = "asc"
	SortDescending = "desc"

	SortFieldCreatedAt = "createdAt"
)

//DistributionFilter selects which builds the endpoint serves.
type DistributionFilter struct {
	Type  *string `json:"type,omitempty"`
	Value *string `json:"value,omitempty"`
}

//Distribution is the remote record of a distribution endpoint.
type Distribution struct {
	ID          *string             `json:"id,omitempty"`
	Slug        *string             `json:"slug,omitempty"`
	URL         *string             `json:"url,omitempty"`
	Visibility  *string             `json:"visibility,omitempty"`
	Security    *string             `json:"security,omitempty"`
	Filter      *DistributionFilter `json:"filter,omitempty"`
	Groups      []string            `json:"groups,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	ShowDevInfo *bool               `json:"showDevInfo,omitempty"`
	ShowHistory *bool               `json:"showHistory,omitempty"`
	CreatedAt   *Timestamp          `json:"createdAt,omitempty"`
	UpdatedAt   *Timestamp          `json:"updatedAt,omitempty"`
}

//DistributionPayload is the body of a distribution creation request.
type DistributionPayload struct {
	Slug        *string             `json:"slug,omitempty"`
	Visibility  *string             `json:"visibility,omitempty"`
	Security    *string             `json:"security,omitempty"`
	Password    *string             `json:"password,omitempty"`
	Filter      *DistributionFilter `json:"filter,omitempty"`
	Groups      []string            `json:"groups,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	ShowDevInfo *bool               `json:"showDevInfo,omitempty"`
	ShowHistory *bool               `json:"showHistory,omitempty"`
}

//DistributionSort is a single sort criterion, serialized as field:direction.
type DistributionSort struct {
	Field     string
	Direction string
}

func (s *DistributionSort) Param() string {
	return s.Field + ":" + s.Direction
}

//DistributionQuery narrows a distribution search. Extra carries passthrough
//query parameters; page and limit are always stripped from it because the
//pagination loop owns those.
type DistributionQuery struct {
	Slug        *string
	Visibility  *string
	Security    *string
	FilterType  *string
	FilterValue *string
	Extra       url.Values
}

//Values serializes the query for a given page.
func (q *DistributionQuery) Values(sort *DistributionSort, page int) url.Values {
	values := url.Values{}

	if q != nil {
		for name, params := range q.Extra {
			values[name] = append([]string(nil), params...)
		}
		values.Del("page")
		values.Del("limit")

		if q.Slug != nil {
			values.Set("slug", *q.Slug)
		}
		if q.Visibility != nil {
			values.Set("visibility", *q.Visibility)
		}
		if q.Security != nil {
			values.Set("security", *q.Security)
		}
		if q.FilterType != nil {
			values.Set("filterType", *q.FilterType)
		}
		if q.FilterValue != nil {
			values.Set("filterValue", *q.FilterValue)
		}
	}

	if sort != nil {
		values.Set("sort", sort.Param())
	}
	values.Set("page", strconv.Itoa(page))

	return values
}

//Matches reports whether the distribution's filter equals the requested
//type/value pair exactly. Records without a filter never match.
func (d *Distribution) Matches(filterType, filterValue string) bool {
	if d.Filter == nil || d.Filter.Type == nil || d.Filter.Value == nil {
		return false
	}
	return *d.Filter.Type == filterType && *d.Filter.Value == filterValue
}
