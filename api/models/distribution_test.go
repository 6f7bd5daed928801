package models

import (
	"github.com/hbalmes/app-distribution-step/api/utils"
	"github.com/stretchr/testify/assert"
	"net/url"
	"testing"
)

func TestDistributionQuery_Values(t *testing.T) {
	type args struct {
		query *DistributionQuery
		sort  *DistributionSort
		page  int
	}

	tests := []struct {
		name    string
		args    args
		expects string
	}{
		{
			name: "filters and sort serialized",
			args: args{
				query: &DistributionQuery{
					FilterType:  utils.Stringify(FilterGitBranch),
					FilterValue: utils.Stringify("feature/login"),
				},
				sort: &DistributionSort{Field: SortFieldCreatedAt, Direction: SortAscending},
				page: 1,
			},
			expects: "filterType=git_branch&filterValue=feature%2Flogin&page=1&sort=createdAt%3Aasc",
		},
		{
			name: "slug query keeps the requested page",
			args: args{
				query: &DistributionQuery{Slug: utils.Stringify("my-app")},
				page:  3,
			},
			expects: "page=3&slug=my-app",
		},
		{
			name: "page and limit stripped from the passthrough parameters",
			args: args{
				query: &DistributionQuery{
					Slug: utils.Stringify("my-app"),
					Extra: url.Values{
						"page":  []string{"9"},
						"limit": []string{"50"},
						"group": []string{"qa"},
					},
				},
				page: 1,
			},
			expects: "group=qa&page=1&slug=my-app",
		},
		{
			name: "nil query still pages",
			args: args{
				query: nil,
				page:  2,
			},
			expects: "page=2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.args.query.Values(tt.args.sort, tt.args.page)
			assert.Equal(t, tt.expects, got.Encode())
		})
	}
}

func TestDistributionQuery_Values_keepsExtraUntouched(t *testing.T) {
	extra := url.Values{"page": []string{"9"}, "group": []string{"qa"}}
	query := &DistributionQuery{Extra: extra}

	query.Values(nil, 1)

	assert.Equal(t, "9", extra.Get("page"))
	assert.Equal(t, "qa", extra.Get("group"))
}

func TestDistributionSort_Param(t *testing.T) {
	sort := &DistributionSort{Field: SortFieldCreatedAt, Direction: SortAscending}
	assert.Equal(t, "createdAt:asc", sort.Param())
}

func TestDistribution_Matches(t *testing.T) {
	type args struct {
		filterType  string
		filterValue string
	}

	tests := []struct {
		name         string
		distribution Distribution
		args         args
		expects      bool
	}{
		{
			name: "exact filter pair matches",
			distribution: Distribution{
				Filter: &DistributionFilter{
					Type:  utils.Stringify(FilterGitBranch),
					Value: utils.Stringify("feature/login"),
				},
			},
			args:    args{filterType: FilterGitBranch, filterValue: "feature/login"},
			expects: true,
		},
		{
			name: "different filter value does not match",
			distribution: Distribution{
				Filter: &DistributionFilter{
					Type:  utils.Stringify(FilterGitBranch),
					Value: utils.Stringify("feature/login-v2"),
				},
			},
			args:    args{filterType: FilterGitBranch, filterValue: "feature/login"},
			expects: false,
		},
		{
			name: "different filter type does not match",
			distribution: Distribution{
				Filter: &DistributionFilter{
					Type:  utils.Stringify(FilterGitTag),
					Value: utils.Stringify("feature/login"),
				},
			},
			args:    args{filterType: FilterGitBranch, filterValue: "feature/login"},
			expects: false,
		},
		{
			name:         "distribution without a filter never matches",
			distribution: Distribution{ID: utils.Stringify("d-1")},
			args:         args{filterType: FilterGitBranch, filterValue: "feature/login"},
			expects:      false,
		},
		{
			name: "filter without a value never matches",
			distribution: Distribution{
				Filter: &DistributionFilter{Type: utils.Stringify(FilterGitBranch)},
			},
			args:    args{filterType: FilterGitBranch, filterValue: "feature/login"},
			expects: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expects, tt.distribution.Matches(tt.args.filterType, tt.args.filterValue))
		})
	}
}
