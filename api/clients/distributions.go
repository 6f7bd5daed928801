package clients

// Distribution collection operations against the distribution api: the
// paged search and the single creation call. A search never returns
// partial results; the first failing page aborts the whole walk.

import (
	"fmt"
	"github.com/hbalmes/app-distribution-step/api/models"
	"github.com/hbalmes/app-distribution-step/api/utils/apierrors"
	"github.com/rs/zerolog"
)

const distributionsPath = "/integrations/distributions"

type DistributionsClient interface {
	FetchDistributions(query *models.DistributionQuery, sort *models.DistributionSort) ([]models.Distribution, apierrors.StepError)
	CreateDistribution(payload *models.DistributionPayload) (*models.Distribution, apierrors.StepError)
}

type distributionsClient struct {
	Client Client
}

//NewDistributionsClient initializes the client for the distribution
//collection endpoints.
func NewDistributionsClient(baseURL string, token string, logger zerolog.Logger) DistributionsClient {
	return &distributionsClient{
		Client: newRestClient(baseURL, token, logger),
	}
}

type searchPage struct {
	Items        *[]models.Distribution `json:"items"`
	TotalItems   int                    `json:"totalItems"`
	ItemsPerPage int                    `json:"itemsPerPage"`
	CurrentPage  int                    `json:"currentPage"`
	TotalPages   int                    `json:"totalPages"`
}

type searchEnvelope struct {
	Data *searchPage `json:"data"`
}

type distributionEnvelope struct {
	Data *models.Distribution `json:"data"`
}

//distributionPager walks the paged search endpoint one page at a time,
//strictly in order. Next fetches a page and reports whether it produced
//one; Items holds that page's records and Err the failure that stopped
//the walk, if any.
type distributionPager struct {
	client Client
	query  *models.DistributionQuery
	sort   *models.DistributionSort

	page  int
	items []models.Distribution
	err   apierrors.StepError
	done  bool
}

func newDistributionPager(client Client, query *models.DistributionQuery, sort *models.DistributionSort) *distributionPager {
	return &distributionPager{
		client: client,
		query:  query,
		sort:   sort,
		page:   1,
	}
}

func (p *distributionPager) Next() bool {
	if p.done || p.err != nil {
		return false
	}

	response := p.client.Get(fmt.Sprintf("%s?%s", distributionsPath, p.query.Values(p.sort, p.page).Encode()))

	if err := responseError("distribution search", response); err != nil {
		p.err = err
		return false
	}

	var envelope searchEnvelope
	if err := json.Unmarshal(response.Bytes(), &envelope); err != nil {
		p.err = apierrors.NewParseFailure("error binding distribution search response", response.String(), err)
		return false
	}

	if envelope.Data == nil || envelope.Data.Items == nil {
		p.err = apierrors.NewParseFailure("distribution search response has no items", response.String(), nil)
		return false
	}

	p.items = *envelope.Data.Items

	//The server reports how far along the walk is. A current page that
	//reached the reported total ends it; a total of zero or less means
	//there is nothing beyond this page.
	current := envelope.Data.CurrentPage
	if current < p.page {
		current = p.page
	}

	if envelope.Data.TotalPages <= 0 || current >= envelope.Data.TotalPages {
		p.done = true
	} else {
		p.page = current + 1
	}

	return true
}

func (p *distributionPager) Items() []models.Distribution {
	return p.items
}

func (p *distributionPager) Err() apierrors.StepError {
	return p.err
}

//FetchDistributions accumulates every search result across all pages, in
//server order. When the query carries both a filter type and a filter
//value, the accumulated result is narrowed to exact matches on that pair:
//the search endpoint does not guarantee exact matching on those fields.
func (c *distributionsClient) FetchDistributions(query *models.DistributionQuery, sort *models.DistributionSort) ([]models.Distribution, apierrors.StepError) {
	pager := newDistributionPager(c.Client, query, sort)

	var distributions []models.Distribution
	for pager.Next() {
		distributions = append(distributions, pager.Items()...)
	}

	if err := pager.Err(); err != nil {
		return nil, err
	}

	if query != nil && query.FilterType != nil && query.FilterValue != nil {
		distributions = exactFilterMatches(distributions, *query.FilterType, *query.FilterValue)
	}

	return distributions, nil
}

func exactFilterMatches(distributions []models.Distribution, filterType string, filterValue string) []models.Distribution {
	matches := make([]models.Distribution, 0, len(distributions))
	for _, distribution := range distributions {
		if distribution.Matches(filterType, filterValue) {
			matches = append(matches, distribution)
		}
	}
	return matches
}

//CreateDistribution creates a single distribution endpoint. There is no
//retry and no existence check here: callers that need idempotent creation
//search first.
func (c *distributionsClient) CreateDistribution(payload *models.DistributionPayload) (*models.Distribution, apierrors.StepError) {
	if payload == nil || payload.Slug == nil {
		return nil, apierrors.NewValidationFailure("invalid distribution creation payload")
	}

	response := c.Client.Post(distributionsPath, payload)

	if err := responseError("distribution creation", response); err != nil {
		return nil, err
	}

	var envelope distributionEnvelope
	if err := json.Unmarshal(response.Bytes(), &envelope); err != nil {
		return nil, apierrors.NewParseFailure("error binding distribution creation response", response.String(), err)
	}

	if envelope.Data == nil || envelope.Data.ID == nil {
		return nil, apierrors.NewParseFailure("distribution creation response has no distribution", response.String(), nil)
	}

	return envelope.Data, nil
}
