package clients

// Thin wrapper over the rest client so the distribution and build clients
// can branch on transport outcomes without touching library internals.
// Every request is logged here, keeping the callers free of logging calls.

import (
	"fmt"
	"github.com/hbalmes/app-distribution-step/api/utils/apierrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/mercadolibre/golang-restclient/rest"
	"github.com/rs/zerolog"
	"net/http"
	"time"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const restTimeout = 30 * time.Second

//Client performs HTTP requests against the distribution api.
type Client interface {
	Get(url string) Response
	Post(url string, body interface{}) Response
}

//Response is the outcome of a single request.
type Response interface {
	Err() error
	StatusCode() int
	Bytes() []byte
	String() string
}

type client struct {
	RestClient *rest.RequestBuilder
	Logger     zerolog.Logger
}

type restResponse struct {
	response *rest.Response
}

func newRestClient(baseURL string, token string, logger zerolog.Logger) Client {
	hs := make(http.Header)
	hs.Set("cache-control", "no-cache")
	hs.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	return &client{
		RestClient: &rest.RequestBuilder{
			BaseURL:        baseURL,
			Timeout:        restTimeout,
			Headers:        hs,
			ContentType:    rest.JSON,
			DisableCache:   true,
			DisableTimeout: false,
		},
		Logger: logger,
	}
}

func (c *client) Get(url string) Response {
	start := time.Now()
	response := &restResponse{response: c.RestClient.Get(url)}
	c.logRequest(http.MethodGet, url, response, start)
	return response
}

func (c *client) Post(url string, body interface{}) Response {
	start := time.Now()
	response := &restResponse{response: c.RestClient.Post(url, body)}
	c.logRequest(http.MethodPost, url, response, start)
	return response
}

func (c *client) logRequest(method string, url string, response Response, start time.Time) {
	event := c.Logger.Debug()
	if response.Err() != nil {
		event = c.Logger.Warn().Err(response.Err())
	}

	event.
		Str("method", method).
		Str("path", url).
		Int("status", response.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("distribution api request")
}

func (r *restResponse) Err() error {
	if r.response == nil {
		return nil
	}
	return r.response.Err
}

func (r *restResponse) StatusCode() int {
	if r.response == nil || r.response.Response == nil {
		return 0
	}
	return r.response.StatusCode
}

func (r *restResponse) Bytes() []byte {
	if r.response == nil {
		return nil
	}
	return r.response.Bytes()
}

func (r *restResponse) String() string {
	if r.response == nil {
		return ""
	}
	return r.response.String()
}

//responseError classifies a finished request into the step's failure kinds.
//A transport error that still carries a status code counts as an api
//failure; one without a response is a network failure. Success leaves the
//body to the caller, which may still raise a parse failure on its shape.
func responseError(action string, response Response) apierrors.StepError {
	if err := response.Err(); err != nil {
		if response.StatusCode() > 0 {
			return apierrors.NewAPIFailure(
				fmt.Sprintf("%s rejected by the distribution api", action),
				response.StatusCode(),
				response.String(),
			)
		}
		return apierrors.NewNetworkFailure(fmt.Sprintf("%s got no response from the distribution api", action), err)
	}

	if response.StatusCode() != http.StatusOK && response.StatusCode() != http.StatusCreated {
		return apierrors.NewAPIFailure(
			fmt.Sprintf("%s failed - status: %d", action, response.StatusCode()),
			response.StatusCode(),
			response.String(),
		)
	}

	return nil
}
