package clients

import (
	"errors"
	"github.com/golang/mock/gomock"
	"github.com/hbalmes/app-distribution-step/api/utils/apierrors"
	"github.com/rs/zerolog"
	"reflect"
	"testing"
)

//stubResponse builds a response mock that answers every accessor, for
//tests that only care about the transport outcome.
func stubResponse(ctrl *gomock.Controller, err error, statusCode int, body []byte) *MockResponse {
	response := NewMockResponse(ctrl)
	response.EXPECT().Err().Return(err).AnyTimes()
	response.EXPECT().StatusCode().Return(statusCode).AnyTimes()
	response.EXPECT().Bytes().Return(body).AnyTimes()
	response.EXPECT().String().Return(string(body)).AnyTimes()
	return response
}

func Test_responseError(t *testing.T) {
	type restResponse struct {
		mockError      error
		mockStatusCode int
		mockBytes      []byte
	}

	type expects struct {
		error apierrors.StepError
	}

	tests := []struct {
		name         string
		restResponse restResponse
		expects      expects
	}{
		{
			name: "transport error with a response is an api failure",
			restResponse: restResponse{
				mockError:      errors.New("some error"),
				mockStatusCode: 502,
				mockBytes:      []byte("bad gateway"),
			},
			expects: expects{
				error: apierrors.NewAPIFailure("distribution search rejected by the distribution api", 502, "bad gateway"),
			},
		},
		{
			name: "transport error without a response is a network failure",
			restResponse: restResponse{
				mockError: errors.New("some error"),
			},
			expects: expects{
				error: apierrors.NewNetworkFailure("distribution search got no response from the distribution api", errors.New("some error")),
			},
		},
		{
			name: "non success status is an api failure",
			restResponse: restResponse{
				mockStatusCode: 404,
				mockBytes:      []byte(`{"status":"error"}`),
			},
			expects: expects{
				error: apierrors.NewAPIFailure("distribution search failed - status: 404", 404, `{"status":"error"}`),
			},
		},
		{
			name: "ok status passes",
			restResponse: restResponse{
				mockStatusCode: 200,
			},
			expects: expects{},
		},
		{
			name: "created status passes",
			restResponse: restResponse{
				mockStatusCode: 201,
			},
			expects: expects{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			response := stubResponse(ctrl, tt.restResponse.mockError, tt.restResponse.mockStatusCode, tt.restResponse.mockBytes)

			got := responseError("distribution search", response)
			if !reflect.DeepEqual(got, tt.expects.error) {
				t.Errorf("responseError() got = %v, want %v", got, tt.expects.error)
			}
		})
	}
}

func Test_newRestClient(t *testing.T) {
	restClient := newRestClient("https://api.example.com", "secret-token", zerolog.Nop())

	c, ok := restClient.(*client)
	if !ok {
		t.Fatalf("newRestClient() returned %T, want *client", restClient)
	}

	if c.RestClient.BaseURL != "https://api.example.com" {
		t.Errorf("newRestClient() base url = %s, want https://api.example.com", c.RestClient.BaseURL)
	}
	if got := c.RestClient.Headers.Get("Authorization"); got != "Bearer secret-token" {
		t.Errorf("newRestClient() authorization header = %s, want Bearer secret-token", got)
	}
}
