package clients

// Build endpoint operations: the streaming multi-part upload of the
// artifact and the single-build lookup used while waiting for server
// side processing.

import (
	"fmt"
	"github.com/hbalmes/app-distribution-step/api/models"
	"github.com/hbalmes/app-distribution-step/api/utils/apierrors"
	"github.com/rs/zerolog"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	buildsPath     = "/integrations/builds"
	buildFileField = "build"
)

type BuildsClient interface {
	UploadBuild(path string, payload *models.BuildPayload) (*models.Build, apierrors.StepError)
	GetBuild(buildID string) (*models.Build, apierrors.StepError)
}

type buildsClient struct {
	Client     Client
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Logger     zerolog.Logger
}

//NewBuildsClient initializes the client for the build endpoints. The
//upload goes through its own http client with no timeout: artifacts can be
//large and the body is streamed, so the transfer takes as long as it takes.
func NewBuildsClient(baseURL string, token string, logger zerolog.Logger) BuildsClient {
	return &buildsClient{
		Client:     newRestClient(baseURL, token, logger),
		HTTPClient: &http.Client{},
		BaseURL:    baseURL,
		Token:      token,
		Logger:     logger,
	}
}

type buildEnvelope struct {
	Status string `json:"status"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Data *models.Build `json:"data"`
}

//UploadBuild sends the artifact at the given path plus the present payload
//fields as one multi-part request. The artifact is piped into the request
//body instead of being buffered whole.
func (c *buildsClient) UploadBuild(path string, payload *models.BuildPayload) (*models.Build, apierrors.StepError) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apierrors.NewValidationFailure(fmt.Sprintf("build artifact not found at %s", path))
	}

	if !info.Mode().IsRegular() {
		return nil, apierrors.NewValidationFailure(fmt.Sprintf("build artifact at %s is not a regular file", path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, apierrors.NewValidationFailure(fmt.Sprintf("build artifact at %s is not readable", path))
	}
	defer file.Close()

	bodyReader, bodyWriter := io.Pipe()
	form := multipart.NewWriter(bodyWriter)

	go func() {
		bodyWriter.CloseWithError(writeUploadForm(form, file, filepath.Base(path), payload))
	}()

	request, err := http.NewRequest(http.MethodPost, c.BaseURL+buildsPath, bodyReader)
	if err != nil {
		return nil, apierrors.NewNetworkFailure("error building the upload request", err)
	}

	request.Header.Set("Content-Type", form.FormDataContentType())
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))

	c.Logger.Info().
		Str("path", path).
		Int64("size_bytes", info.Size()).
		Msg("uploading build artifact")

	start := time.Now()
	response, err := c.HTTPClient.Do(request)
	if err != nil {
		c.Logger.Warn().Err(err).Str("method", http.MethodPost).Str("path", buildsPath).Msg("distribution api request")
		return nil, apierrors.NewNetworkFailure("build upload got no response from the distribution api", err)
	}
	defer response.Body.Close()

	c.Logger.Debug().
		Str("method", http.MethodPost).
		Str("path", buildsPath).
		Int("status", response.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("distribution api request")

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, apierrors.NewNetworkFailure("error reading the upload response", err)
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return nil, apierrors.NewAPIFailure(
			fmt.Sprintf("build upload failed - status: %d", response.StatusCode),
			response.StatusCode,
			string(body),
		)
	}

	return decodeBuildEnvelope("build upload", body)
}

//writeUploadForm produces the multi-part body on the pipe: the present
//metadata fields in a stable order, then the artifact stream.
func writeUploadForm(form *multipart.Writer, file *os.File, filename string, payload *models.BuildPayload) error {
	fields := payload.FormFields()
	for _, name := range models.FieldNames(fields) {
		if err := form.WriteField(name, fields[name]); err != nil {
			return err
		}
	}

	part, err := form.CreateFormFile(buildFileField, filename)
	if err != nil {
		return err
	}

	if _, err := io.Copy(part, file); err != nil {
		return err
	}

	return form.Close()
}

//GetBuild looks up a single build by identifier.
func (c *buildsClient) GetBuild(buildID string) (*models.Build, apierrors.StepError) {
	if buildID == "" {
		return nil, apierrors.NewValidationFailure("build id is required")
	}

	response := c.Client.Get(fmt.Sprintf("%s/%s", buildsPath, buildID))

	if err := responseError("build lookup", response); err != nil {
		return nil, err
	}

	return decodeBuildEnvelope("build lookup", response.Bytes())
}

func decodeBuildEnvelope(action string, body []byte) (*models.Build, apierrors.StepError) {
	var envelope buildEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apierrors.NewParseFailure(fmt.Sprintf("error binding %s response", action), string(body), err)
	}

	if envelope.Data == nil || envelope.Data.ID == nil {
		return nil, apierrors.NewParseFailure(fmt.Sprintf("%s response has no build", action), string(body), nil)
	}

	return envelope.Data, nil
}
