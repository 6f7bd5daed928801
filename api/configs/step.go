package configs

import (
	"github.com/hbalmes/app-distribution-step/api/models"
	"github.com/hbalmes/app-distribution-step/api/utils"
	"github.com/pkg/errors"
	"path/filepath"
	"strings"
	"time"
)

//Causes behind an invalid step configuration.
var (
	ErrMissingToken         = errors.New("distribution api token is required")
	ErrMissingBaseURL       = errors.New("distribution api base url is required")
	ErrMissingUploadBaseURL = errors.New("upload api base url is required")
	ErrMissingBuildPath     = errors.New("build artifact path is required")
)

//Artifact extensions a platform can be derived from.
const (
	extensionIPA = ".ipa"
	extensionAPK = ".apk"
	extensionAAB = ".aab"
)

//Step carries every input of a single run, as handed over by the calling
//pipeline.
type Step struct {
	Token         string
	BaseURL       string
	UploadBaseURL string

	DistributionPassword string
	BranchName           string
	SlugName             string

	BuildPath   string
	VersionName string
	Platform    string
	Changelog   string
	Tags        string

	NotifyTesters        bool
	NotificationMessage  string
	NotificationLanguage string

	SkipProcessing  bool
	MaxPollAttempts int
	PollWaitSeconds int

	CIName        string
	Commit        string
	CommitMessage string
	BuildURL      string
	BuildNumber   string
	RepoURL       string
	CIURL         string
	TriggeredAt   string
}

//Validate checks the inputs no run can work without.
func (s *Step) Validate() error {
	switch {
	case s.Token == "":
		return errors.Wrap(ErrMissingToken, "invalid step configuration")
	case s.BaseURL == "":
		return errors.Wrap(ErrMissingBaseURL, "invalid step configuration")
	case s.UploadBaseURL == "":
		return errors.Wrap(ErrMissingUploadBaseURL, "invalid step configuration")
	case s.BuildPath == "":
		return errors.Wrap(ErrMissingBuildPath, "invalid step configuration")
	}

	return nil
}

//TagList splits the comma separated tags input, dropping empty entries and
//duplicates.
func (s *Step) TagList() []string {
	if s.Tags == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(s.Tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" || utils.StringContains(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}

//PollWait is the pause between two build status checks.
func (s *Step) PollWait() time.Duration {
	if s.PollWaitSeconds <= 0 {
		return 0
	}
	return time.Duration(s.PollWaitSeconds) * time.Second
}

//ResolvePlatform returns the target platform: the explicit input when it
//names a supported platform, otherwise the one derived from the artifact
//extension. Empty means neither yielded one.
func (s *Step) ResolvePlatform() string {
	platform := strings.ToLower(strings.TrimSpace(s.Platform))
	if platform != "" {
		if utils.StringContains([]string{models.PlatformIOS, models.PlatformAndroid}, platform) {
			return platform
		}
		return ""
	}

	switch strings.ToLower(filepath.Ext(s.BuildPath)) {
	case extensionIPA:
		return models.PlatformIOS
	case extensionAPK, extensionAAB:
		return models.PlatformAndroid
	}

	return ""
}
