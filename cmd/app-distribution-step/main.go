package main

import (
	"github.com/hbalmes/app-distribution-step/api/configs"
	"github.com/hbalmes/app-distribution-step/api/services"
	"github.com/hbalmes/app-distribution-step/api/utils"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"
	"os"
)

var (
	apiToken       = kingpin.Flag("api-token", "Distribution service api token").Envar("DISTRIBUTION_API_TOKEN").Required().String()
	apiBaseURL     = kingpin.Flag("api-base-url", "Base url of the distribution metadata api").Envar("DISTRIBUTION_API_BASE_URL").Required().String()
	uploadBaseURL  = kingpin.Flag("upload-base-url", "Base url of the build upload api").Envar("DISTRIBUTION_UPLOAD_BASE_URL").Required().String()
	buildPath      = kingpin.Flag("build-path", "Path to the build artifact (.ipa, .apk or .aab)").Envar("BUILD_PATH").Required().String()
	branchName     = kingpin.Flag("branch", "Branch the artifact was built from, detected from the checkout when empty").Envar("BRANCH_NAME").String()
	slugName       = kingpin.Flag("slug", "Distribution slug, derived from the branch when empty").Envar("SLUG_NAME").String()
	distPassword   = kingpin.Flag("distribution-password", "Password protecting a newly created distribution").Envar("DISTRIBUTION_PASSWORD").String()
	versionName    = kingpin.Flag("version-name", "Version name of the build, derived from the artifact name when empty").Envar("VERSION_NAME").String()
	platform       = kingpin.Flag("platform", "Target platform (ios or android), derived from the artifact extension when empty").Envar("BUILD_PLATFORM").String()
	changelog      = kingpin.Flag("changelog", "Changelog attached to the build").Envar("CHANGELOG").String()
	tags           = kingpin.Flag("tags", "Comma separated tags attached to the build").Envar("BUILD_TAGS").String()
	notifyTesters  = kingpin.Flag("notify-testers", "Notify the distribution testers about the new build").Envar("NOTIFY_TESTERS").Bool()
	notifyMessage  = kingpin.Flag("notification-message", "Message sent with the tester notification").Envar("NOTIFICATION_MESSAGE").String()
	notifyLanguage = kingpin.Flag("notification-language", "Language of the tester notification").Envar("NOTIFICATION_LANGUAGE").String()
	skipProcessing = kingpin.Flag("skip-processing", "Do not wait for server side processing").Envar("SKIP_PROCESSING").Bool()
	maxAttempts    = kingpin.Flag("max-poll-attempts", "How many build status checks to perform before giving up").Default("10").Envar("MAX_POLL_ATTEMPTS").Int()
	pollWait       = kingpin.Flag("poll-wait-seconds", "Seconds to wait between build status checks").Default("5").Envar("POLL_WAIT_SECONDS").Int()
	ciName         = kingpin.Flag("ci-name", "Name of the CI system triggering the run").Envar("CI_NAME").String()
	commit         = kingpin.Flag("commit", "Commit hash the artifact was built from, read from the checkout when empty").Envar("COMMIT_HASH").String()
	commitMessage  = kingpin.Flag("commit-message", "Commit or pull request title, read from the checkout when empty").Envar("COMMIT_MESSAGE").String()
	buildURL       = kingpin.Flag("build-url", "Url of the CI build or run").Envar("CI_BUILD_URL").String()
	buildNumber    = kingpin.Flag("build-number", "Number of the CI build or run").Envar("CI_BUILD_NUMBER").String()
	repoURL        = kingpin.Flag("repo-url", "Url of the repository").Envar("REPO_URL").String()
	ciURL          = kingpin.Flag("ci-url", "Base url of the CI system").Envar("CI_BASE_URL").String()
	triggeredAt    = kingpin.Flag("triggered-at", "ISO timestamp of the trigger, defaults to now").Envar("TRIGGERED_AT").String()
	logLevel       = kingpin.Flag("log-level", "Minimum level to log").Default("info").Envar("LOG_LEVEL").String()
)

func main() {
	//.env values must land before kingpin reads its Envar fallbacks.
	_ = godotenv.Load()
	kingpin.Parse()

	logger := newLogger(*logLevel)

	cfg := &configs.Step{
		Token:                *apiToken,
		BaseURL:              *apiBaseURL,
		UploadBaseURL:        *uploadBaseURL,
		DistributionPassword: *distPassword,
		BranchName:           *branchName,
		SlugName:             *slugName,
		BuildPath:            *buildPath,
		VersionName:          *versionName,
		Platform:             *platform,
		Changelog:            *changelog,
		Tags:                 *tags,
		NotifyTesters:        *notifyTesters,
		NotificationMessage:  *notifyMessage,
		NotificationLanguage: *notifyLanguage,
		SkipProcessing:       *skipProcessing,
		MaxPollAttempts:      *maxAttempts,
		PollWaitSeconds:      *pollWait,
		CIName:               *ciName,
		Commit:               *commit,
		CommitMessage:        *commitMessage,
		BuildURL:             *buildURL,
		BuildNumber:          *buildNumber,
		RepoURL:              *repoURL,
		CIURL:                *ciURL,
		TriggeredAt:          *triggeredAt,
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid step configuration")
	}

	logger.Info().
		Str("api_base_url", cfg.BaseURL).
		Str("upload_base_url", cfg.UploadBaseURL).
		Str("api_token", utils.MaskSecret(cfg.Token)).
		Str("build_path", cfg.BuildPath).
		Msg("app distribution step starting")

	service := services.NewDeployService(cfg, logger)

	result, err := service.PublishBuild()
	if err != nil {
		logger.Error().
			Str("failure_kind", err.Kind().String()).
			Msg(err.Error())
		os.Exit(1)
	}

	logger.Info().
		Str("distribution_id", utils.StringValue(result.Distribution.ID)).
		Str("distribution_url", utils.StringValue(result.Distribution.URL)).
		Str("build_id", utils.StringValue(result.Build.ID)).
		Msg("build published")
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}
