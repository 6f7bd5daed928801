package services

import (
	"fmt"
	"github.com/coreos/go-semver/semver"
	"github.com/hbalmes/app-distribution-step/api/clients"
	"github.com/hbalmes/app-distribution-step/api/configs"
	"github.com/hbalmes/app-distribution-step/api/models"
	"github.com/hbalmes/app-distribution-step/api/outputs"
	"github.com/hbalmes/app-distribution-step/api/utils"
	"github.com/hbalmes/app-distribution-step/api/utils/apierrors"
	"github.com/rs/zerolog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type DeployService interface {
	PublishBuild() (*PublishResult, apierrors.StepError)
}

//PublishResult carries what a finished run resolved and produced.
type PublishResult struct {
	Distribution *models.Distribution
	Build        *models.Build
}

//Deploy represents the DeployService layer.
//It reconciles the branch's distribution endpoint, uploads the artifact
//and waits for server side processing.
type Deploy struct {
	Distributions clients.DistributionsClient
	Builds        clients.BuildsClient
	Exporter      outputs.Exporter
	Config        *configs.Step
	Logger        zerolog.Logger
	Sleep         func(time.Duration)
}

//NewDeployService initializes a DeployService
func NewDeployService(cfg *configs.Step, logger zerolog.Logger) *Deploy {
	return &Deploy{
		Distributions: clients.NewDistributionsClient(cfg.BaseURL, cfg.Token, logger),
		Builds:        clients.NewBuildsClient(cfg.UploadBaseURL, cfg.Token, logger),
		Exporter:      outputs.NewExporter(logger),
		Config:        cfg,
		Logger:        logger,
		Sleep:         time.Sleep,
	}
}

//PublishBuild runs one publication: validate the inputs, resolve or create
//the distribution for the branch, report its identifiers, upload the
//artifact and wait for processing unless the run skips it.
func (s *Deploy) PublishBuild() (*PublishResult, apierrors.StepError) {
	branch := ResolveBranch(s.Config, s.Logger)
	if branch == "" {
		return nil, apierrors.NewValidationFailure("branch name missing: set the branch input or run inside a repository checkout")
	}

	slug := s.Config.SlugName
	if slug == "" {
		slug = SanitizeSlug(branch)
	}

	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	if err := checkArtifact(s.Config.BuildPath); err != nil {
		return nil, err
	}

	platform := s.Config.ResolvePlatform()
	if platform == "" {
		return nil, apierrors.NewValidationFailure(
			fmt.Sprintf("platform missing: not given as input nor derivable from %s", s.Config.BuildPath),
		)
	}

	s.Logger.Info().
		Str("branch", branch).
		Str("slug", slug).
		Str("platform", platform).
		Msg("publishing build")

	distribution, err := s.resolveDistribution(branch, slug)
	if err != nil {
		return nil, err
	}

	//The distribution identifiers are reported before the upload so they
	//stay visible to the pipeline even when a later step fails.
	s.export(outputs.KeyDistributionID, utils.StringValue(distribution.ID))
	s.export(outputs.KeyDistributionSlug, utils.StringValue(distribution.Slug))
	s.export(outputs.KeyDistributionURL, utils.StringValue(distribution.URL))

	build, err := s.uploadArtifact(branch, platform)
	if err != nil {
		return nil, err
	}

	s.export(outputs.KeyBuildID, utils.StringValue(build.ID))

	build, err = s.waitForProcessing(build)
	if err != nil {
		return nil, err
	}

	return &PublishResult{Distribution: distribution, Build: build}, nil
}

//resolveDistribution reconciles the run's distribution endpoint: the
//earliest created branch match wins, then any slug match, and when neither
//exists one is created. Two concurrent runs can both reach the creation
//path; the resulting duplicate is accepted rather than locked against.
func (s *Deploy) resolveDistribution(branch string, slug string) (*models.Distribution, apierrors.StepError) {
	byBranch, err := s.Distributions.FetchDistributions(
		&models.DistributionQuery{
			FilterType:  utils.Stringify(models.FilterGitBranch),
			FilterValue: utils.Stringify(branch),
		},
		&models.DistributionSort{Field: models.SortFieldCreatedAt, Direction: models.SortAscending},
	)
	if err != nil {
		return nil, err
	}

	bySlug, err := s.Distributions.FetchDistributions(
		&models.DistributionQuery{Slug: utils.Stringify(slug)},
		nil,
	)
	if err != nil {
		return nil, err
	}

	if len(byBranch) > 0 && len(bySlug) > 0 && !sameDistribution(&byBranch[0], &bySlug[0]) {
		s.Logger.Warn().
			Str("branch_match", utils.StringValue(byBranch[0].ID)).
			Str("slug_match", utils.StringValue(bySlug[0].ID)).
			Msg("slug taken by a distribution that does not match the branch, using the branch match")
	}

	if len(byBranch) > 1 {
		s.Logger.Warn().
			Int("count", len(byBranch)).
			Str("branch", branch).
			Msg("multiple distributions match the branch, using the earliest created")
	}

	if len(byBranch) > 0 {
		return &byBranch[0], nil
	}

	if len(bySlug) > 0 {
		return &bySlug[0], nil
	}

	s.Logger.Info().
		Str("slug", slug).
		Str("branch", branch).
		Msg("no distribution found for the branch, creating one")

	return s.Distributions.CreateDistribution(
		configs.GetDefaultDistributionPayload(slug, branch, s.Config.DistributionPassword),
	)
}

func (s *Deploy) uploadArtifact(branch string, platform string) (*models.Build, apierrors.StepError) {
	payload := models.BuildPayload{
		VersionName: utils.Stringify(s.resolveVersionName()),
		Platform:    utils.Stringify(platform),
		Tags:        s.Config.TagList(),
		Deployer:    BuildDeployerInfo(s.Config, branch, s.Logger),
	}

	if s.Config.Changelog != "" {
		payload.Changelog = utils.Stringify(s.Config.Changelog)
	}

	if s.Config.NotifyTesters {
		payload.NotifyTesters = utils.Boolify(true)
		if s.Config.NotificationMessage != "" {
			payload.NotificationMessage = utils.Stringify(s.Config.NotificationMessage)
		}
		if s.Config.NotificationLanguage != "" {
			payload.NotificationLanguage = utils.Stringify(s.Config.NotificationLanguage)
		}
	}

	return s.Builds.UploadBuild(s.Config.BuildPath, &payload)
}

//waitForProcessing re-reads the uploaded build until it reaches the
//processed status or the attempt budget runs out. A budget of zero with a
//build still processing fails right away: the run must not report success
//without having confirmed processing.
func (s *Deploy) waitForProcessing(build *models.Build) (*models.Build, apierrors.StepError) {
	if s.Config.SkipProcessing {
		s.Logger.Info().Msg("processing wait skipped by configuration")
		return build, nil
	}

	maxAttempts := s.Config.MaxPollAttempts
	if maxAttempts < 0 {
		maxAttempts = 0
	}

	attempts := 0
	for !build.Processed() && attempts < maxAttempts {
		s.Sleep(s.Config.PollWait())

		refreshed, err := s.Builds.GetBuild(utils.StringValue(build.ID))
		if err != nil {
			return nil, err
		}

		build = refreshed
		attempts++

		s.Logger.Debug().
			Int("attempt", attempts).
			Str("status", utils.StringValue(build.Status)).
			Msg("build status checked")
	}

	if !build.Processed() {
		return nil, apierrors.NewProcessingTimeout(
			fmt.Sprintf("build %s still not processed after %d status checks", utils.StringValue(build.ID), attempts),
		)
	}

	return build, nil
}

//resolveVersionName takes the explicit input or falls back to the artifact
//file name. Values that parse as semver, with or without a v prefix, are
//normalized through it; anything else passes through verbatim.
func (s *Deploy) resolveVersionName() string {
	name := s.Config.VersionName
	if name == "" {
		base := filepath.Base(s.Config.BuildPath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if version, err := semver.NewVersion(strings.TrimPrefix(name, "v")); err == nil {
		return version.String()
	}

	return name
}

func (s *Deploy) export(key string, value string) {
	if err := s.Exporter.Export(key, value); err != nil {
		s.Logger.Warn().Err(err).Str("key", key).Msg("error exporting step output")
	}
}

func checkArtifact(path string) apierrors.StepError {
	info, err := os.Stat(path)
	if err != nil {
		return apierrors.NewValidationFailure(fmt.Sprintf("build artifact not found at %s", path))
	}

	if !info.Mode().IsRegular() {
		return apierrors.NewValidationFailure(fmt.Sprintf("build artifact at %s is not a regular file", path))
	}

	return nil
}

func sameDistribution(a *models.Distribution, b *models.Distribution) bool {
	return a.ID != nil && b.ID != nil && *a.ID == *b.ID
}
