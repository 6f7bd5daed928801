package services

import (
	git "github.com/go-git/go-git/v5"
	"github.com/hbalmes/app-distribution-step/api/configs"
	"github.com/hbalmes/app-distribution-step/api/models"
	"github.com/hbalmes/app-distribution-step/api/utils"
	"github.com/rs/zerolog"
	"strings"
	"time"
)

//ResolveBranch returns the branch the run publishes for: the explicit
//input when present, otherwise the checked out HEAD branch. Empty when
//neither yields a name.
func ResolveBranch(cfg *configs.Step, logger zerolog.Logger) string {
	if cfg.BranchName != "" {
		return cfg.BranchName
	}

	repository, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		logger.Debug().Err(err).Msg("no local repository to resolve the branch from")
		return ""
	}

	head, err := repository.Head()
	if err != nil {
		logger.Debug().Err(err).Msg("error reading the repository head")
		return ""
	}

	if !head.Name().IsBranch() {
		return ""
	}

	return head.Name().Short()
}

//BuildDeployerInfo assembles the provenance block sent with the upload.
//Explicit inputs win; commit details they leave out are read from the
//local repository when one is there. Every field stays unset when nothing
//supplies it, except the trigger timestamp which defaults to now.
func BuildDeployerInfo(cfg *configs.Step, branch string, logger zerolog.Logger) *models.DeployerInfo {
	info := models.DeployerBuildInfo{}

	if cfg.Commit != "" {
		info.Commit = utils.Stringify(cfg.Commit)
	}
	if cfg.CommitMessage != "" {
		info.Message = utils.Stringify(cfg.CommitMessage)
	}
	if branch != "" {
		info.Branch = utils.Stringify(branch)
	}
	if cfg.BuildURL != "" {
		info.BuildURL = utils.Stringify(cfg.BuildURL)
	}
	if cfg.BuildNumber != "" {
		info.BuildNumber = utils.Stringify(cfg.BuildNumber)
	}
	if cfg.RepoURL != "" {
		info.RepoURL = utils.Stringify(cfg.RepoURL)
	}
	if cfg.CIURL != "" {
		info.CIURL = utils.Stringify(cfg.CIURL)
	}

	if info.Commit == nil || info.Message == nil {
		fillCommitFromRepository(&info, logger)
	}

	triggeredAt := cfg.TriggeredAt
	if triggeredAt == "" {
		triggeredAt = time.Now().UTC().Format(time.RFC3339)
	}
	info.TriggeredAt = utils.Stringify(triggeredAt)

	deployer := models.DeployerInfo{Info: &info}
	if cfg.CIName != "" {
		deployer.Name = utils.Stringify(cfg.CIName)
	}

	return &deployer
}

func fillCommitFromRepository(info *models.DeployerBuildInfo, logger zerolog.Logger) {
	repository, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		logger.Debug().Err(err).Msg("no local repository to read commit details from")
		return
	}

	head, err := repository.Head()
	if err != nil {
		logger.Debug().Err(err).Msg("error reading the repository head")
		return
	}

	commit, err := repository.CommitObject(head.Hash())
	if err != nil {
		logger.Debug().Err(err).Msg("error reading the head commit")
		return
	}

	if info.Commit == nil {
		info.Commit = utils.Stringify(commit.Hash.String())
	}

	if info.Message == nil {
		message := strings.TrimSpace(commit.Message)
		//Only the title line travels with the upload.
		if i := strings.IndexByte(message, '\n'); i >= 0 {
			message = strings.TrimSpace(message[:i])
		}
		if message != "" {
			info.Message = utils.Stringify(message)
		}
	}
}
