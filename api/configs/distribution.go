package configs

import (
	"github.com/hbalmes/app-distribution-step/api/models"
	"github.com/hbalmes/app-distribution-step/api/utils"
)

//GetDefaultDistributionPayload builds the creation payload used when no
//distribution exists for the branch yet: an unlisted endpoint routing
//builds by exact branch match, password protected only when a password
//was supplied.
func GetDefaultDistributionPayload(slugName string, branchName string, password string) *models.DistributionPayload {
	payload := models.DistributionPayload{
		Slug:       utils.Stringify(slugName),
		Visibility: utils.Stringify(models.VisibilityUnlisted),
		Security:   utils.Stringify(models.SecurityPublic),
		Filter: &models.DistributionFilter{
			Type:  utils.Stringify(models.FilterGitBranch),
			Value: utils.Stringify(branchName),
		},
		ShowDevInfo: utils.Boolify(true),
		ShowHistory: utils.Boolify(true),
	}

	if password != "" {
		payload.Security = utils.Stringify(models.SecurityPassword)
		payload.Password = utils.Stringify(password)
	}

	return &payload
}
