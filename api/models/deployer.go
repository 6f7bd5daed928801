package models

//DeployerInfo is the provenance block attached to an upload, identifying
//the CI system that triggered it.
type DeployerInfo struct {
	Name *string            `json:"name,omitempty"`
	Info *DeployerBuildInfo `json:"info,omitempty"`
}

//DeployerBuildInfo carries the trigger context of a single CI run.
type DeployerBuildInfo struct {
	Commit      *string `json:"commit,omitempty"`
	Message     *string `json:"message,omitempty"`
	Branch      *string `json:"branch,omitempty"`
	TriggeredAt *string `json:"triggeredAt,omitempty"`
	CIURL       *string `json:"ciUrl,omitempty"`
	RepoURL     *string `json:"repoUrl,omitempty"`
	BuildURL    *string `json:"buildUrl,omitempty"`
	BuildNumber *string `json:"buildNumber,omitempty"`
}

//FormFields flattens the provenance block into the dotted multipart field
//names the upload endpoint expects. Only present values are emitted.
func (d *DeployerInfo) FormFields() map[string]string {
	fields := make(map[string]string)
	if d == nil {
		return fields
	}

	if d.Name != nil {
		fields["deployer.name"] = *d.Name
	}

	info := d.Info
	if info == nil {
		return fields
	}

	if info.Commit != nil {
		fields["deployer.info.commit"] = *info.Commit
	}
	if info.Message != nil {
		fields["deployer.info.message"] = *info.Message
	}
	if info.Branch != nil {
		fields["deployer.info.branch"] = *info.Branch
	}
	if info.TriggeredAt != nil {
		fields["deployer.info.triggeredAt"] = *info.TriggeredAt
	}
	if info.CIURL != nil {
		fields["deployer.info.ciUrl"] = *info.CIURL
	}
	if info.RepoURL != nil {
		fields["deployer.info.repoUrl"] = *info.RepoURL
	}
	if info.BuildURL != nil {
		fields["deployer.info.buildUrl"] = *info.BuildURL
	}
	if info.BuildNumber != nil {
		fields["deployer.info.buildNumber"] = *info.BuildNumber
	}

	return fields
}
