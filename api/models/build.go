package models

import (
	"sort"
	"strconv"
	"strings"
)

//Platforms accepted by the upload api.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

//BuildStatusProcessed is the only terminal status the step recognizes.
//Every other value means the remote service is still processing the build.
const BuildStatusProcessed = "processed"

//Uploader identifies the account that performed an upload.
type Uploader struct {
	ID    *string `json:"id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

//StorageProvider describes where the remote service stored the artifact.
type StorageProvider struct {
	Provider *string `json:"provider,omitempty"`
	Region   *string `json:"region,omitempty"`
	Bucket   *string `json:"bucket,omitempty"`
}

//Build is the remote record of an uploaded artifact.
type Build struct {
	ID               *string          `json:"id,omitempty"`
	Status           *string          `json:"status,omitempty"`
	Platform         *string          `json:"buildPlatform,omitempty"`
	VersionName      *string          `json:"versionName,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Changelog        *string          `json:"changelog,omitempty"`
	SizeInBytes      *int64           `json:"sizeInBytes,omitempty"`
	ProcessingMillis *int64           `json:"processingTime,omitempty"`
	Deployer         *DeployerInfo    `json:"deployer,omitempty"`
	Uploader         *Uploader        `json:"uploader,omitempty"`
	StorageProvider  *StorageProvider `json:"storageProvider,omitempty"`
	CreatedAt        *Timestamp       `json:"createdAt,omitempty"`
	UpdatedAt        *Timestamp       `json:"updatedAt,omitempty"`
}

//Processed reports whether the build reached the terminal status.
func (b *Build) Processed() bool {
	return b != nil && b.Status != nil && *b.Status == BuildStatusProcessed
}

//BuildPayload is the metadata sent alongside the artifact on upload. Nil
//fields are never serialized, keeping "not provided" distinguishable from
//an explicit empty value.
type BuildPayload struct {
	VersionName          *string
	Platform             *string
	Tags                 []string
	Changelog            *string
	NotifyTesters        *bool
	NotificationMessage  *string
	NotificationLanguage *string
	Deployer             *DeployerInfo
}

//FormFields flattens the payload into the multipart form fields the upload
//endpoint expects, including only the fields that are present.
func (p *BuildPayload) FormFields() map[string]string {
	fields := make(map[string]string)
	if p == nil {
		return fields
	}

	if p.VersionName != nil {
		fields["versionName"] = *p.VersionName
	}
	if p.Platform != nil {
		fields["buildPlatform"] = *p.Platform
	}
	if len(p.Tags) > 0 {
		fields["tags"] = strings.Join(p.Tags, ",")
	}
	if p.Changelog != nil {
		fields["changelog"] = *p.Changelog
	}
	if p.NotifyTesters != nil {
		fields["notifyTesters"] = strconv.FormatBool(*p.NotifyTesters)
	}
	if p.NotificationMessage != nil {
		fields["notificationMessage"] = *p.NotificationMessage
	}
	if p.NotificationLanguage != nil {
		fields["notificationLanguage"] = *p.NotificationLanguage
	}
	if p.Deployer != nil {
		for name, value := range p.Deployer.FormFields() {
			fields[name] = value
		}
	}

	return fields
}

//FieldNames returns the present field names in a stable order, so the
//multipart body is deterministic.
func FieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
