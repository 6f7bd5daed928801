package models

import (
	"github.com/hbalmes/app-distribution-step/api/utils"
	"github.com/stretchr/testify/assert"
	"reflect"
	"testing"
)

func TestBuild_Processed(t *testing.T) {
	tests := []struct {
		name    string
		build   *Build
		expects bool
	}{
		{
			name:    "nil build is not processed",
			build:   nil,
			expects: false,
		},
		{
			name:    "build without a status is not processed",
			build:   &Build{ID: utils.Stringify("b-1")},
			expects: false,
		},
		{
			name:    "processing build is not processed",
			build:   &Build{ID: utils.Stringify("b-1"), Status: utils.Stringify("processing")},
			expects: false,
		},
		{
			name:    "failed build is not processed",
			build:   &Build{ID: utils.Stringify("b-1"), Status: utils.Stringify("failed")},
			expects: false,
		},
		{
			name:    "processed build is processed",
			build:   &Build{ID: utils.Stringify("b-1"), Status: utils.Stringify(BuildStatusProcessed)},
			expects: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expects, tt.build.Processed())
		})
	}
}

func TestBuildPayload_FormFields(t *testing.T) {
	type expects struct {
		fields map[string]string
	}

	fullPayload := BuildPayload{
		VersionName:          utils.Stringify("1.2.3"),
		Platform:             utils.Stringify(PlatformAndroid),
		Tags:                 []string{"smoke", "nightly"},
		Changelog:            utils.Stringify("fixes the login crash"),
		NotifyTesters:        utils.Boolify(true),
		NotificationMessage:  utils.Stringify("new build available"),
		NotificationLanguage: utils.Stringify("en"),
		Deployer: &DeployerInfo{
			Name: utils.Stringify("jenkins"),
			Info: &DeployerBuildInfo{
				Commit: utils.Stringify("1245678qwertyuasdfghzxcvb"),
				Branch: utils.Stringify("feature/login"),
			},
		},
	}

	tests := []struct {
		name    string
		payload *BuildPayload
		expects expects
	}{
		{
			name:    "every present field flattened",
			payload: &fullPayload,
			expects: expects{
				fields: map[string]string{
					"versionName":          "1.2.3",
					"buildPlatform":        "android",
					"tags":                 "smoke,nightly",
					"changelog":            "fixes the login crash",
					"notifyTesters":        "true",
					"notificationMessage":  "new build available",
					"notificationLanguage": "en",
					"deployer.name":        "jenkins",
					"deployer.info.commit": "1245678qwertyuasdfghzxcvb",
					"deployer.info.branch": "feature/login",
				},
			},
		},
		{
			name: "absent fields never serialized",
			payload: &BuildPayload{
				VersionName: utils.Stringify("1.2.3"),
				Platform:    utils.Stringify(PlatformIOS),
			},
			expects: expects{
				fields: map[string]string{
					"versionName":   "1.2.3",
					"buildPlatform": "ios",
				},
			},
		},
		{
			name:    "empty payload flattens to nothing",
			payload: &BuildPayload{},
			expects: expects{fields: map[string]string{}},
		},
		{
			name:    "nil payload flattens to nothing",
			payload: nil,
			expects: expects{fields: map[string]string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.payload.FormFields()
			if !reflect.DeepEqual(got, tt.expects.fields) {
				t.Errorf("FormFields() got = %v, want %v", got, tt.expects.fields)
			}
		})
	}
}

func TestFieldNames(t *testing.T) {
	fields := map[string]string{
		"versionName":          "1.2.3",
		"buildPlatform":        "android",
		"deployer.info.commit": "1245678qwertyuasdfghzxcvb",
		"changelog":            "fixes the login crash",
	}

	want := []string{"buildPlatform", "changelog", "deployer.info.commit", "versionName"}

	assert.Equal(t, want, FieldNames(fields))
	assert.Equal(t, []string{}, FieldNames(nil))
}
