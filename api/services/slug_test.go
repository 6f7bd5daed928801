package services

import (
	"github.com/hbalmes/app-distribution-step/api/utils/apierrors"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestSanitizeSlug(t *testing.T) {
	type args struct {
		name string
	}

	type expects struct {
		slug string
	}

	tests := []struct {
		name    string
		args    args
		expects expects
	}{
		{
			name:    "branch separator collapsed",
			args:    args{name: "feature/login"},
			expects: expects{slug: "feature-login"},
		},
		{
			name:    "runs of other characters collapse to one hyphen",
			args:    args{name: "Feature//Login--v2!"},
			expects: expects{slug: "feature-login-v2"},
		},
		{
			name:    "hyphens trimmed from the ends",
			args:    args{name: "--release--"},
			expects: expects{slug: "release"},
		},
		{
			name:    "dots and underscores collapsed",
			args:    args{name: "RELEASE_1.0"},
			expects: expects{slug: "release-1-0"},
		},
		{
			name:    "nothing left yields an empty slug",
			args:    args{name: "___"},
			expects: expects{slug: ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expects.slug, SanitizeSlug(tt.args.name))
		})
	}
}

func TestValidateSlug(t *testing.T) {
	type args struct {
		slug string
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "three characters accepted",
			args: args{slug: "abc"},
		},
		{
			name: "inner hyphens accepted",
			args: args{slug: "my-app-1"},
		},
		{
			name: "128 characters accepted",
			args: args{slug: strings.Repeat("a", 128)},
		},
		{
			name:    "two characters rejected",
			args:    args{slug: "ab"},
			wantErr: true,
		},
		{
			name:    "129 characters rejected",
			args:    args{slug: strings.Repeat("a", 129)},
			wantErr: true,
		},
		{
			name:    "leading hyphen rejected",
			args:    args{slug: "-abc"},
			wantErr: true,
		},
		{
			name:    "trailing hyphen rejected",
			args:    args{slug: "abc-"},
			wantErr: true,
		},
		{
			name:    "underscore rejected",
			args:    args{slug: "ab_c"},
			wantErr: true,
		},
		{
			name:    "empty slug rejected",
			args:    args{slug: ""},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.args.slug)
			if !tt.wantErr {
				assert.Nil(t, err)
				return
			}
			if err == nil || err.Kind() != apierrors.KindValidation {
				t.Fatalf("ValidateSlug() error = %v, want a validation failure", err)
			}
		})
	}
}
