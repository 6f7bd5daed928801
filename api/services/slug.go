package services

import (
	"fmt"
	"github.com/hbalmes/app-distribution-step/api/utils/apierrors"
	"regexp"
	"strings"
)

//Slug rules of the distribution service: alphanumeric first and last
//characters, alphanumerics and hyphens in between, 3 to 128 characters
//overall.
var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{1,126}[a-zA-Z0-9]$`)

var nonSlugRun = regexp.MustCompile(`[^a-zA-Z0-9]+`)

//SanitizeSlug derives a slug candidate from a branch name: lowercased,
//every run of other characters collapsed to one hyphen, hyphens trimmed
//from the ends. The result still has to pass ValidateSlug.
func SanitizeSlug(name string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

//ValidateSlug rejects slugs the distribution service would refuse.
func ValidateSlug(slug string) apierrors.StepError {
	if !slugPattern.MatchString(slug) {
		return apierrors.NewValidationFailure(
			fmt.Sprintf("invalid slug %q: 3 to 128 characters, alphanumeric with inner hyphens", slug),
		)
	}

	return nil
}
