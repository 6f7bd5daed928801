package outputs

// Step outputs reach the calling pipeline through envman when the runner
// provides it, the usual contract for CI steps. Without envman the values
// are only logged, which keeps local runs usable.

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"os/exec"
)

//Output names reported to the calling pipeline.
const (
	KeyDistributionID   = "DISTRIBUTION_ID"
	KeyDistributionSlug = "DISTRIBUTION_SLUG"
	KeyDistributionURL  = "DISTRIBUTION_URL"
	KeyBuildID          = "BUILD_ID"
)

const envmanBinary = "envman"

type Exporter interface {
	Export(key string, value string) error
}

type envExporter struct {
	envmanPath string
	logger     zerolog.Logger
}

//NewExporter initializes the step output exporter, locating envman once.
func NewExporter(logger zerolog.Logger) Exporter {
	path, err := exec.LookPath(envmanBinary)
	if err != nil {
		logger.Debug().Msg("envman not found, step outputs will only be logged")
		path = ""
	}

	return &envExporter{
		envmanPath: path,
		logger:     logger,
	}
}

func (e *envExporter) Export(key string, value string) error {
	e.logger.Info().Str("key", key).Str("value", value).Msg("step output")

	if e.envmanPath == "" {
		return nil
	}

	output, err := exec.Command(e.envmanPath, envmanArgs(key, value)...).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "envman add failed for %s: %s", key, string(output))
	}

	return nil
}

func envmanArgs(key string, value string) []string {
	return []string{"add", "--key", key, "--value", value}
}
