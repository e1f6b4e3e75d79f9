package pkg

import (
	"fmt"

	"github.com/luli-reader/icongen/pkg/iconset"
	"github.com/luli-reader/icongen/pkg/logging"
)

func GenerateAssets(opts iconset.GenerateOptions) {
	iconset.GenerateWithLogLevel(opts, "")
}

func GenerateAssetsWithLogLevel(opts iconset.GenerateOptions, logLevel string) {
	iconset.GenerateWithLogLevel(opts, logLevel)
}

func RenderMasters(outDir string, size int, glyphName string) {
	iconset.RenderMastersWithLogLevel(outDir, size, glyphName, "")
}

func RenderMastersWithLogLevel(outDir string, size int, glyphName, logLevel string) {
	iconset.RenderMastersWithLogLevel(outDir, size, glyphName, logLevel)
}

func VerifyIconSet(projectRoot string) (bool, error) {
	logger := logging.NewLogger("icongen-verify", logging.GetLogLevel(), nil)
	problems, err := iconset.Verify(logger, projectRoot)
	if err != nil {
		return false, err
	}
	if len(problems) > 0 {
		return false, fmt.Errorf("%w: %d problems", ErrVerificationFailed, len(problems))
	}
	return true, nil
}
