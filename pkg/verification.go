package pkg

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/luli-reader/icongen/pkg/iconset"
	"github.com/luli-reader/icongen/pkg/logging"
)

// VerifyAssetsWithLogger verifies a generated icon tree with a provided logger
func VerifyAssetsWithLogger(projectRoot string, logger hclog.Logger) {
	logger.Info("Verifying icon set integrity")

	problems, err := iconset.Verify(logger, projectRoot)
	if err != nil {
		logger.Error("Verification aborted", "error", err)
		os.Exit(1)
	}

	if len(problems) == 0 {
		logger.Info("✓ Icon set verification passed")
	} else {
		logger.Error("✗ Icon set verification failed", "error_count", len(problems))
		for _, problem := range problems {
			logger.Error("  Verification error", "details", problem)
		}
		os.Exit(1)
	}
}

// VerifyAssets verifies a generated icon tree using default logger settings
func VerifyAssets(projectRoot string) {
	logger := logging.NewLogger("icongen-verify", logging.GetLogLevel(), nil)
	VerifyAssetsWithLogger(projectRoot, logger)
}

// VerifyAssetsWithLogLevel verifies with explicit log level control
func VerifyAssetsWithLogLevel(projectRoot, logLevel string) {
	logger := iconset.NewRunLogger("icongen-verify", iconset.EnvAssetsLogLevel, logLevel)
	logger.Info("🎨🎨🎨 Hello from Luli Reader's Icon Generator 🎨🎨🎨")
	VerifyAssetsWithLogger(projectRoot, logger)
}
