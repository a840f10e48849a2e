package main

import (
	"context"
	"runtime"

	"github.com/bnema/floatpane/internal/cli/cmd"
	"github.com/bnema/floatpane/internal/domain/build"
	"github.com/bnema/floatpane/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()
	logCoreDumpLimits(logging.WithContext(context.Background(), logging.NewFromEnv()))

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
