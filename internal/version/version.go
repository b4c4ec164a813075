package version

import runtimeDebug "runtime/debug"

// Set at build time with -ldflags "-X"
var (
	Version string
	Commit  string
)

func init() {
	buildInfo, ok := runtimeDebug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "" {
		Version = buildInfo.Main.Version
	}

	if Commit == "" {
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" {
				Commit = setting.Value
			}
		}
	}
}
