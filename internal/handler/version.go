package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// ServiceName is reported by /version
const ServiceName = "questgate"

// Build-time variables (injected via ldflags). When left unset the VCS
// stamp embedded by the go toolchain fills them in.
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

var vcsStamp = sync.OnceValue(func() VersionInfo {
	var v VersionInfo
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			v.GitCommit = s.Value
		case "vcs.time":
			v.BuildTime = s.Value
		case "vcs.modified":
			v.Modified = s.Value == "true"
		}
	}
	return v
})

// HandleVersion returns version information about the application
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, buildVersionInfo())
	}
}

func buildVersionInfo() VersionInfo {
	info := vcsStamp()
	info.Service = ServiceName
	info.Version = getVersionInfo()
	info.GoVersion = runtime.Version()
	if BuildTime != "" {
		info.BuildTime = BuildTime
	}
	if GitCommit != "" {
		info.GitCommit = GitCommit
	}
	return info
}

// getVersionInfo prefers the ldflags value, then $VERSION, then "dev"
func getVersionInfo() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
