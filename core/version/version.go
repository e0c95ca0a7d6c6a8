// Package version returns bertlv version information.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version records version information of a bertlv binary.
type Version struct {
	Module    string    `json:"module"`
	Version   string    `json:"version"`
	Commit    string    `json:"commit"`
	Date      time.Time `json:"date"`
	Dirty     bool      `json:"dirty"`
	GoVersion string    `json:"goVersion"`
}

func (v Version) String() string {
	return v.Version
}

// V contains version information of the running binary.
var V = FromBuildInfo(debug.ReadBuildInfo())

// FromBuildInfo extracts version information from module build info.
// If ok is false, the result describes a development build.
//
// A released module version is reported as is.
// Otherwise, a pseudo-version is derived from VCS stamping, if the build has a full git revision.
func FromBuildInfo(bi *debug.BuildInfo, ok bool) (v Version) {
	v = Version{
		Module:  "github.com/usnistgov/bertlv",
		Version: "development",
		Commit:  "unknown",
		Date:    time.Now(),
		Dirty:   true,
	}
	if !ok || bi == nil {
		return v
	}
	if bi.Main.Path != "" {
		v.Module = bi.Main.Path
	}
	v.GoVersion = bi.GoVersion

	bs := map[string]string{}
	for _, kv := range bi.Settings {
		bs[kv.Key] = kv.Value
	}
	if dt, e := time.Parse(time.RFC3339, bs["vcs.time"]); e == nil && bs["vcs"] == "git" && len(bs["vcs.revision"]) == 40 {
		v.Commit = bs["vcs.revision"]
		v.Date = dt
		v.Dirty = bs["vcs.modified"] == "true"
		v.Version = fmt.Sprintf("v0.0.0-%s-%s%s", v.Date.UTC().Format("20060102150405"), v.Commit[:12], map[bool]string{true: "-dirty"}[v.Dirty])
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v.Version = bi.Main.Version
		v.Dirty = false
	}
	return v
}
