package models

import "fmt"

const notAvailable = "N/A"

// BuildInfo carries the linker-injected version metadata of a binary.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns BuildInfo with "N/A" in place of every empty value.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// String renders the build info on one line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("version %s (%s, commit %s)", b.Version, b.Date, b.Commit)
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
