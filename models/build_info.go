package models

import (
	"fmt"
	"io"
)

const unknownBuildValue = "N/A"

// BuildInfo is the version metadata injected with -ldflags at build time.
// Empty fields render as N/A.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// String renders the compact form served by GET /api/version.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", b.Version, b.Date, b.Commit)
}

// Print writes one "Build <field>: <value>" line per field.
func (b BuildInfo) Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", b.Version)
	fmt.Fprintf(w, "Build date: %s\n", b.Date)
	fmt.Fprintf(w, "Build commit: %s\n", b.Commit)
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
