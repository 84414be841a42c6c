package app

import (
	"time"

	"vkstatus/internal/types"
)

// statusFields is the users.get field set every status operation asks for.
var statusFields = []string{"screen_name", "online", "last_seen"}

type StatusRequest struct {
	UserIDs []string
}

type TrackRequest struct {
	UserIDs   []string
	WatchFile string
	Interval  time.Duration
	LogPath   string
	LogFormat types.LogFormat
}

type SessionsRequest struct {
	InputPath    string
	InputFormat  types.LogFormat
	OutputPath   string
	OutputFormat types.ReportFormat
	GroupBy      types.GroupBy
}

type SessionsResult struct {
	Sessions int
	Rows     int
}

type ResolveRequest struct {
	Path          string
	PythonVersion string
	Ecosystem     types.Ecosystem
	Candidates    []string
}

type ResolvedRequirement struct {
	Name    string
	Version string
	Spec    string
}

type ResolveResult struct {
	Resolved []ResolvedRequirement
}
