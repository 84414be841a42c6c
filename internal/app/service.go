package app

import (
	"time"

	"vkstatus/internal/adapters"
	"vkstatus/internal/ports"
	"vkstatus/internal/types"
)

type Service struct {
	API             ports.UserAPIPort
	StatusLogReader ports.StatusLogReaderPort
	ReportWriter    ports.ReportWriterPort
	WatchFiles      ports.WatchListPort
	Requirements    ports.RequirementsPort
	OpenStatusLog   func(path string, format types.LogFormat) (ports.StatusLogWriterPort, error)
	Clock           func() time.Time
}

func NewService(apiConfig adapters.VKAPIConfig) Service {
	return Service{
		API:             adapters.NewVKAPIAdapter(apiConfig),
		StatusLogReader: adapters.NewStatusLogReaderAdapter(),
		ReportWriter:    adapters.NewReportWriterAdapter(),
		WatchFiles:      adapters.NewWatchFileAdapter(),
		Requirements:    adapters.NewRequirementsFileAdapter(),
		OpenStatusLog: func(path string, format types.LogFormat) (ports.StatusLogWriterPort, error) {
			return adapters.NewStatusLogWriterAdapter(path, format)
		},
		Clock: time.Now,
	}
}
