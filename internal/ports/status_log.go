package ports

import "vkstatus/internal/types"

type StatusLogWriterPort interface {
	Append(records []types.StatusRecord) error
	Close() error
}

type StatusLogReaderPort interface {
	ReadStatusLog(path string, format types.LogFormat) ([]types.StatusRecord, error)
}
