package ports

import (
	"io"

	"vkstatus/internal/types"
)

type ReportWriterPort interface {
	WriteDurations(w io.Writer, rows []types.DurationRow, format types.ReportFormat) error
}
