package adapters

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vkstatus/internal/types"
)

// ReportWriterAdapter renders duration reports as CSV rows or a
// pretty-printed JSON array.
type ReportWriterAdapter struct{}

func NewReportWriterAdapter() ReportWriterAdapter {
	return ReportWriterAdapter{}
}

func (a ReportWriterAdapter) WriteDurations(w io.Writer, rows []types.DurationRow, format types.ReportFormat) error {
	switch format {
	case types.ReportFormatCSV, "":
		return writeDurationsCSV(w, rows)
	case types.ReportFormatJSON:
		return writeDurationsJSON(w, rows)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported report format: %s", format))
	}
}

func writeDurationsCSV(w io.Writer, rows []types.DurationRow) error {
	writer := csv.NewWriter(w)
	for _, row := range rows {
		var fields []string
		if row.Bucket != "" {
			fields = []string{row.Bucket, row.Duration.String()}
		} else {
			fields = []string{
				strconv.FormatInt(row.UID, 10),
				row.FirstName,
				row.LastName,
				row.ScreenName,
				row.Duration.String(),
			}
		}
		if err := writer.Write(fields); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write report row").
				WithCause(err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to flush report").
			WithCause(err)
	}
	return nil
}

type durationRowJSON struct {
	UID        int64  `json:"uid,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	ScreenName string `json:"screen_name,omitempty"`
	Bucket     string `json:"bucket,omitempty"`
	Duration   string `json:"duration"`
}

func writeDurationsJSON(w io.Writer, rows []types.DurationRow) error {
	out := make([]durationRowJSON, 0, len(rows))
	for _, row := range rows {
		out = append(out, durationRowJSON{
			UID:        row.UID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			ScreenName: row.ScreenName,
			Bucket:     row.Bucket,
			Duration:   row.Duration.String(),
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(out); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode report").
			WithCause(err)
	}
	return nil
}
