package app

import (
	"context"
	"io"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vkstatus/internal/core"
	"vkstatus/internal/types"
)

// SessionsReport reads a status log, reconstructs online sessions and
// writes the grouped durations to the output path (stdout when empty).
func (s Service) SessionsReport(ctx context.Context, req SessionsRequest) (SessionsResult, error) {
	if req.InputPath == "" {
		return SessionsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("status log path is required")
	}
	inputFormat := req.InputFormat
	if inputFormat == "" {
		inputFormat = types.LogFormatCSV
	}
	records, err := s.StatusLogReader.ReadStatusLog(req.InputPath, inputFormat)
	if err != nil {
		return SessionsResult{}, err
	}
	sessions, identities, err := core.EnumerateSessions(ctx, records)
	if err != nil {
		return SessionsResult{}, err
	}
	rows, err := core.GroupDurations(sessions, identities, req.GroupBy)
	if err != nil {
		return SessionsResult{}, err
	}

	var out io.Writer = os.Stdout
	if req.OutputPath != "" {
		file, err := os.Create(req.OutputPath)
		if err != nil {
			return SessionsResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create report file").
				WithCause(err)
		}
		defer file.Close()
		out = file
	}
	if err := s.ReportWriter.WriteDurations(out, rows, req.OutputFormat); err != nil {
		return SessionsResult{}, err
	}
	log.Ctx(ctx).Debug().
		Int("sessions", len(sessions)).
		Int("rows", len(rows)).
		Msg("sessions report written")
	return SessionsResult{Sessions: len(sessions), Rows: len(rows)}, nil
}
