package adapters

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vkstatus/internal/types"
)

const observedAtLayout = time.RFC3339

// StatusLogWriterAdapter appends status records to a file, either as
// CSV rows or as one JSON object per line. Both encodings are
// append-friendly so a tracking run can be resumed onto the same log.
type StatusLogWriterAdapter struct {
	file   *os.File
	format types.LogFormat
	csv    *csv.Writer
}

func NewStatusLogWriterAdapter(path string, format types.LogFormat) (*StatusLogWriterAdapter, error) {
	if format != types.LogFormatCSV && format != types.LogFormatJSON {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported log format: %s", format))
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open status log").
			WithCause(err)
	}
	adapter := &StatusLogWriterAdapter{file: file, format: format}
	if format == types.LogFormatCSV {
		adapter.csv = csv.NewWriter(file)
	}
	return adapter, nil
}

func (a *StatusLogWriterAdapter) Append(records []types.StatusRecord) error {
	switch a.format {
	case types.LogFormatCSV:
		for _, record := range records {
			if err := a.csv.Write(recordToRow(record)); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to write status log row").
					WithCause(err)
			}
		}
		a.csv.Flush()
		if err := a.csv.Error(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to flush status log").
				WithCause(err)
		}
		return nil
	case types.LogFormatJSON:
		writer := bufio.NewWriter(a.file)
		encoder := json.NewEncoder(writer)
		for _, record := range records {
			if err := encoder.Encode(recordToJSON(record)); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to write status log line").
					WithCause(err)
			}
		}
		if err := writer.Flush(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to flush status log").
				WithCause(err)
		}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported log format: %s", a.format))
	}
}

func (a *StatusLogWriterAdapter) Close() error {
	return a.file.Close()
}

// StatusLogReaderAdapter loads a whole status log back into memory for
// session analysis.
type StatusLogReaderAdapter struct{}

func NewStatusLogReaderAdapter() StatusLogReaderAdapter {
	return StatusLogReaderAdapter{}
}

func (a StatusLogReaderAdapter) ReadStatusLog(path string, format types.LogFormat) ([]types.StatusRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("status log not found").
			WithCause(err)
	}
	switch format {
	case types.LogFormatCSV:
		return parseCSVLog(data)
	case types.LogFormatJSON:
		return parseJSONLog(data)
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported log format: %s", format))
	}
}

// CSV row layout:
// uid,first_name,last_name,screen_name,online,last_seen_unix,platform,observed_at
func recordToRow(record types.StatusRecord) []string {
	lastSeen := ""
	platform := ""
	if !record.LastSeen.IsZero() {
		lastSeen = strconv.FormatInt(record.LastSeen.Time.Unix(), 10)
		platform = strconv.Itoa(int(record.LastSeen.Platform))
	}
	return []string{
		strconv.FormatInt(record.UID, 10),
		record.FirstName,
		record.LastName,
		record.ScreenName,
		strconv.FormatBool(record.Online),
		lastSeen,
		platform,
		record.ObservedAt.UTC().Format(observedAtLayout),
	}
}

type statusRecordJSON struct {
	UID          int64  `json:"uid"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ScreenName   string `json:"screen_name"`
	Online       bool   `json:"online"`
	LastSeenUnix int64  `json:"last_seen,omitempty"`
	Platform     int    `json:"platform,omitempty"`
	ObservedAt   string `json:"observed_at"`
}

func recordToJSON(record types.StatusRecord) statusRecordJSON {
	out := statusRecordJSON{
		UID:        record.UID,
		FirstName:  record.FirstName,
		LastName:   record.LastName,
		ScreenName: record.ScreenName,
		Online:     record.Online,
		ObservedAt: record.ObservedAt.UTC().Format(observedAtLayout),
	}
	if !record.LastSeen.IsZero() {
		out.LastSeenUnix = record.LastSeen.Time.Unix()
		out.Platform = int(record.LastSeen.Platform)
	}
	return out
}

func parseCSVLog(data []byte) ([]types.StatusRecord, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = 8
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse status log csv").
			WithCause(err)
	}
	records := make([]types.StatusRecord, 0, len(rows))
	for _, row := range rows {
		record, err := rowToRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func rowToRecord(row []string) (types.StatusRecord, error) {
	fail := func(cause error) (types.StatusRecord, error) {
		return types.StatusRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("malformed status log row").
			WithCause(cause)
	}
	uid, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return fail(err)
	}
	online, err := strconv.ParseBool(row[4])
	if err != nil {
		return fail(err)
	}
	observedAt, err := time.Parse(observedAtLayout, row[7])
	if err != nil {
		return fail(err)
	}
	record := types.StatusRecord{
		UID:        uid,
		FirstName:  row[1],
		LastName:   row[2],
		ScreenName: row[3],
		Online:     online,
		ObservedAt: observedAt,
	}
	if row[5] != "" {
		unix, err := strconv.ParseInt(row[5], 10, 64)
		if err != nil {
			return fail(err)
		}
		platform := 0
		if row[6] != "" {
			platform, err = strconv.Atoi(row[6])
			if err != nil {
				return fail(err)
			}
		}
		record.LastSeen = types.LastSeen{
			Time:     time.Unix(unix, 0).UTC(),
			Platform: types.Platform(platform),
		}
	}
	return record, nil
}

func parseJSONLog(data []byte) ([]types.StatusRecord, error) {
	var records []types.StatusRecord
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		var payload statusRecordJSON
		if err := json.Unmarshal([]byte(text), &payload); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed status log line %d", line)).
				WithCause(err)
		}
		observedAt, err := time.Parse(observedAtLayout, payload.ObservedAt)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed status log line %d", line)).
				WithCause(err)
		}
		record := types.StatusRecord{
			UID:        payload.UID,
			FirstName:  payload.FirstName,
			LastName:   payload.LastName,
			ScreenName: payload.ScreenName,
			Online:     payload.Online,
			ObservedAt: observedAt,
		}
		if payload.LastSeenUnix > 0 {
			record.LastSeen = types.LastSeen{
				Time:     time.Unix(payload.LastSeenUnix, 0).UTC(),
				Platform: types.Platform(payload.Platform),
			}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to scan status log").
			WithCause(err)
	}
	return records, nil
}
