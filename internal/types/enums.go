package types

// Ecosystem selects the version-comparison semantics for a
// requirements file.
type Ecosystem string

const (
	EcosystemPip Ecosystem = "pip"
	EcosystemApt Ecosystem = "apt"
)

// LogFormat is the on-disk encoding of a status log.
type LogFormat string

const (
	LogFormatCSV  LogFormat = "csv"
	LogFormatJSON LogFormat = "json"
)

// ReportFormat is the encoding of a sessions report.
type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatJSON ReportFormat = "json"
)

// GroupBy is the bucketing applied to online sessions when reporting.
type GroupBy string

const (
	GroupByUser    GroupBy = "user"
	GroupByDate    GroupBy = "date"
	GroupByWeekday GroupBy = "weekday"
	GroupByHour    GroupBy = "hour"
)

type ConstraintOp string

const (
	ConstraintOpNone   ConstraintOp = ""
	ConstraintOpEq2    ConstraintOp = "=="
	ConstraintOpNe     ConstraintOp = "!="
	ConstraintOpCompat ConstraintOp = "~="
	ConstraintOpGte    ConstraintOp = ">="
	ConstraintOpLte    ConstraintOp = "<="
	ConstraintOpEq     ConstraintOp = "="
	ConstraintOpGt     ConstraintOp = ">"
	ConstraintOpLt     ConstraintOp = "<"
)
