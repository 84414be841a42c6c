package types

// WatchList is a YAML file describing who to track and how often.
type WatchList struct {
	Users           []string `yaml:"users"`
	IntervalSeconds int      `yaml:"interval_seconds"`
}
