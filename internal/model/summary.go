package model

import "time"

// CompareSummary captures metrics from a single comparison run.
type CompareSummary struct {
	RunID           string
	PersonalPath    string
	PersonalSHA256  string
	FacilityPath    string
	FacilitySHA256  string
	RowsPersonal    int64
	RowsFacility    int64
	RecordsPersonal int64
	RecordsFacility int64
	RecordsByCode   map[string]int64
	Matched         int64
	PersonalOnly    int64
	FacilityOnly    int64
	OutputPath      string
	ArchivePath     string
	DurationRead    time.Duration
	DurationCompare time.Duration
	DurationExport  time.Duration
	DurationTotal   time.Duration
}
