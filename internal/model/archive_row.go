package model

// ArchiveRow mirrors the Parquet schema for one extracted billing record in
// the optional records archive.
type ArchiveRow struct {
	Day         int32  `parquet:"day"`
	FileNumber  string `parquet:"file_number"`
	PatientName string `parquet:"patient_name"`
	Code        string `parquet:"code"`
	Origin      string `parquet:"origin"`
}

// NewArchiveRow converts a BillingRecord to its archive representation.
func NewArchiveRow(r BillingRecord) ArchiveRow {
	return ArchiveRow{
		Day:         int32(r.Day),
		FileNumber:  r.FileNumber,
		PatientName: r.PatientName,
		Code:        r.Code,
		Origin:      string(r.Origin),
	}
}

// Record converts an archive row back to a BillingRecord.
func (a ArchiveRow) Record() BillingRecord {
	return BillingRecord{
		Day:         int(a.Day),
		FileNumber:  a.FileNumber,
		PatientName: a.PatientName,
		Code:        a.Code,
		Origin:      Origin(a.Origin),
	}
}
