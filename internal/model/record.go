package model

// Origin identifies the source a billing record was extracted from. The
// string forms are the source labels written into exported artifacts.
type Origin string

const (
	OriginPersonalLog    Origin = "MA_FACTURATION"
	OriginFacilityReport Origin = "RAPPORT_HOPITAL"
)

// BillingRecord is one billed treatment session in canonical form: one
// atomic billing code, for one patient file, on one day of the month.
// Records are immutable once extracted; FileNumber, PatientName, and Code
// are never empty and Day is always in 1-31.
type BillingRecord struct {
	Day         int    // day of month
	FileNumber  string // canonical patient file number
	PatientName string // normalized patient name
	Code        string // atomic billing code, see AllBillingCodes
	Origin      Origin
}
