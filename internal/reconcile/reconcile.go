package reconcile

import "github.com/aberthier/kinerecon/internal/model"

// Key identifies a billed session for matching. PatientName is deliberately
// absent: the two sources spell names differently, and the file number
// already identifies the patient.
type Key struct {
	FileNumber string
	Code       string
	Day        int
}

// KeyOf returns the match key for a record.
func KeyOf(r model.BillingRecord) Key {
	return Key{FileNumber: r.FileNumber, Code: r.Code, Day: r.Day}
}

// Result partitions the two record sets by key membership.
type Result struct {
	Matched      []model.BillingRecord // present in both; personal-log instance kept
	PersonalOnly []model.BillingRecord // billed but absent from the facility report
	FacilityOnly []model.BillingRecord // reported but absent from the personal log
}

// index holds one side's records keyed for matching. First-seen key order is
// preserved so partitions come out deterministic; duplicate keys within one
// side collapse to the last occurrence.
type index struct {
	byKey map[Key]model.BillingRecord
	order []Key
}

func buildIndex(records []model.BillingRecord) *index {
	ix := &index{byKey: make(map[Key]model.BillingRecord, len(records))}
	for _, r := range records {
		k := KeyOf(r)
		if _, seen := ix.byKey[k]; !seen {
			ix.order = append(ix.order, k)
		}
		ix.byKey[k] = r
	}
	return ix
}

// Compare partitions personal-log and facility-report records into matched,
// personal-only, and facility-only sets. Matching is exact on
// (file number, code, day); there is no cross-day tolerance.
func Compare(personal, facility []model.BillingRecord) *Result {
	p := buildIndex(personal)
	f := buildIndex(facility)

	res := &Result{}
	for _, k := range p.order {
		if _, ok := f.byKey[k]; ok {
			res.Matched = append(res.Matched, p.byKey[k])
		} else {
			res.PersonalOnly = append(res.PersonalOnly, p.byKey[k])
		}
	}
	for _, k := range f.order {
		if _, ok := p.byKey[k]; !ok {
			res.FacilityOnly = append(res.FacilityOnly, f.byKey[k])
		}
	}
	return res
}
