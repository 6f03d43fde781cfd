package model

// BillingCode is one atomic treatment code together with the marker
// substrings that identify it inside a free-text billing cell.
type BillingCode struct {
	Name    string   // canonical form, e.g. "M 24"
	Markers []string // substrings searched in the uppercased cell text
}

// AllBillingCodes lists the recognized treatment codes in canonical order.
// Markers are tested independently, so one cell can mention several codes
// ("K-1 + RECOND") and each match emits its own record.
var AllBillingCodes = []BillingCode{
	{Name: "M 24", Markers: []string{"M24"}},
	{Name: "M 6", Markers: []string{"M6", "M 6"}},
	{Name: "K-1", Markers: []string{"K-1"}},
	{Name: "RECOND", Markers: []string{"RECOND"}},
	{Name: "K3/4", Markers: []string{"K3/4"}},
	{Name: "K 20", Markers: []string{"K20"}},
	{Name: "K 15", Markers: []string{"K15"}},
}

// BillingCodeNames returns just the canonical names for all codes.
func BillingCodeNames() []string {
	names := make([]string, len(AllBillingCodes))
	for i, bc := range AllBillingCodes {
		names[i] = bc.Name
	}
	return names
}

// CodeByName returns the BillingCode with the given canonical name, or ok=false.
func CodeByName(name string) (BillingCode, bool) {
	for _, bc := range AllBillingCodes {
		if bc.Name == name {
			return bc, true
		}
	}
	return BillingCode{}, false
}
