// Package models holds the records passed between the scraper and the report builder
package models

// InvestorRecord is one corporate shareholder row of the starting company
type InvestorRecord struct {
	Name               string `json:"name"`
	SharePercentage    string `json:"share_percentage"` // raw cell text, e.g. "12,5 %"
	ProfileLink        string `json:"profile_link"`
	RegistrationNumber string `json:"registration_number"`
}

// OwnerEntry is one row of a shareholder's own ownership table
type OwnerEntry struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// InvestigationResult is what a profile lookup found.
// A nil slice means the field is absent; a non-nil empty OwnerList is present.
type InvestigationResult struct {
	OtherInvestments []string     `json:"other_investments"`
	OwnerList        []OwnerEntry `json:"owner_list"`
}

// Empty reports whether neither field is present
func (r InvestigationResult) Empty() bool {
	return r.OtherInvestments == nil && r.OwnerList == nil
}

// Finding pairs an investor with its investigation, in extraction order
type Finding struct {
	Investor InvestorRecord
	Result   InvestigationResult
}
