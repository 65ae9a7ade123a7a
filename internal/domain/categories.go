package domain

import "fmt"

// BuyerCategory selects the ABSD rate.
type BuyerCategory string

const (
	CitizenFirst   BuyerCategory = "citizen_first"
	CitizenSecond  BuyerCategory = "citizen_second"
	CitizenThird   BuyerCategory = "citizen_third"
	PRFirst        BuyerCategory = "pr_first"
	PRSubsequent   BuyerCategory = "pr_subsequent"
	ForeignerBuyer BuyerCategory = "foreigner"
)

// BuyerCategories returns every buyer category in display order.
func BuyerCategories() []BuyerCategory {
	return []BuyerCategory{CitizenFirst, CitizenSecond, CitizenThird, PRFirst, PRSubsequent, ForeignerBuyer}
}

// ParseBuyerCategory returns the category named by s.
func ParseBuyerCategory(s string) (BuyerCategory, error) {
	for _, c := range BuyerCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown buyer category %q", s)
}

// ResidencyStatus selects the CPF contribution table.
type ResidencyStatus string

const (
	Citizen           ResidencyStatus = "citizen"
	PermanentResident ResidencyStatus = "pr"
)

// ParseResidencyStatus returns the status named by s.
func ParseResidencyStatus(s string) (ResidencyStatus, error) {
	switch ResidencyStatus(s) {
	case Citizen, PermanentResident:
		return ResidencyStatus(s), nil
	}
	return "", fmt.Errorf("unknown residency status %q", s)
}

// CompanyType selects the corporate tax exemption scheme.
type CompanyType string

const (
	CompanyStartup CompanyType = "startup"
	CompanySME     CompanyType = "sme"
	CompanyRegular CompanyType = "regular"
)

// CompanyTypes returns every company type in display order.
func CompanyTypes() []CompanyType {
	return []CompanyType{CompanyStartup, CompanySME, CompanyRegular}
}

// ParseCompanyType returns the type named by s.
func ParseCompanyType(s string) (CompanyType, error) {
	for _, c := range CompanyTypes() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown company type %q", s)
}
