package calculation

import (
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// BSD computes Buyer's Stamp Duty over the progressive bracket table. A
// property value of zero or less yields a zero duty.
func (ce *CalculationEngine) BSD(in domain.BSDInput) (domain.BSDResult, error) {
	total, lines := AccumulateBrackets(in.PropertyValue, ce.Rates.BSD)
	return domain.BSDResult{
		PropertyValue: in.PropertyValue,
		BSD:           total,
		Breakdown:     lines,
	}, nil
}

// ABSD computes Additional Buyer's Stamp Duty as a flat rate of the property
// value selected by buyer category.
func (ce *CalculationEngine) ABSD(in domain.ABSDInput) (domain.ABSDResult, error) {
	calc := domain.CalcABSD
	if err := nonNegative(calc, "propertyValue", in.PropertyValue); err != nil {
		return domain.ABSDResult{}, err
	}
	if in.BuyerCategory == "" {
		return domain.ABSDResult{}, domain.InvalidField(calc, "buyerCategory", "is required")
	}
	rate, explanation, ok := ce.Rates.ABSDRate(in.BuyerCategory)
	if !ok {
		return domain.ABSDResult{}, domain.InvalidField(calc, "buyerCategory", "unknown buyer category "+string(in.BuyerCategory))
	}

	return domain.ABSDResult{
		PropertyValue: in.PropertyValue,
		BuyerCategory: in.BuyerCategory,
		ABSDRate:      rate.Mul(hundred),
		ABSD:          in.PropertyValue.Mul(rate),
		Explanation:   explanation,
	}, nil
}

// SSD computes Seller's Stamp Duty from the holding year the sale falls in.
// Sales after the last year in the table carry no duty.
func (ce *CalculationEngine) SSD(in domain.SSDInput) (domain.SSDResult, error) {
	calc := domain.CalcSSD
	if err := firstError(
		nonNegative(calc, "propertyValue", in.PropertyValue),
		positive(calc, "holdingPeriodYears", in.HoldingPeriodYears),
	); err != nil {
		return domain.SSDResult{}, err
	}

	year, rate, explanation := ce.Rates.SSDRate(in.HoldingPeriodYears)
	return domain.SSDResult{
		PropertyValue:      in.PropertyValue,
		HoldingPeriodYears: in.HoldingPeriodYears,
		HoldingYear:        year,
		SSDRate:            rate.Mul(hundred),
		SSD:                in.PropertyValue.Mul(rate),
		Explanation:        explanation,
	}, nil
}

// StampDuty combines BSD, ABSD and SSD on one property. SSD is only included
// when a holding period is given.
func (ce *CalculationEngine) StampDuty(propertyValue decimal.Decimal, category domain.BuyerCategory, holdingPeriodYears *decimal.Decimal) (domain.StampDutySummary, error) {
	bsd, err := ce.BSD(domain.BSDInput{PropertyValue: propertyValue})
	if err != nil {
		return domain.StampDutySummary{}, err
	}
	absd, err := ce.ABSD(domain.ABSDInput{PropertyValue: propertyValue, BuyerCategory: category})
	if err != nil {
		return domain.StampDutySummary{}, err
	}

	ssd := decimal.Zero
	if holdingPeriodYears != nil {
		r, err := ce.SSD(domain.SSDInput{PropertyValue: propertyValue, HoldingPeriodYears: *holdingPeriodYears})
		if err != nil {
			return domain.StampDutySummary{}, err
		}
		ssd = r.SSD
	}

	return domain.StampDutySummary{
		BSD:   bsd.BSD,
		ABSD:  absd.ABSD,
		SSD:   ssd,
		Total: bsd.BSD.Add(absd.ABSD).Add(ssd),
	}, nil
}
