package calculation

import (
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/rates"
	"github.com/shopspring/decimal"
)

// IncomeTax computes personal income tax for a year of assessment.
// Non-residents pay a flat rate on gross income with no rebate. Residents are
// taxed progressively on income less reliefs, then receive the rebate.
func (ce *CalculationEngine) IncomeTax(in domain.IncomeTaxInput) (domain.IncomeTaxResult, error) {
	calc := domain.CalcIncomeTax
	if err := firstError(
		positive(calc, "annualIncome", in.AnnualIncome),
		optionalNonNegative(calc, "reliefs", in.Reliefs),
	); err != nil {
		return domain.IncomeTaxResult{}, err
	}

	rules := ce.Rates.IncomeTax

	if !in.IsResident {
		tax := in.AnnualIncome.Mul(rules.NonResidentRate)
		pct := rules.NonResidentRate.Mul(hundred)
		return domain.IncomeTaxResult{
			IsResident:       false,
			ChargeableIncome: in.AnnualIncome,
			TaxBeforeRebate:  tax,
			Rebate:           decimal.Zero,
			TaxPayable:       tax,
			EffectiveRate:    pct,
			MarginalRate:     pct,
		}, nil
	}

	chargeable := decimal.Max(decimal.Zero, in.AnnualIncome.Sub(domain.OptionalOrZero(in.Reliefs)))
	tax, lines := AccumulateBrackets(chargeable, rules.Brackets)
	rebate := decimal.Min(tax.Mul(rules.RebateRate), rules.RebateCap)
	payable := decimal.Max(decimal.Zero, tax.Sub(rebate))

	ce.Logger.Debugf("income tax: chargeable=%s tax=%s rebate=%s", chargeable.StringFixed(2), tax.StringFixed(2), rebate.StringFixed(2))

	return domain.IncomeTaxResult{
		IsResident:       true,
		ChargeableIncome: chargeable,
		TaxBeforeRebate:  tax,
		Rebate:           rebate,
		TaxPayable:       payable,
		EffectiveRate:    payable.Div(in.AnnualIncome).Mul(hundred),
		MarginalRate:     rates.MarginalRate(chargeable, rules.Brackets).Mul(hundred),
		Breakdown:        lines,
	}, nil
}

// CorporateTax computes company income tax. The exemption scheme of the
// company type is subtracted from taxable income before the headline rate
// applies, then the rebate is deducted.
func (ce *CalculationEngine) CorporateTax(in domain.CorporateTaxInput) (domain.CorporateTaxResult, error) {
	calc := domain.CalcCorporateTax
	if err := positive(calc, "taxableIncome", in.TaxableIncome); err != nil {
		return domain.CorporateTaxResult{}, err
	}
	rules := ce.Rates.CorporateTax
	tiers, ok := rules.Exemptions[in.CompanyType]
	if !ok {
		return domain.CorporateTaxResult{}, domain.InvalidField(calc, "companyType", "unknown company type "+string(in.CompanyType))
	}

	exemptions := decimal.Zero
	remaining := in.TaxableIncome
	for _, tier := range tiers {
		if !remaining.IsPositive() {
			break
		}
		portion := decimal.Min(remaining, tier.Span)
		exemptions = exemptions.Add(portion.Mul(tier.Rate))
		remaining = remaining.Sub(portion)
	}

	chargeable := decimal.Max(decimal.Zero, in.TaxableIncome.Sub(exemptions))
	tax := chargeable.Mul(rules.StandardRate)
	rebate := decimal.Min(tax.Mul(rules.RebateRate), rules.RebateCap)
	payable := decimal.Max(decimal.Zero, tax.Sub(rebate))

	return domain.CorporateTaxResult{
		CompanyType:      in.CompanyType,
		Exemptions:       exemptions,
		ChargeableIncome: chargeable,
		TaxBeforeRebate:  tax,
		Rebate:           rebate,
		TaxPayable:       payable,
		EffectiveRate:    payable.Div(in.TaxableIncome).Mul(hundred),
		MarginalRate:     rules.StandardRate.Mul(hundred),
	}, nil
}
