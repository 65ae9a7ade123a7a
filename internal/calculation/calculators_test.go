package calculation

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), append([]interface{}{"got %s, want %s", got, want}, msgAndArgs...)...)
}

func TestMortgage(t *testing.T) {
	engine := NewCalculationEngine()

	t.Run("reference emi", func(t *testing.T) {
		r, err := engine.Mortgage(domain.MortgageInput{
			Principal:     dec("640000"),
			AnnualRate:    dec("3.5"),
			TenureYears:   25,
			PropertyValue: decPtr("800000"),
		})
		require.NoError(t, err)
		assert.InDelta(t, 3203.99, r.MonthlyPayment.InexactFloat64(), 0.01)
		assert.Equal(t, 300, r.NumPayments)
		assert.True(t, r.TotalPayment.Equal(r.MonthlyPayment.Mul(decimal.NewFromInt(300))))
		assert.True(t, r.TotalInterest.Equal(r.TotalPayment.Sub(dec("640000"))))
		assertDec(t, "80", r.LoanToValueRatio)
	})

	t.Run("zero rate", func(t *testing.T) {
		r, err := engine.Mortgage(domain.MortgageInput{Principal: dec("360000"), AnnualRate: decimal.Zero, TenureYears: 30})
		require.NoError(t, err)
		assertDec(t, "1000", r.MonthlyPayment)
		assertDec(t, "360000", r.TotalPayment)
		assert.True(t, r.TotalInterest.IsZero())
		assert.True(t, r.LoanToValueRatio.IsZero(), "no property value means no LTV")
	})

	invalid := []struct {
		name  string
		in    domain.MortgageInput
		field string
	}{
		{"zero principal", domain.MortgageInput{AnnualRate: dec("3"), TenureYears: 25}, "principal"},
		{"negative rate", domain.MortgageInput{Principal: dec("1"), AnnualRate: dec("-1"), TenureYears: 25}, "annualRate"},
		{"zero tenure", domain.MortgageInput{Principal: dec("1"), AnnualRate: dec("3")}, "tenureYears"},
		{"tenure months overflow", domain.MortgageInput{Principal: dec("1"), AnnualRate: dec("3"), TenureYears: maxYears + 1}, "tenureYears"},
		{"negative property", domain.MortgageInput{Principal: dec("1"), AnnualRate: dec("3"), TenureYears: 1, PropertyValue: decPtr("-5")}, "propertyValue"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Mortgage(tt.in)
			require.Error(t, err)
			ce, ok := domain.AsCalculationError(err)
			require.True(t, ok)
			assert.Equal(t, domain.MissingOrInvalidField, ce.Kind)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestStampDuties(t *testing.T) {
	engine := NewCalculationEngine()

	t.Run("bsd one million", func(t *testing.T) {
		r, err := engine.BSD(domain.BSDInput{PropertyValue: dec("1000000")})
		require.NoError(t, err)
		assertDec(t, "24600", r.BSD)
		assert.Len(t, r.Breakdown, 3)
	})

	t.Run("bsd zero value is a zero result", func(t *testing.T) {
		r, err := engine.BSD(domain.BSDInput{PropertyValue: decimal.Zero})
		require.NoError(t, err)
		assert.True(t, r.BSD.IsZero())
		assert.Empty(t, r.Breakdown)
	})

	absd := []struct {
		category domain.BuyerCategory
		want     string
		rate     string
	}{
		{domain.CitizenFirst, "0", "0"},
		{domain.CitizenSecond, "200000", "20"},
		{domain.CitizenThird, "300000", "30"},
		{domain.PRFirst, "50000", "5"},
		{domain.PRSubsequent, "300000", "30"},
		{domain.ForeignerBuyer, "600000", "60"},
	}
	for _, tt := range absd {
		t.Run("absd "+string(tt.category), func(t *testing.T) {
			r, err := engine.ABSD(domain.ABSDInput{PropertyValue: dec("1000000"), BuyerCategory: tt.category})
			require.NoError(t, err)
			assertDec(t, tt.want, r.ABSD)
			assertDec(t, tt.rate, r.ABSDRate)
			assert.NotEmpty(t, r.Explanation)
		})
	}

	t.Run("absd unknown category is rejected", func(t *testing.T) {
		_, err := engine.ABSD(domain.ABSDInput{PropertyValue: dec("1000000"), BuyerCategory: "martian"})
		assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
	})

	t.Run("absd missing category is rejected", func(t *testing.T) {
		_, err := engine.ABSD(domain.ABSDInput{PropertyValue: dec("1000000")})
		assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
	})

	ssd := []struct {
		holding string
		year    int
		want    string
	}{
		{"0.5", 1, "100000"},
		{"1.5", 2, "75000"},
		{"2.2", 3, "50000"},
		{"4", 4, "25000"},
		{"4.5", 5, "0"},
	}
	for _, tt := range ssd {
		t.Run("ssd "+tt.holding, func(t *testing.T) {
			r, err := engine.SSD(domain.SSDInput{PropertyValue: dec("500000"), HoldingPeriodYears: dec(tt.holding)})
			require.NoError(t, err)
			assert.Equal(t, tt.year, r.HoldingYear)
			assertDec(t, tt.want, r.SSD)
		})
	}

	t.Run("ssd requires a holding period", func(t *testing.T) {
		_, err := engine.SSD(domain.SSDInput{PropertyValue: dec("500000")})
		assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
	})

	t.Run("combined stamp duty", func(t *testing.T) {
		s, err := engine.StampDuty(dec("1000000"), domain.CitizenSecond, decPtr("1.5"))
		require.NoError(t, err)
		assertDec(t, "24600", s.BSD)
		assertDec(t, "200000", s.ABSD)
		assertDec(t, "150000", s.SSD)
		assertDec(t, "374600", s.Total)

		s, err = engine.StampDuty(dec("1000000"), domain.CitizenFirst, nil)
		require.NoError(t, err)
		assertDec(t, "24600", s.Total)
	})
}

func TestTDSR(t *testing.T) {
	engine := NewCalculationEngine()

	r, err := engine.TDSR(domain.TDSRInput{MonthlyIncome: dec("10000"), ExistingDebts: dec("3000"), NewLoanEMI: dec("2000")})
	require.NoError(t, err)
	assertDec(t, "50", r.TDSRPercentage)
	assertDec(t, "5000", r.TotalDebts)
	assertDec(t, "5500", r.MaxAllowedDebts)
	assert.True(t, r.IsWithinLimit)

	r, err = engine.TDSR(domain.TDSRInput{MonthlyIncome: dec("10000"), ExistingDebts: dec("4000"), NewLoanEMI: dec("2000")})
	require.NoError(t, err)
	assertDec(t, "60", r.TDSRPercentage)
	assert.False(t, r.IsWithinLimit)

	r, err = engine.TDSR(domain.TDSRInput{MonthlyIncome: dec("10000"), ExistingDebts: dec("5500")})
	require.NoError(t, err)
	assert.True(t, r.IsWithinLimit, "exactly at the limit is within it")

	_, err = engine.TDSR(domain.TDSRInput{MonthlyIncome: decimal.Zero})
	assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
}

func TestCPF(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name      string
		in        domain.CPFInput
		employee  string
		employer  string
		total     string
		annual    string
		capped    string
		voluntary string
	}{
		{
			name:     "citizen under 55",
			in:       domain.CPFInput{MonthlySalary: dec("5000"), Age: 30, ResidencyStatus: domain.Citizen},
			employee: "1000", employer: "850", total: "1850", annual: "22200", capped: "5000", voluntary: "0",
		},
		{
			name:     "salary above ceiling with voluntary top-up",
			in:       domain.CPFInput{MonthlySalary: dec("10000"), Age: 57, ResidencyStatus: domain.Citizen, VoluntaryContribution: decPtr("100")},
			employee: "962", employer: "962", total: "2024", annual: "24288", capped: "7400", voluntary: "100",
		},
		{
			name:     "citizen over 65",
			in:       domain.CPFInput{MonthlySalary: dec("4000"), Age: 70, ResidencyStatus: domain.Citizen},
			employee: "200", employer: "300", total: "500", annual: "6000", capped: "4000", voluntary: "0",
		},
		{
			name:     "pr first year",
			in:       domain.CPFInput{MonthlySalary: dec("4000"), Age: 30, ResidencyStatus: domain.PermanentResident, PRYear: 1},
			employee: "200", employer: "680", total: "880", annual: "10560", capped: "4000", voluntary: "0",
		},
		{
			name:     "pr later year",
			in:       domain.CPFInput{MonthlySalary: dec("4000"), Age: 30, ResidencyStatus: domain.PermanentResident, PRYear: 2},
			employee: "600", employer: "680", total: "1280", annual: "15360", capped: "4000", voluntary: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := engine.CPF(tt.in)
			require.NoError(t, err)
			assertDec(t, tt.employee, r.EmployeeContribution)
			assertDec(t, tt.employer, r.EmployerContribution)
			assertDec(t, tt.total, r.TotalContribution)
			assertDec(t, tt.annual, r.AnnualContribution)
			assertDec(t, tt.capped, r.ContributableSalary)
			assertDec(t, tt.voluntary, r.VoluntaryContribution)

			sum := r.EmployeeContribution.Add(r.EmployerContribution).Add(r.VoluntaryContribution)
			assert.True(t, sum.Equal(r.TotalContribution))
			assert.True(t, r.TotalContribution.Mul(decimal.NewFromInt(12)).Equal(r.AnnualContribution))
		})
	}

	t.Run("unknown residency", func(t *testing.T) {
		_, err := engine.CPF(domain.CPFInput{MonthlySalary: dec("4000"), Age: 30, ResidencyStatus: "tourist"})
		ce, ok := domain.AsCalculationError(err)
		require.True(t, ok)
		assert.Equal(t, "residencyStatus", ce.Field)
	})

	t.Run("missing age", func(t *testing.T) {
		_, err := engine.CPF(domain.CPFInput{MonthlySalary: dec("4000"), ResidencyStatus: domain.Citizen})
		assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
	})
}

func TestIncomeTax(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name       string
		in         domain.IncomeTaxInput
		chargeable string
		before     string
		rebate     string
		payable    string
		marginal   string
	}{
		{
			name:       "first bracket is tax free",
			in:         domain.IncomeTaxInput{AnnualIncome: dec("20000"), IsResident: true},
			chargeable: "20000", before: "0", rebate: "0", payable: "0", marginal: "0",
		},
		{
			name:       "rebate capped",
			in:         domain.IncomeTaxInput{AnnualIncome: dec("50000"), IsResident: true},
			chargeable: "50000", before: "1250", rebate: "200", payable: "1050", marginal: "7",
		},
		{
			name:       "small tax halved by rebate",
			in:         domain.IncomeTaxInput{AnnualIncome: dec("25000"), IsResident: true},
			chargeable: "25000", before: "100", rebate: "50", payable: "50", marginal: "2",
		},
		{
			name:       "reliefs reduce chargeable income",
			in:         domain.IncomeTaxInput{AnnualIncome: dec("100000"), IsResident: true, Reliefs: decPtr("20000")},
			chargeable: "80000", before: "3350", rebate: "200", payable: "3150", marginal: "7",
		},
		{
			name:       "reliefs above income floor at zero",
			in:         domain.IncomeTaxInput{AnnualIncome: dec("10000"), IsResident: true, Reliefs: decPtr("15000")},
			chargeable: "0", before: "0", rebate: "0", payable: "0", marginal: "0",
		},
		{
			name:       "non-resident flat rate",
			in:         domain.IncomeTaxInput{AnnualIncome: dec("100000"), IsResident: false, Reliefs: decPtr("20000")},
			chargeable: "100000", before: "15000", rebate: "0", payable: "15000", marginal: "15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := engine.IncomeTax(tt.in)
			require.NoError(t, err)
			assertDec(t, tt.chargeable, r.ChargeableIncome)
			assertDec(t, tt.before, r.TaxBeforeRebate)
			assertDec(t, tt.rebate, r.Rebate)
			assertDec(t, tt.payable, r.TaxPayable)
			assertDec(t, tt.marginal, r.MarginalRate)
			if tt.in.IsResident {
				assert.True(t, domain.SumTax(r.Breakdown).Equal(r.TaxBeforeRebate))
			}
		})
	}

	r, err := engine.IncomeTax(domain.IncomeTaxInput{AnnualIncome: dec("50000"), IsResident: true})
	require.NoError(t, err)
	assertDec(t, "2.1", r.EffectiveRate)

	_, err = engine.IncomeTax(domain.IncomeTaxInput{IsResident: true})
	assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
}

func TestCorporateTax(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name       string
		in         domain.CorporateTaxInput
		exemptions string
		chargeable string
		rebate     string
		payable    string
	}{
		{
			name:       "startup",
			in:         domain.CorporateTaxInput{TaxableIncome: dec("200000"), CompanyType: domain.CompanyStartup},
			exemptions: "118750", chargeable: "81250", rebate: "6906.25", payable: "6906.25",
		},
		{
			name:       "startup fully exempt",
			in:         domain.CorporateTaxInput{TaxableIncome: dec("80000"), CompanyType: domain.CompanyStartup},
			exemptions: "80000", chargeable: "0", rebate: "0", payable: "0",
		},
		{
			name:       "sme with capped rebate",
			in:         domain.CorporateTaxInput{TaxableIncome: dec("300000"), CompanyType: domain.CompanySME},
			exemptions: "17000", chargeable: "283000", rebate: "20000", payable: "28110",
		},
		{
			name:       "regular",
			in:         domain.CorporateTaxInput{TaxableIncome: dec("50000"), CompanyType: domain.CompanyRegular},
			exemptions: "0", chargeable: "50000", rebate: "4250", payable: "4250",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := engine.CorporateTax(tt.in)
			require.NoError(t, err)
			assertDec(t, tt.exemptions, r.Exemptions)
			assertDec(t, tt.chargeable, r.ChargeableIncome)
			assertDec(t, tt.rebate, r.Rebate)
			assertDec(t, tt.payable, r.TaxPayable)
			assertDec(t, "17", r.MarginalRate)
		})
	}

	_, err := engine.CorporateTax(domain.CorporateTaxInput{TaxableIncome: dec("1000"), CompanyType: "llp"})
	assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
}

func TestInvestment(t *testing.T) {
	engine := NewCalculationEngine()

	t.Run("monthly compounding", func(t *testing.T) {
		r, err := engine.Investment(domain.InvestmentInput{
			InitialInvestment:   dec("10000"),
			MonthlyContribution: dec("500"),
			AnnualReturn:        dec("6"),
			Years:               10,
		})
		require.NoError(t, err)
		assert.InDelta(t, 100133.64, r.TotalValue.InexactFloat64(), 0.01)
		assertDec(t, "70000", r.TotalInvested)
		assert.InDelta(t, 43.048, r.ROI.InexactFloat64(), 0.001)
		assert.InDelta(t, 3.645, r.AnnualizedReturn.InexactFloat64(), 0.001)
		assert.True(t, r.TotalGains.Equal(r.TotalValue.Sub(r.TotalInvested)))
	})

	t.Run("zero return", func(t *testing.T) {
		r, err := engine.Investment(domain.InvestmentInput{InitialInvestment: dec("10000"), Years: 5})
		require.NoError(t, err)
		assertDec(t, "10000", r.TotalValue)
		assert.True(t, r.ROI.IsZero())
		assert.InDelta(t, 0, r.AnnualizedReturn.InexactFloat64(), 1e-12)
	})

	t.Run("nothing invested is undefined", func(t *testing.T) {
		_, err := engine.Investment(domain.InvestmentInput{AnnualReturn: dec("5"), Years: 5})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUndefinedComputation))
		assert.False(t, errors.Is(err, domain.ErrMissingOrInvalidField))
	})

	t.Run("zero years is invalid", func(t *testing.T) {
		_, err := engine.Investment(domain.InvestmentInput{InitialInvestment: dec("100")})
		assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
	})
}

func TestHDBUpgrade(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name      string
		in        domain.HDBUpgradeInput
		net       string
		available string
		needed    string
		canAfford bool
	}{
		{
			name:      "proceeds cover target",
			in:        domain.HDBUpgradeInput{HDBValue: dec("500000"), OutstandingLoan: dec("200000"), CPFUsed: decPtr("100000"), AccruedInterest: decPtr("20000"), TargetDownPayment: decPtr("150000")},
			net:       "180000", available: "180000", needed: "0", canAfford: true,
		},
		{
			name:      "shortfall",
			in:        domain.HDBUpgradeInput{HDBValue: dec("500000"), OutstandingLoan: dec("200000"), CPFUsed: decPtr("100000"), AccruedInterest: decPtr("20000"), TargetDownPayment: decPtr("200000")},
			net:       "180000", available: "180000", needed: "20000", canAfford: false,
		},
		{
			name:      "negative equity",
			in:        domain.HDBUpgradeInput{HDBValue: dec("300000"), OutstandingLoan: dec("350000"), TargetDownPayment: decPtr("10000")},
			net:       "-50000", available: "0", needed: "10000", canAfford: false,
		},
		{
			name:      "fully paid flat without target",
			in:        domain.HDBUpgradeInput{HDBValue: dec("400000"), OutstandingLoan: decimal.Zero},
			net:       "400000", available: "400000", needed: "0", canAfford: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := engine.HDBUpgrade(tt.in)
			require.NoError(t, err)
			assertDec(t, tt.net, r.NetProceeds)
			assertDec(t, tt.available, r.AvailableForUpgrade)
			assertDec(t, tt.needed, r.AdditionalCashNeeded)
			assert.Equal(t, tt.canAfford, r.CanAffordUpgrade)
		})
	}

	_, err := engine.HDBUpgrade(domain.HDBUpgradeInput{OutstandingLoan: dec("1")})
	assert.True(t, errors.Is(err, domain.ErrMissingOrInvalidField))
}

func TestAffordability(t *testing.T) {
	engine := NewCalculationEngine()

	t.Run("within headroom", func(t *testing.T) {
		r, err := engine.Affordability(domain.AffordabilityInput{
			MonthlyIncome:        dec("10000"),
			MonthlyExpenses:      dec("2000"),
			MonthlyDebts:         dec("1000"),
			AvailableDownPayment: dec("200000"),
			AnnualRate:           dec("3.5"),
			TenureYears:          25,
		})
		require.NoError(t, err)
		assertDec(t, "4500", r.MaxMonthlyInstalment)
		assert.InDelta(t, 898878.97, r.MaxLoanAmount.InexactFloat64(), 0.01)
		assert.True(t, r.MaxPropertyValue.Equal(r.MaxLoanAmount.Add(dec("200000"))))
		assert.InDelta(t, 4500, r.MonthlyPayment.InexactFloat64(), 0.01)
		assert.InDelta(t, 2500, r.RemainingIncome.InexactFloat64(), 0.01)
	})

	t.Run("no headroom", func(t *testing.T) {
		r, err := engine.Affordability(domain.AffordabilityInput{
			MonthlyIncome:        dec("1000"),
			MonthlyDebts:         dec("600"),
			AvailableDownPayment: dec("50000"),
			AnnualRate:           dec("3"),
			TenureYears:          20,
		})
		require.NoError(t, err)
		assert.True(t, r.MaxLoanAmount.IsZero())
		assert.True(t, r.MonthlyPayment.IsZero())
		assertDec(t, "50000", r.MaxPropertyValue)
		assertDec(t, "400", r.RemainingIncome)
	})

	t.Run("zero rate", func(t *testing.T) {
		r, err := engine.Affordability(domain.AffordabilityInput{
			MonthlyIncome: dec("10000"),
			AnnualRate:    decimal.Zero,
			TenureYears:   10,
		})
		require.NoError(t, err)
		assertDec(t, "660000", r.MaxLoanAmount)
		assertDec(t, "5500", r.MonthlyPayment)
	})
}
