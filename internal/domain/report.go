package domain

import "time"

// Preparer identifies the agent who prepared a report.
type Preparer struct {
	Name      string `yaml:"name" json:"name"`
	CEANumber string `yaml:"cea_number" json:"ceaNumber"`
	Mobile    string `yaml:"mobile" json:"mobile"`
	Email     string `yaml:"email" json:"email"`
}

// IsZero reports whether no preparer details were supplied.
func (p Preparer) IsZero() bool {
	return p.Name == "" && p.CEANumber == "" && p.Mobile == "" && p.Email == ""
}

// Client identifies who a report was prepared for.
type Client struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

// CalculationRequest is one unparsed calculation: a calculator id and its
// string-valued inputs keyed by the schema keys.
type CalculationRequest struct {
	Calculator CalculatorID      `yaml:"calculator" json:"calculator"`
	Label      string            `yaml:"label,omitempty" json:"label,omitempty"`
	Inputs     map[string]string `yaml:"inputs" json:"inputs"`
}

// Scenario is a named set of calculation requests.
type Scenario struct {
	ID           string               `yaml:"id,omitempty" json:"id,omitempty"`
	Name         string               `yaml:"name" json:"name"`
	Client       Client               `yaml:"client" json:"client"`
	Preparer     *Preparer            `yaml:"preparer,omitempty" json:"preparer,omitempty"`
	Calculations []CalculationRequest `yaml:"calculations" json:"calculations"`
	CreatedAt    time.Time            `yaml:"-" json:"createdAt,omitempty"`
	UpdatedAt    time.Time            `yaml:"-" json:"updatedAt,omitempty"`
}

// ReportEntry pairs a typed input with its result.
type ReportEntry struct {
	Label  string `json:"label,omitempty"`
	Input  Input  `json:"input"`
	Result Result `json:"result"`
}

// Calculator returns the calculator of the entry.
func (e ReportEntry) Calculator() CalculatorID {
	return e.Result.Calculator()
}

// Report is a set of calculations prepared for one client.
type Report struct {
	ID          string        `json:"id"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Preparer    Preparer      `json:"preparer"`
	Client      Client        `json:"client"`
	Entries     []ReportEntry `json:"entries"`
}

// Results returns the results of all entries in order.
func (r *Report) Results() []Result {
	out := make([]Result, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.Result)
	}
	return out
}

// Find returns the first entry for a calculator.
func (r *Report) Find(id CalculatorID) (ReportEntry, bool) {
	for _, e := range r.Entries {
		if e.Calculator() == id {
			return e, true
		}
	}
	return ReportEntry{}, false
}

// DeepCopy returns a copy of the scenario that shares no maps or slices with
// the original.
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}
	out := *s
	if s.Preparer != nil {
		p := *s.Preparer
		out.Preparer = &p
	}
	if s.Calculations != nil {
		out.Calculations = make([]CalculationRequest, len(s.Calculations))
		for i, c := range s.Calculations {
			if c.Inputs != nil {
				inputs := make(map[string]string, len(c.Inputs))
				for k, v := range c.Inputs {
					inputs[k] = v
				}
				c.Inputs = inputs
			}
			out.Calculations[i] = c
		}
	}
	return &out
}
