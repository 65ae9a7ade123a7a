package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/shopspring/decimal"
)

// Validator checks calculator inputs against their validate struct tags.
// Every domain in the registry is available as a tag of the same name.
type Validator struct {
	registry *Registry
	validate *validator.Validate
}

// New builds a Validator from the domains registered at the time of the call.
// It panics if a domain name is not a usable tag name.
func New(registry *Registry) *Validator {
	if registry == nil {
		registry = DefaultRegistry()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	for _, name := range registry.Names() {
		rule, _ := registry.Rule(name)
		if err := v.RegisterValidation(name, rangeFunc(rule)); err != nil {
			panic(fmt.Sprintf("validation: register domain %q: %v", name, err))
		}
	}

	return &Validator{registry: registry, validate: v}
}

func rangeFunc(rule Rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		f := fl.Field()
		switch f.Kind() {
		case reflect.Float32, reflect.Float64:
			return rule.Check(decimal.NewFromFloat(f.Float()))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rule.Check(decimal.NewFromInt(f.Int()))
		}
		return false
	}
}

// Registry returns the registry the validator was built from.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Struct validates a calculator input and returns one outcome per failing
// field. An empty slice means the input is valid.
func (v *Validator) Struct(in domain.Input) []Outcome {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Outcome{{Valid: false, Reason: err.Error()}}
	}

	outcomes := make([]Outcome, 0, len(verrs))
	for _, fe := range verrs {
		outcomes = append(outcomes, Outcome{
			Valid:  false,
			Field:  fe.Field(),
			Reason: v.describe(fe),
		})
	}
	return outcomes
}

// Check validates a calculator input and returns the first failure as a
// MissingOrInvalidField error.
func (v *Validator) Check(in domain.Input) error {
	outcomes := v.Struct(in)
	if len(outcomes) == 0 {
		return nil
	}
	o := outcomes[0]
	return domain.InvalidField(in.Calculator(), o.Field, o.Reason)
}

func (v *Validator) describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	if rule, ok := v.registry.Rule(fe.Tag()); ok {
		return fmt.Sprintf("must be within %s", rule)
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
