package domain

import "github.com/shopspring/decimal"

// FieldKind tags a result or input field with its presentation semantics.
type FieldKind string

const (
	KindCurrency   FieldKind = "currency"
	KindPercentage FieldKind = "percentage"
	KindNumber     FieldKind = "number"
	KindCount      FieldKind = "count"
	KindFlag       FieldKind = "flag"
	KindText       FieldKind = "text"
	KindChoice     FieldKind = "choice"
)

// Field is one labelled output value. Exactly one of Value, Flag or Text is
// meaningful, depending on Kind.
type Field struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Kind  FieldKind       `json:"kind"`
	Value decimal.Decimal `json:"value"`
	Flag  bool            `json:"flag,omitempty"`
	Text  string          `json:"text,omitempty"`
}

func currencyField(key, label string, v decimal.Decimal) Field {
	return Field{Key: key, Label: label, Kind: KindCurrency, Value: v}
}

func percentField(key, label string, v decimal.Decimal) Field {
	return Field{Key: key, Label: label, Kind: KindPercentage, Value: v}
}

func numberField(key, label string, v decimal.Decimal) Field {
	return Field{Key: key, Label: label, Kind: KindNumber, Value: v}
}

func countField(key, label string, n int) Field {
	return Field{Key: key, Label: label, Kind: KindCount, Value: decimal.NewFromInt(int64(n))}
}

func flagField(key, label string, b bool) Field {
	return Field{Key: key, Label: label, Kind: KindFlag, Flag: b}
}

func textField(key, label, text string) Field {
	return Field{Key: key, Label: label, Kind: KindText, Text: text}
}

// FieldByKey returns the field with the given key from a result.
func FieldByKey(r Result, key string) (Field, bool) {
	for _, f := range r.Fields() {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
