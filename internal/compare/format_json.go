package compare

import (
	"encoding/json"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

type jsonComparison struct {
	*ComparisonSet
	// ReportIDs maps scenario names to the ids of their reports.
	ReportIDs map[string]string `json:"reportIds"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	doc := jsonComparison{ComparisonSet: compSet, ReportIDs: map[string]string{}}
	if b := compSet.BaseResult; b != nil && b.Report != nil {
		doc.ReportIDs[b.ScenarioName] = b.Report.ID
	}
	for _, alt := range compSet.AlternativeResults {
		if alt.Report != nil {
			doc.ReportIDs[alt.ScenarioName] = alt.Report.ID
		}
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
