package statement

import (
	"sort"
	"strings"
)

// Row is one 科目 line in a reshaped statement view.
type Row struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Yi    float64 `json:"value_yi"`
}

// Reshape turns one period of a wide statement into the one-metric-per-row
// view: each populated field becomes a row with its Chinese label and the
// value converted to 亿. Zero values and vendor _YOY growth columns are
// dropped. The dictionary order of the sheet decides row order; fields the
// dictionary does not know come after, sorted by code, labelled "-".
//
// reportDate selects the period by exact match; when empty or not found the
// latest period is used. The actual report date is returned with the rows.
func (s *Statement) Reshape(reportDate string) (string, []Row) {
	if len(s.Periods) == 0 {
		return "", nil
	}
	p := &s.Periods[len(s.Periods)-1]
	if reportDate != "" {
		for i := range s.Periods {
			if s.Periods[i].ReportDate == reportDate {
				p = &s.Periods[i]
				break
			}
		}
	}

	rows := make([]Row, 0, len(p.Fields))
	seen := make(map[string]bool, len(p.Fields))
	for _, fl := range SheetFields(s.Sheet) {
		if seen[fl.Code] {
			continue
		}
		if v, ok := p.Fields[fl.Code]; ok && v != 0 {
			rows = append(rows, Row{Code: fl.Code, Label: fl.Label, Yi: ToYi(v)})
			seen[fl.Code] = true
		}
	}

	var extra []string
	for code, v := range p.Fields {
		if seen[code] || v == 0 || strings.Contains(code, "_YOY") {
			continue
		}
		extra = append(extra, code)
	}
	sort.Strings(extra)
	for _, code := range extra {
		label := Label(code)
		if label == code {
			label = "-"
		}
		rows = append(rows, Row{Code: code, Label: label, Yi: ToYi(p.Fields[code])})
	}

	return p.ReportDate, rows
}
