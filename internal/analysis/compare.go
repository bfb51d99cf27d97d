package analysis

import (
	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

// Subject names one comparable figure: a metric table and a 科目 row in it.
type Subject struct {
	Table string `json:"table"`
	Row   string `json:"row"`
}

// CompanyTables pairs a company display name with its derived tables.
type CompanyTables struct {
	Name   string
	Tables []*Table
}

// Comparison holds one subject's value per company for a single year.
// Companies and Values are aligned; a company whose tables lack the
// subject or the year carries a missing value.
type Comparison struct {
	Subject   string            `json:"subject"`
	Companies []string          `json:"companies"`
	Values    []statement.Value `json:"values"`
}

// Cell returns the value of a 科目 row for a year, missing when the row
// or the year is not part of the table.
func (t *Table) Cell(row string, year int) statement.Value {
	if t == nil || year < t.Years[0] || year > t.Years[len(t.Years)-1] {
		return statement.Missing()
	}
	for i, label := range t.RowLabels {
		if label == row {
			return t.Cells[i][t.yearCol(year)]
		}
	}
	return statement.Missing()
}

// Compare assembles one year's values of the chosen subjects across
// companies. Subjects keep their request order; the subject display name
// follows the "表名 - 科目" convention of the workbook comparison tool.
func Compare(year int, subjects []Subject, companies []CompanyTables) []Comparison {
	out := make([]Comparison, 0, len(subjects))
	for _, sub := range subjects {
		cmp := Comparison{
			Subject:   sub.Table + " - " + sub.Row,
			Companies: make([]string, 0, len(companies)),
			Values:    make([]statement.Value, 0, len(companies)),
		}
		for _, company := range companies {
			v := statement.Missing()
			for _, t := range company.Tables {
				if t.Name == sub.Table {
					v = t.Cell(sub.Row, year)
					break
				}
			}
			cmp.Companies = append(cmp.Companies, company.Name)
			cmp.Values = append(cmp.Values, v)
		}
		out = append(out, cmp)
	}
	return out
}
