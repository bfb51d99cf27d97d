// Package report writes the derived metric tables to Excel workbooks and
// CSV files. The workbook carries one sheet per table, with a 公式说明 block
// under the sheets whose metrics are computed rather than copied.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/EigenChen/akshare-financial-analysis/internal/analysis"
)

// formulaNotes lists, per sheet, the explanation lines appended under the
// data block.
var formulaNotes = map[string][]string{
	"营收基本数据": {
		"金融利润（亿元）: 金融利润 = 公允价值变动收益 + 投资收益",
		"经营利润（亿元）: 经营利润 = 归母净利润 - 金融利润",
		"CAPEX（亿元）: CAPEX = 购建固定资产、无形资产和其他长期资产支付的现金（来自现金流量表）",
	},
	"资产负债": {
		"狭义无息债务（亿元）: 狭义无息债务 = 应付账款 + 预收账款 + 合同负债",
		"广义无息债务（亿元）: 广义无息债务 = 应付账款 + 应付票据 + 预收账款 + 合同负债",
	},
	"WC分析": {
		"WC（亿元）: WC = (应收账款 + 预付账款 + 存货 + 合同资产) - (应付账款 + 预收账款 + 合同负债)",
	},
	"固定资产投入分析": {
		"固定资产（亿元）: 固定资产 = 固定资产 + 在建工程 + 工程物资 - 固定资产清理",
		"长期资产（亿元）: 长期资产 = 固定资产 + 无形资产 + 开发支出 + 使用权资产 + 商誉 + 长期待摊费用",
	},
	"收益率和杜邦分析": {
		"ROIC(%): ROIC = EBIT / 投入资本 × 100，其中EBIT = 营业利润 + 利息支出，投入资本 = 总资产 - 狭义无息债务（应付账款 + 预收账款 + 合同负债）",
	},
}

// ExcelFilename builds the canonical workbook name:
// {公司名}_{起始年}-{结束年}_财务分析_{时间戳}.xlsx.
func ExcelFilename(companyName string, startYear, endYear int, ts time.Time) string {
	return fmt.Sprintf("%s_%d-%d_财务分析_%s.xlsx", companyName, startYear, endYear, ts.Format("20060102150405"))
}

// WriteExcel writes all tables into one workbook at path, one sheet per
// table in table order, and returns the path.
func WriteExcel(path string, tables []*analysis.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, tbl := range tables {
		sheet := tbl.Name
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("add sheet %s: %w", sheet, err)
			}
		}
		if err := writeSheet(f, sheet, tbl); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, tbl *analysis.Table) error {
	cols := tbl.Columns()
	widths := make([]int, len(cols))

	for c, name := range cols {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
		widths[c] = displayWidth(name)
	}

	for r, label := range tbl.RowLabels {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
		if w := displayWidth(label); w > widths[0] {
			widths[0] = w
		}
		for c, v := range tbl.Cells[r] {
			cell, _ := excelize.CoordinatesToCellName(c+2, r+2)
			if v.Valid {
				if err := f.SetCellValue(sheet, cell, v.Num); err != nil {
					return err
				}
			} else {
				if err := f.SetCellValue(sheet, cell, "-"); err != nil {
					return err
				}
			}
			if w := displayWidth(v.Display()); w > widths[c+1] {
				widths[c+1] = w
			}
		}
	}

	for c, w := range widths {
		name, _ := excelize.ColumnNumberToName(c + 1)
		if err := f.SetColWidth(sheet, name, name, clampWidth(w)); err != nil {
			return err
		}
	}

	return writeFormulaNotes(f, sheet, tbl, len(tbl.RowLabels)+1)
}

func writeFormulaNotes(f *excelize.File, sheet string, tbl *analysis.Table, lastDataRow int) error {
	notes := formulaNotes[tbl.Name]
	if len(notes) == 0 {
		return nil
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	noteStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5F5F5"}},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}

	// two blank rows between the data block and the notes
	row := lastDataRow + 3
	lastCol, _ := excelize.ColumnNumberToName(1 + len(tbl.Years) + len(tbl.ExtraCols))

	titleCell := "A" + itoa(row)
	if err := f.MergeCell(sheet, titleCell, lastCol+itoa(row)); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, titleCell, "公式说明"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, titleCell, titleCell, titleStyle); err != nil {
		return err
	}

	for i, note := range notes {
		noteRow := row + 1 + i
		cell := "A" + itoa(noteRow)
		if err := f.MergeCell(sheet, cell, lastCol+itoa(noteRow)); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, note); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, noteStyle); err != nil {
			return err
		}
	}
	return nil
}

// displayWidth estimates rendered width: CJK glyphs count double.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r > 127 {
			w += 2
		} else {
			w++
		}
	}
	return w
}

func clampWidth(w int) float64 {
	w += 2
	if w < 8 {
		w = 8
	}
	if w > 50 {
		w = 50
	}
	return float64(w)
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
