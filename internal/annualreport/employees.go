// Package annualreport locates, downloads and mines listed-company annual
// report PDFs. The headline feature is a best-effort employee headcount
// extractor: disclosure formats vary wildly between issuers, so extraction
// runs several strategies over the page text and keeps the candidate with
// the highest confidence.
package annualreport

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is one extracted headcount candidate.
type Result struct {
	Count      int     `json:"count"`
	Confidence float64 `json:"confidence"`
	Page       int     `json:"page"`
	Method     string  `json:"method"`
	Context    string  `json:"context"`
}

// Explicit textual disclosures, ordered from most to least specific. The
// index decides the confidence tier assigned to a match.
var explicitPatterns = []*regexp.Regexp{
	// full date plus headcount sentence
	regexp.MustCompile(`截止\s*(\d{4})\s*年\s*(\d{1,2})\s*月\s*(\d{1,2})\s*日[，,]?\s*(?:公司)?在职员工\s*(\d{1,3}(?:[,，]\d{3})+|\d{4,6})\s*人`),
	regexp.MustCompile(`(?:至|截至)\s*(\d{4})\s*年\s*(\d{1,2})\s*月\s*(\d{1,2})\s*日[，,]?\s*(?:公司)?(?:在职)?员工(?:总数)?[：:]?\s*(\d{1,3}(?:[,，]\d{3})+|\d{4,6})\s*人`),

	// standard headcount sentences
	regexp.MustCompile(`公司在职员工\s*(\d{1,3}(?:[,，]\d{3})+|\d{4,6})\s*人`),
	regexp.MustCompile(`在职员工\s*(?:总数|人数)?[：:]?\s*(\d{1,3}(?:[,，]\d{3})+|\d{4,6})\s*人`),
	regexp.MustCompile(`员工总数\s*[：:]?\s*(\d{1,3}(?:[,，]\d{3})+|\d{4,6})\s*人`),
	regexp.MustCompile(`全职员工\s*(?:总数)?[：:]?\s*(\d{1,3}(?:[,，]\d{3})+|\d{4,6})\s*人`),

	// looser matches, comma-grouped figures only
	regexp.MustCompile(`员工\s*(\d{1,3}[,，]\d{3})\s*人`),
	regexp.MustCompile(`在职.*?(\d{1,3}[,，]\d{3})\s*人`),

	// English disclosures
	regexp.MustCompile(`(?i)(?:total\s+)?(?:full-time\s+)?employees?[:\s]+(\d{1,3}(?:,\d{3})+|\d{4,6})`),
	regexp.MustCompile(`(?i)number\s+of\s+employees?[:\s]+(\d{1,3}(?:,\d{3})+|\d{4,6})`),
}

func explicitConfidence(patternIdx int) float64 {
	switch {
	case patternIdx <= 1:
		return 0.98
	case patternIdx <= 5:
		return 0.95
	case patternIdx <= 7:
		return 0.92
	default:
		return 0.90
	}
}

var lineNumberPattern = regexp.MustCompile(`\d{1,3}(?:[,，]\d{3})+|\d+`)

// ExtractEmployeeCount extracts the employee headcount from an annual report
// PDF. It returns nil when no plausible figure is found.
func ExtractEmployeeCount(pdfPath string) (*Result, error) {
	pages, err := ExtractPages(pdfPath)
	if err != nil {
		return nil, err
	}
	return ExtractFromPages(pages), nil
}

// ExtractFromPages runs all extraction strategies over already-extracted page
// text and returns the best candidate, or nil.
func ExtractFromPages(pages []PageText) *Result {
	var best *Result
	for _, page := range pages {
		if page.Text == "" || !mentionsEmployees(page.Text) {
			continue
		}
		best = better(best, scanExplicit(page.Text, page.Number))
		best = better(best, scanKeywordLines(page.Text, page.Number))
	}
	return best
}

// scanExplicit matches the explicit sentence patterns against one page.
func scanExplicit(text string, page int) *Result {
	var best *Result
	for idx, pattern := range explicitPatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(text, -1) {
			// the headcount is always the last capture group
			g := len(loc) - 2
			if g < 2 || loc[g] < 0 {
				continue
			}
			num, ok := parseCount(text[loc[g]:loc[g+1]])
			if !ok || !reasonableCount(num, text) {
				continue
			}
			candidate := &Result{
				Count:      num,
				Confidence: explicitConfidence(idx),
				Page:       page,
				Method:     "explicit_text",
				Context:    matchContext(text, loc[0], loc[1]),
			}
			best = better(best, candidate)
		}
	}
	return best
}

// scanKeywordLines walks the page line by line looking for keyword-flagged
// rows, most often flattened table rows, that carry a plausible headcount.
func scanKeywordLines(text string, page int) *Result {
	var best *Result
	for _, line := range strings.Split(text, "\n") {
		strength := keywordStrength(line)
		if strength == 0 {
			continue
		}
		// payroll rows carry money, never headcount
		if strings.Contains(line, "薪酬") || strings.Contains(line, "支付给员工") {
			continue
		}
		if hasFinancialKeyword(line) && !strings.Contains(line, "员工人数") && !strings.Contains(line, "在职员工") {
			continue
		}
		for _, m := range lineNumberPattern.FindAllStringIndex(line, -1) {
			if partOfDecimal(line, m[0], m[1]) {
				continue
			}
			num, ok := parseCount(line[m[0]:m[1]])
			if !ok || !reasonableCount(num, line) {
				continue
			}
			candidate := &Result{
				Count:      num,
				Confidence: strength,
				Page:       page,
				Method:     "keyword_line",
				Context:    strings.TrimSpace(line),
			}
			best = better(best, candidate)
		}
	}
	return best
}

// keywordStrength scores how strongly a line points at a headcount figure.
// Zero means the line is not employee related at all.
func keywordStrength(line string) float64 {
	high := containsAny(line, highPriorityKeywords())
	medium := containsAny(line, mediumPriorityKeywords())
	if !high && !medium {
		return 0
	}
	total := containsAny(line, totalIndicators())
	switch {
	case high && total:
		return 0.85
	case high:
		return 0.80
	case total:
		return 0.70
	default:
		return 0.60
	}
}

// reasonableCount filters out years, placeholder values and figures outside
// the plausible headcount range for the disclosing company.
func reasonableCount(num int, context string) bool {
	// report years would otherwise match the 4-digit patterns
	if num >= 1990 && num <= 2030 {
		return false
	}
	switch num {
	case 0, 9999, 99999, 999999, 9999999:
		return false
	}

	minCount, maxCount := 500, 200000
	if context != "" {
		if containsAny(context, []string{"上市", "股份", "集团", "有限公司"}) {
			minCount, maxCount = 1000, 200000
		} else {
			minCount, maxCount = 500, 100000
		}
	}
	return num >= minCount && num <= maxCount
}

func mentionsEmployees(text string) bool {
	return containsAny(text, employeeTerms())
}

func hasFinancialKeyword(line string) bool {
	return containsAny(line, financialIndicators())
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func parseCount(raw string) (int, bool) {
	cleaned := strings.NewReplacer(",", "", "，", "", " ", "").Replace(raw)
	num, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return num, true
}

// partOfDecimal reports whether the number at [start,end) is one side of a
// decimal figure, which would make it an amount rather than a headcount.
func partOfDecimal(line string, start, end int) bool {
	if start > 0 && line[start-1] == '.' {
		return true
	}
	if end < len(line) && line[end] == '.' {
		return true
	}
	return false
}

// better keeps the higher-confidence candidate, preferring the larger count
// on a tie since subtotals pull confidence even with the grand total.
func better(a, b *Result) *Result {
	if b == nil {
		return a
	}
	if a == nil {
		return b
	}
	if b.Confidence > a.Confidence || (b.Confidence == a.Confidence && b.Count > a.Count) {
		return b
	}
	return a
}

// matchContext returns the match plus surrounding text, whitespace-folded.
func matchContext(text string, start, end int) string {
	from := start - 50
	if from < 0 {
		from = 0
	}
	to := end + 50
	if to > len(text) {
		to = len(text)
	}
	// avoid splitting multibyte runes at the window edges
	for from > 0 && !utf8Start(text[from]) {
		from--
	}
	for to < len(text) && !utf8Start(text[to]) {
		to++
	}
	return strings.Join(strings.Fields(text[from:to]), " ")
}

func utf8Start(b byte) bool { return b&0xC0 != 0x80 }
