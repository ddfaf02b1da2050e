package agendacenter

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// datePattern matches "<Month name> <day>[,] <year>" anywhere in a text
// fragment, e.g. "Monday, May 1, 2023".
var datePattern = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),?\s+(\d{4})`)

var monthNumbers = map[string]string{
	"january":   "01",
	"february":  "02",
	"march":     "03",
	"april":     "04",
	"may":       "05",
	"june":      "06",
	"july":      "07",
	"august":    "08",
	"september": "09",
	"october":   "10",
	"november":  "11",
	"december":  "12",
}

// ExtractMeetingDate finds the meeting date on a meeting page and returns it
// as MMDDYYYY. Heading and block elements are scanned first, the page title
// last, stopping at the first text fragment that matches. Returns "" when no
// fragment carries a recognizable date; the caller falls back to the meeting
// ID for naming.
func ExtractMeetingDate(pageHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return ""
	}

	var date string
	doc.Find("h1, h2, h3, div, span").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		date = matchDate(sel.Text())
		return date == ""
	})
	if date == "" {
		date = matchDate(doc.Find("title").First().Text())
	}
	return date
}

// matchDate converts the first date pattern occurrence in text to MMDDYYYY,
// or "" when text has none.
func matchDate(text string) string {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	month := monthNumbers[strings.ToLower(m[1])]
	day := m[2]
	if len(day) == 1 {
		day = "0" + day
	}
	return month + day + m[3]
}
