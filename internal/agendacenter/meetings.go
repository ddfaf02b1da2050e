// Package agendacenter parses the HTML pages served by a CivicPlus
// AgendaCenter portal: yearly listing pages, per-meeting detail pages, and
// the document links those pages carry. All functions are pure text
// extraction; fetching lives in internal/portal.
package agendacenter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// meetingLinkPattern matches per-meeting detail links on the yearly listing
// page, e.g. /AgendaCenter/26/501.
var meetingLinkPattern = regexp.MustCompile(`/AgendaCenter/26/(\d+)`)

// ExtractMeetingIDs pulls every numeric meeting ID from a yearly listing
// page, in first-seen order with duplicates removed. An empty result means
// the year has no meetings.
func ExtractMeetingIDs(listHTML string) []int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listHTML))
	if err != nil {
		return nil
	}

	seen := make(map[int]struct{})
	var ids []int
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		m := meetingLinkPattern.FindStringSubmatch(href)
		if m == nil {
			return
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	})
	return ids
}
