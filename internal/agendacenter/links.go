package agendacenter

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/civicdocs/agendarchive/pkg/models"
)

// fileExtensions are the suffixes treated as direct downloadable files.
var fileExtensions = []string{".pdf", ".zip", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx"}

// link carries the lowercased views of a candidate URL that the
// classification rules inspect.
type link struct {
	low  string // lowercased URL including the query string
	path string // lowercased URL with the query string stripped
}

// classifyRule inspects a link and reports its document type. A rule that
// does not claim the link returns ok=false so the next rule runs.
type classifyRule func(l link) (t models.DocType, ok bool)

// classifyRules is evaluated in order and the first claiming rule wins.
// The direct-extension rule must stay first: a viewfile path can also end in
// a file extension, and the extension branch owns those URLs.
var classifyRules = []classifyRule{
	classifyDirectFile,
	classifyViewFileAgenda,
	classifyViewFileMinutes,
	classifyViewFilePacket,
}

// classifyDirectFile handles URLs whose path ends in a known document
// extension, inferring the type from the path segments.
func classifyDirectFile(l link) (models.DocType, bool) {
	if !hasFileExtension(l.path) {
		return "", false
	}
	switch {
	case strings.Contains(l.path, "/agenda/"):
		return models.TypeAgenda, true
	case strings.Contains(l.path, "/minutes/"):
		return models.TypeMinutes, true
	case strings.Contains(l.path, "/packet/"):
		return models.TypePacket, true
	}
	return models.TypeOther, true
}

// classifyViewFileAgenda handles the ViewFile agenda endpoint. The same
// endpoint serves the full packet when the packet=true query flag is set.
func classifyViewFileAgenda(l link) (models.DocType, bool) {
	if !strings.Contains(l.path, "/viewfile/agenda/") {
		return "", false
	}
	if strings.Contains(l.low, "packet=true") {
		return models.TypePacket, true
	}
	return models.TypeAgenda, true
}

func classifyViewFileMinutes(l link) (models.DocType, bool) {
	if !strings.Contains(l.path, "/viewfile/minutes/") {
		return "", false
	}
	return models.TypeMinutes, true
}

func classifyViewFilePacket(l link) (models.DocType, bool) {
	if !strings.Contains(l.path, "/viewfile/packet/") {
		return "", false
	}
	return models.TypePacket, true
}

func hasFileExtension(path string) bool {
	for _, ext := range fileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Classify runs the ordered rule list against an absolute URL. ok is false
// when the URL is not a document link at all.
func Classify(rawURL string) (models.DocType, bool) {
	l := link{low: strings.ToLower(rawURL)}
	l.path = l.low
	if i := strings.Index(l.path, "?"); i >= 0 {
		l.path = l.path[:i]
	}
	for _, rule := range classifyRules {
		if t, ok := rule(l); ok {
			return t, true
		}
	}
	return "", false
}

// AbsoluteURL converts a possibly-relative href into a full URL on the
// portal origin.
func AbsoluteURL(baseURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		return baseURL + href
	}
	return baseURL + "/" + href
}

// ExtractFileLinks returns every downloadable document link on a meeting
// page as (absolute URL, type) pairs, in first-seen order with duplicate
// pairs removed.
func ExtractFileLinks(pageHTML, baseURL string) []models.FileLink {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil
	}

	seen := make(map[models.FileLink]struct{})
	var files []models.FileLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		url := AbsoluteURL(baseURL, href)
		t, ok := Classify(url)
		if !ok {
			return
		}
		fl := models.FileLink{URL: url, Type: t}
		if _, dup := seen[fl]; dup {
			return
		}
		seen[fl] = struct{}{}
		files = append(files, fl)
	})
	return files
}
