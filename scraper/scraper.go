// Package scraper walks the proff.no shareholder register and investigates corporate shareholders
package scraper

import (
	"strings"

	"angelscout/browser"

	"github.com/PuerkitoBio/goquery"
)

// Page elements of the registry site
const (
	cookieButton   browser.Locator = `//button[@class="sc-ifAKCX bDpbwf" and text()="ENIG"]`
	ownersLink     browser.Locator = `//a[.//span[text()="Roller og Eiere"]]`
	showAllLink    browser.Locator = `//a[.//span[text()="Vis alle aksjonærer"]]`
	showMoreLink   browser.Locator = `//a[.//span[text()="Vis flere"]]`
	shareholders   browser.Locator = `(//table[@class="shareholder-reg-table ui-wide"])[1]`
	firstTable     browser.Locator = `(//table)[1]`
	secondTable    browser.Locator = `(//table)[2]`
	registrationNo                 = "\nOrg nr"
)

// blockElements start a new line in rendered text
var blockElements = map[string]bool{
	"div": true, "p": true, "li": true, "ul": true, "ol": true, "section": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "table": true,
}

// CleanText removes extra whitespace from text
func CleanText(text string) string {
	// Replace newlines and tabs with spaces
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.ReplaceAll(text, "\u00a0", " ")

	// Replace multiple spaces with a single space
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}

	return strings.TrimSpace(text)
}

// visibleText renders a selection the way a browser lays it out: one line per block, blank lines dropped
func visibleText(sel *goquery.Selection) string {
	var lines []string
	var current strings.Builder

	flush := func() {
		if line := CleanText(current.String()); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(i int, child *goquery.Selection) {
			switch name := goquery.NodeName(child); {
			case name == "#text":
				current.WriteString(child.Text())
			case name == "br":
				flush()
			case name == "script" || name == "style":
			case blockElements[name]:
				flush()
				walk(child)
				flush()
			default:
				walk(child)
			}
		})
	}

	walk(sel)
	flush()

	return strings.Join(lines, "\n")
}

// splitRegistration separates "Name AS\nOrg nr 123" into its display name and registration number
func splitRegistration(text string) (name, regNo string, ok bool) {
	name, regNo, ok = strings.Cut(text, registrationNo)
	return name, strings.TrimSpace(regNo), ok
}

// displayName is the part of a name cell before the registration number, on one line
func displayName(text string) string {
	name, _, _ := splitRegistration(text)
	return CleanText(name)
}

// parseTable loads a table's outer HTML and returns its rows after the header row
func parseTable(markup string) ([]*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	var rows []*goquery.Selection
	table.Children().ChildrenFiltered("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return
		}
		rows = append(rows, tr)
	})

	return rows, nil
}
