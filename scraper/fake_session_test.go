package scraper

import (
	"context"
	"fmt"

	"angelscout/browser"
)

// fakeSession serves canned markup per URL and locator, and tracks history like a tab
type fakeSession struct {
	pages      map[string]map[browser.Locator]string
	clickable  map[browser.Locator]bool
	moreClicks int   // "Vis flere" clicks that succeed before the list is exhausted
	moreErr    error // returned instead of ErrNoMoreContent once moreClicks is spent

	current string
	history []string
	clicks  []browser.Locator
	visits  []string
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		pages:     map[string]map[browser.Locator]string{},
		clickable: map[browser.Locator]bool{},
	}
}

func (f *fakeSession) page(url string, elements map[browser.Locator]string) {
	f.pages[url] = elements
}

func (f *fakeSession) Navigate(_ context.Context, url string) error {
	if f.current != "" {
		f.history = append(f.history, f.current)
	}
	f.current = url
	f.visits = append(f.visits, url)
	return nil
}

func (f *fakeSession) Click(_ context.Context, loc browser.Locator) error {
	f.clicks = append(f.clicks, loc)

	if loc == showMoreLink {
		if f.moreClicks > 0 {
			f.moreClicks--
			return nil
		}
		if f.moreErr != nil {
			return f.moreErr
		}
		return browser.ErrNoMoreContent
	}

	if f.clickable[loc] {
		return nil
	}
	return fmt.Errorf("%w: %s", browser.ErrTimeout, loc)
}

func (f *fakeSession) OuterHTML(_ context.Context, loc browser.Locator) (string, error) {
	markup, ok := f.pages[f.current][loc]
	if !ok {
		return "", fmt.Errorf("%w: %s", browser.ErrTimeout, loc)
	}
	return markup, nil
}

func (f *fakeSession) Back(_ context.Context) error {
	if len(f.history) == 0 {
		return nil
	}
	f.current = f.history[len(f.history)-1]
	f.history = f.history[:len(f.history)-1]
	return nil
}

// nameCell renders a registry name cell: linked name on one line, registration number on the next
func nameCell(name, href, orgNr string) string {
	link := name
	if href != "" {
		link = fmt.Sprintf(`<a href="%s">%s</a>`, href, name)
	}
	return fmt.Sprintf(`<td><div>%s</div><div>Org nr %s</div></td>`, link, orgNr)
}

func row(cells ...string) string {
	out := "<tr>"
	for _, c := range cells {
		if len(c) > 3 && c[:3] == "<td" {
			out += c
			continue
		}
		out += "<td>" + c + "</td>"
	}
	return out + "</tr>"
}

func table(class string, rows ...string) string {
	out := "<table"
	if class != "" {
		out += ` class="` + class + `"`
	}
	out += "><tr><th>Navn</th><th>Antall</th><th>Type</th><th>Andel</th></tr>"
	for _, r := range rows {
		out += r
	}
	return out + "</table>"
}
