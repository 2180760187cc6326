package scraper

import (
	"context"
	"testing"

	"angelscout/browser"
	"angelscout/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const startURL = "https://www.proff.no/selskap/strise-as/trondheim/internettdesign-og-programmering/IF6R01G0C2C/"

func shareholderTable(rows ...string) string {
	return table("shareholder-reg-table ui-wide", rows...)
}

func TestParseInvestorsFiltersRows(t *testing.T) {
	markup := shareholderTable(
		row(nameCell("Acme AS", "/selskap/acme-as/oslo/-/ACME/", "999 000 111"), "1 000", "Ordinære", "12,5 %"),
		// a person, not a company
		row(`<td><div><a href="/person/ola">Ola Nordmann</a></div><div>Født 1970</div></td>`, "10", "Ordinære", "1,0 %"),
		// too few cells
		row(nameCell("Short AS", "/selskap/short", "1"), "10"),
		// no profile link
		row(nameCell("Linkless AS", "", "2"), "10", "Ordinære", "3,0 %"),
		// company pattern but no registration marker
		row(`<td><div><a href="/selskap/odd">Odd AS</a></div><div>Stiftet 1999</div></td>`, "1", "Ordinære", "2,0 %"),
		row(nameCell("Beta Holding AS", "http://x/beta", "123456789"), "50", "Ordinære", "0,5 %"),
	)

	investors, err := parseInvestors(markup, startURL)
	require.NoError(t, err)

	assert.Equal(t, []models.InvestorRecord{
		{
			Name:               "Acme AS",
			SharePercentage:    "12,5 %",
			ProfileLink:        "https://www.proff.no/selskap/acme-as/oslo/-/ACME/",
			RegistrationNumber: "999 000 111",
		},
		{
			Name:               "Beta Holding AS",
			SharePercentage:    "0,5 %",
			ProfileLink:        "http://x/beta",
			RegistrationNumber: "123456789",
		},
	}, investors)

	for _, inv := range investors {
		assert.Regexp(t, `AS$`, inv.Name)
	}
}

func TestParseInvestorsHeaderOnly(t *testing.T) {
	investors, err := parseInvestors(shareholderTable(), startURL)
	require.NoError(t, err)
	assert.Empty(t, investors)
}

func TestExtractInvestorsFromSession(t *testing.T) {
	session := newFakeSession()
	session.page(startURL, map[browser.Locator]string{
		shareholders: shareholderTable(
			row(nameCell("Acme AS", "http://x/acme", "999000111"), "1", "Ordinære", "10,0 %"),
		),
	})
	require.NoError(t, session.Navigate(context.Background(), startURL))

	investors := ExtractInvestors(context.Background(), session, zap.NewNop(), startURL)

	require.Len(t, investors, 1)
	assert.Equal(t, "http://x/acme", investors[0].ProfileLink)
	assert.Equal(t, "999000111", investors[0].RegistrationNumber)
}

func TestExtractInvestorsMissingTable(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	session := newFakeSession()
	require.NoError(t, session.Navigate(context.Background(), startURL))

	investors := ExtractInvestors(context.Background(), session, zap.New(core), startURL)

	assert.NotNil(t, investors)
	assert.Empty(t, investors)
	assert.Equal(t, 1, logs.FilterMessage("timeout when extracting name and share percentage").Len())
}
