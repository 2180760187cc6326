package scraper

import (
	"context"
	"regexp"

	"angelscout/browser"
	"angelscout/models"
	"angelscout/utils"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// corporateName matches a name cell whose display name ends in "AS"
var corporateName = regexp.MustCompile(`AS\n`)

// ExtractInvestors reads the expanded shareholder table into investor records.
// Relative profile links are resolved against baseURL. A missing table yields no records.
func ExtractInvestors(ctx context.Context, session browser.Session, log *zap.Logger, baseURL string) []models.InvestorRecord {
	markup, err := session.OuterHTML(ctx, shareholders)
	if err != nil {
		log.Warn("timeout when extracting name and share percentage", zap.Error(err))
		return []models.InvestorRecord{}
	}

	investors, err := parseInvestors(markup, baseURL)
	if err != nil {
		log.Warn("failed to parse shareholder table", zap.Error(err))
		return []models.InvestorRecord{}
	}

	return investors
}

// parseInvestors keeps rows of at least four cells whose first cell names a company with a profile link
func parseInvestors(markup, baseURL string) ([]models.InvestorRecord, error) {
	rows, err := parseTable(markup)
	if err != nil {
		return nil, err
	}

	investors := []models.InvestorRecord{}
	for _, row := range rows {
		cols := row.ChildrenFiltered("td")
		if cols.Length() < 4 {
			continue
		}

		nameCell := cols.Eq(0)
		orgAndName := visibleText(nameCell)
		if !corporateName.MatchString(orgAndName) {
			continue
		}

		name, orgNr, ok := splitRegistration(orgAndName)
		if !ok {
			continue
		}

		link, exists := nameCell.ChildrenFiltered("div").ChildrenFiltered("a").First().Attr("href")
		if !exists {
			continue
		}

		investors = append(investors, models.InvestorRecord{
			Name:               name,
			SharePercentage:    visibleText(cols.Eq(3)),
			ProfileLink:        utils.ResolveURL(baseURL, link),
			RegistrationNumber: orgNr,
		})
	}

	return investors, nil
}

// cellTexts returns the rendered text of every td in a row
func cellTexts(row *goquery.Selection) []string {
	var texts []string
	row.ChildrenFiltered("td").Each(func(i int, td *goquery.Selection) {
		texts = append(texts, visibleText(td))
	})
	return texts
}
