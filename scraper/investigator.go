package scraper

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"angelscout/browser"
	"angelscout/models"

	"golang.org/x/exp/slices"
)

// ErrMalformedPercentage is returned when an ownership cell is not a percentage
var ErrMalformedPercentage = errors.New("malformed percentage")

// Ownership thresholds, in percent
const (
	everyOwnerAbove = 15.0
	anyOwnerAbove   = 40.0
	minInvestments  = 3
)

// Investigator looks one level into a shareholder's own profile page
type Investigator struct {
	session browser.Session
}

// NewInvestigator creates an investigator driving session
func NewInvestigator(session browser.Session) *Investigator {
	return &Investigator{session: session}
}

// Investigate loads the profile at url, reads its ownership and investment tables and goes back.
// Errors wrap browser.ErrTimeout for a missing table and ErrMalformedPercentage for bad data.
func (inv *Investigator) Investigate(ctx context.Context, url string) (models.InvestigationResult, error) {
	if err := inv.session.Navigate(ctx, url); err != nil {
		return models.InvestigationResult{}, fmt.Errorf("failed to open profile: %w", err)
	}

	ownersMarkup, err := inv.session.OuterHTML(ctx, firstTable)
	if err != nil {
		return models.InvestigationResult{}, fmt.Errorf("timeout when checking the first table: %w", err)
	}

	investmentsMarkup, err := inv.session.OuterHTML(ctx, secondTable)
	if err != nil {
		return models.InvestigationResult{}, fmt.Errorf("timeout when checking the second table: %w", err)
	}

	if err := inv.session.Back(ctx); err != nil {
		return models.InvestigationResult{}, fmt.Errorf("failed to go back: %w", err)
	}

	owners, err := parseOwners(ownersMarkup)
	if err != nil {
		return models.InvestigationResult{}, err
	}

	investments, err := parseInvestments(investmentsMarkup)
	if err != nil {
		return models.InvestigationResult{}, err
	}

	return ShapeResult(owners, investments), nil
}

// ShapeResult keeps the investments only when there are more than two of them
// and the owners only when their stakes are significant
func ShapeResult(owners []models.OwnerEntry, investments []string) models.InvestigationResult {
	var result models.InvestigationResult

	if len(investments) >= minInvestments {
		result.OtherInvestments = investments
	}

	if SignificantOwnership(owners) {
		result.OwnerList = owners
		if result.OwnerList == nil {
			result.OwnerList = []models.OwnerEntry{}
		}
	}

	return result
}

// SignificantOwnership holds when every owner has more than 15% or any owner has more than 40%.
// An empty list counts as significant.
func SignificantOwnership(owners []models.OwnerEntry) bool {
	allAbove := !slices.ContainsFunc(owners, func(o models.OwnerEntry) bool {
		return o.Percentage <= everyOwnerAbove
	})
	anyAbove := slices.ContainsFunc(owners, func(o models.OwnerEntry) bool {
		return o.Percentage > anyOwnerAbove
	})
	return allAbove || anyAbove
}

// ParsePercentage reads a Norwegian-formatted percentage such as "12,5 %"
func ParsePercentage(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "%"))
	raw = strings.ReplaceAll(raw, ",", ".")

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPercentage, s)
	}
	return value, nil
}

func parseOwners(markup string) ([]models.OwnerEntry, error) {
	rows, err := parseTable(markup)
	if err != nil {
		return nil, err
	}

	owners := []models.OwnerEntry{}
	for _, row := range rows {
		cells := cellTexts(row)
		if len(cells) < 4 {
			continue
		}

		percentage, err := ParsePercentage(cells[3])
		if err != nil {
			return nil, err
		}

		owners = append(owners, models.OwnerEntry{
			Name:       displayName(cells[0]),
			Percentage: percentage,
		})
	}

	return owners, nil
}

func parseInvestments(markup string) ([]string, error) {
	rows, err := parseTable(markup)
	if err != nil {
		return nil, err
	}

	investments := []string{}
	for _, row := range rows {
		cells := cellTexts(row)
		if len(cells) < 4 {
			continue
		}
		investments = append(investments, displayName(cells[0]))
	}

	return investments, nil
}
