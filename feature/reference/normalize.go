package reference

import (
	"strings"

	"master-reference/feature/reference/models"
)

// NormalizeSecurities trims the join key fields of the primary source in place.
func NormalizeSecurities(c *models.Collection[models.Security]) {
	for i := range c.Rows {
		r := &c.Rows[i]
		r.MSCompanyID = strings.TrimSpace(r.MSCompanyID)
		r.MSSecurityID = strings.TrimSpace(r.MSSecurityID)
	}
}

// NormalizeShareClasses trims the join key fields of the security reference in place.
func NormalizeShareClasses(c *models.Collection[models.ShareClass]) {
	for i := range c.Rows {
		r := &c.Rows[i]
		r.CompanyID = strings.TrimSpace(r.CompanyID)
		r.ShareClassID = strings.TrimSpace(r.ShareClassID)
		r.ISIN = strings.TrimSpace(r.ISIN)
	}
}

// NormalizeCompanies trims the join key fields of the master company source in place.
func NormalizeCompanies(c *models.Collection[models.Company]) {
	for i := range c.Rows {
		r := &c.Rows[i]
		r.ISIN = strings.TrimSpace(r.ISIN)
		r.Symbol = strings.TrimSpace(r.Symbol)
	}
}

// tickerKey is the case-insensitive form of a ticker or symbol.
func tickerKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
