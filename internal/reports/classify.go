package reports

import (
	"sort"
	"strings"

	"dairybook/internal/models"
)

// ProductLine is the product category a transaction row belongs to.
type ProductLine int

const (
	LineOther ProductLine = iota
	LineMilk
	LineGhee
	LineFeed
)

// Classifier maps (unit, product name) pairs to product lines. Milk and ghee
// are fixed by unit+name convention; cattle-feed products have free-text
// names, so the feed vocabulary is discovered from purchase records tagged
// with the Pashu Aahar category. Build one per request and reuse it for
// every row in that request.
type Classifier struct {
	feedNames map[string]bool
}

// NewClassifier runs the discovery pass over the period's purchase records.
func NewClassifier(purchases []*models.Purchase) *Classifier {
	feed := make(map[string]bool)
	for _, p := range purchases {
		if strings.EqualFold(strings.TrimSpace(p.Category), models.CategoryPashuAahar) {
			name := normalizeName(p.ProductName)
			if name != "" {
				feed[name] = true
			}
		}
	}
	return &Classifier{feedNames: feed}
}

// Classify resolves a product line from a row's unit and product name.
func (c *Classifier) Classify(unit, productName string) ProductLine {
	name := normalizeName(productName)
	switch {
	case strings.EqualFold(strings.TrimSpace(unit), models.UnitLtr) && name == "milk":
		return LineMilk
	case strings.EqualFold(strings.TrimSpace(unit), models.UnitKg) && name == "ghee":
		return LineGhee
	case c.feedNames[name]:
		return LineFeed
	}
	return LineOther
}

// FeedNames returns the discovered feed vocabulary in stable order.
func (c *Classifier) FeedNames() []string {
	names := make([]string, 0, len(c.feedNames))
	for name := range c.feedNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
