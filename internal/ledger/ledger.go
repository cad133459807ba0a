package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"dairybook/internal/models"
)

// Entry is one dated line item in a party's reconstructed ledger. Balance is
// the receivable from the party after this entry: debits increase it,
// credits decrease it.
type Entry struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Debit       float64   `json:"debit"`
	Credit      float64   `json:"credit"`
	Balance     float64   `json:"balance"`
}

// TransactionSet holds the already-fetched transaction streams a ledger is
// replayed from. It is the single join boundary between transactions and
// parties: records are matched to the party by name (source-compatible),
// so swapping to an id-based join only touches this package.
type TransactionSet struct {
	MilkCollections []*models.MilkCollection
	Sales           []*models.Sale
	BulkSales       []*models.BulkSale
	Purchases       []*models.Purchase
	Payments        []*models.Payment
}

// openingBalanceDate places an undated opening balance before any real
// transaction.
var epochZero = time.Unix(0, 0).UTC()

// BuildLedger replays all transactions referencing the party into a
// chronologically ordered running-balance ledger, seeded by a synthetic
// opening-balance entry when the party carries one.
//
// Sign convention (used identically by the dashboard aggregator): a positive
// balance is what the party owes the business. Sales and payments made to
// the party are debits; milk collected from the party, purchases from the
// party and payments received from the party are credits.
func BuildLedger(party *models.Party, set TransactionSet) []Entry {
	if party == nil {
		return nil
	}

	var entries []Entry

	if party.OpeningBalance != 0 {
		asOf := epochZero
		if party.OpeningBalanceDate != nil {
			asOf = *party.OpeningBalanceDate
		}
		entries = append(entries, Entry{
			Date:        asOf,
			Description: "Opening Balance",
			Debit:       maxFloat(0, party.OpeningBalance),
			Credit:      maxFloat(0, -party.OpeningBalance),
		})
	}

	// Milk collections only apply to Customer-type parties: milk suppliers
	// are modeled as customers holding a running account.
	if party.Type == models.PartyTypeCustomer {
		for _, mc := range set.MilkCollections {
			if !sameParty(mc.PartyName, party.Name) {
				continue
			}
			entries = append(entries, Entry{
				Date:        NormalizeDate(mc.Date),
				Description: fmt.Sprintf("Milk Collection (%s, %.1f Ltr)", mc.Shift, mc.QuantityLtr),
				Credit:      mc.NetAmountPayable,
			})
		}
	}

	for _, s := range set.Sales {
		if !sameParty(s.CustomerName, party.Name) {
			continue
		}
		entries = append(entries, Entry{
			Date:        NormalizeDate(s.Date),
			Description: fmt.Sprintf("Sale - %s (%.1f %s)", s.ProductName, s.Quantity, s.Unit),
			Debit:       s.TotalAmount,
		})
	}

	for _, bs := range set.BulkSales {
		if !sameParty(bs.CustomerName, party.Name) {
			continue
		}
		entries = append(entries, Entry{
			Date:        NormalizeDate(bs.Date),
			Description: fmt.Sprintf("Bulk Milk Sale (%.1f Ltr)", bs.QuantityLtr),
			Debit:       bs.TotalAmount,
		})
	}

	for _, p := range set.Purchases {
		if !sameParty(p.SupplierName, party.Name) {
			continue
		}
		entries = append(entries, Entry{
			Date:        NormalizeDate(p.Date),
			Description: fmt.Sprintf("Purchase - %s (%.1f %s)", p.ProductName, p.Quantity, p.Unit),
			Credit:      p.TotalAmount,
		})
	}

	for _, pay := range set.Payments {
		if !sameParty(pay.PartyName, party.Name) {
			continue
		}
		entry := Entry{
			Date:        NormalizeDate(pay.Date),
			Description: "Payment " + pay.Type,
		}
		if pay.Type == models.PaymentPaid {
			entry.Debit = pay.Amount
		} else {
			entry.Credit = pay.Amount
		}
		entries = append(entries, entry)
	}

	// Stable: equal dates keep source enumeration order. Ordering across
	// sources on the same day is an accepted ambiguity.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	balance := 0.0
	for i := range entries {
		balance += entries[i].Debit - entries[i].Credit
		entries[i].Debit = Round2(entries[i].Debit)
		entries[i].Credit = Round2(entries[i].Credit)
		entries[i].Balance = Round2(balance)
	}

	return entries
}

// PaymentSigns returns the debit/credit contribution of a payment under the
// receivable convention. Shared with the dashboard aggregator so the two
// code paths cannot drift apart.
func PaymentSigns(p *models.Payment) (debit, credit float64) {
	if p.Type == models.PaymentPaid {
		return p.Amount, 0
	}
	return 0, p.Amount
}

func sameParty(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
