package reports

import (
	"strings"
	"time"

	"dairybook/internal/ledger"
	"dairybook/internal/models"
)

// DashboardSummary holds whole-period totals for the dashboard. Amounts are
// rounded to 2 decimals, quantities to 1, once at the end of aggregation.
type DashboardSummary struct {
	TotalMilkPurchasedLtr float64 `json:"total_milk_purchased_ltr"`
	TotalMilkPurchaseCost float64 `json:"total_milk_purchase_cost"`
	TotalMilkSoldLtr      float64 `json:"total_milk_sold_ltr"`
	TotalMilkSaleAmount   float64 `json:"total_milk_sale_amount"`
	GheeSoldKg            float64 `json:"ghee_sold_kg"`
	GheeSaleAmount        float64 `json:"ghee_sale_amount"`
	FeedSaleAmount        float64 `json:"feed_sale_amount"`
	TotalSaleAmount       float64 `json:"total_sale_amount"`
	NetPartyDues          float64 `json:"net_party_dues"`
}

// ChartPoint is one calendar day's purchased/sold value pair.
type ChartPoint struct {
	Date           string  `json:"date"`
	PurchasedValue float64 `json:"purchased_value"`
	SoldValue      float64 `json:"sold_value"`
}

// AggregateDashboard scans milk collections, sales, bulk sales and payments
// within [start, end] in a single pass, producing per-day purchased/sold
// value series, category totals and the net outstanding dues across all
// parties. Purchases are consumed only for feed-vocabulary discovery.
//
// Party balances are maintained for every party simultaneously in one map
// rather than replaying a ledger per party: the per-party replay is
// O(parties x transactions) and this path fans out to all parties.
//
// Opening balances count toward dues only when their as-of date is on or
// before the period end: net dues is a snapshot "as of end of range", not
// "change during range".
func AggregateDashboard(start, end time.Time, parties []*models.Party, set ledger.TransactionSet) (*DashboardSummary, []ChartPoint) {
	summary := &DashboardSummary{}
	buckets := newDayBuckets(start, end)
	purchased := make([]float64, buckets.len())
	sold := make([]float64, buckets.len())

	classifier := NewClassifier(set.Purchases)

	partyType := make(map[string]string, len(parties))
	balances := make(map[string]float64, len(parties))
	for _, p := range parties {
		name := strings.TrimSpace(p.Name)
		partyType[name] = p.Type
		if p.OpeningBalanceDate == nil || !dayOf(*p.OpeningBalanceDate).After(dayOf(end)) {
			balances[name] += p.OpeningBalance
		}
	}

	for _, mc := range set.MilkCollections {
		date := ledger.NormalizeDate(mc.Date)
		if !inRange(date, start, end) {
			continue
		}
		if i, ok := buckets.idx(date); ok {
			purchased[i] += mc.NetAmountPayable
		}
		summary.TotalMilkPurchasedLtr += mc.QuantityLtr
		summary.TotalMilkPurchaseCost += mc.NetAmountPayable
		name := strings.TrimSpace(mc.PartyName)
		if partyType[name] == models.PartyTypeCustomer {
			balances[name] -= mc.NetAmountPayable
		}
	}

	for _, s := range set.Sales {
		date := ledger.NormalizeDate(s.Date)
		if !inRange(date, start, end) {
			continue
		}
		if i, ok := buckets.idx(date); ok {
			sold[i] += s.TotalAmount
		}
		summary.TotalSaleAmount += s.TotalAmount
		switch classifier.Classify(s.Unit, s.ProductName) {
		case LineMilk:
			summary.TotalMilkSoldLtr += s.Quantity
			summary.TotalMilkSaleAmount += s.TotalAmount
		case LineGhee:
			summary.GheeSoldKg += s.Quantity
			summary.GheeSaleAmount += s.TotalAmount
		case LineFeed:
			summary.FeedSaleAmount += s.TotalAmount
		}
		name := strings.TrimSpace(s.CustomerName)
		if _, ok := partyType[name]; ok {
			balances[name] += s.TotalAmount
		}
	}

	for _, bs := range set.BulkSales {
		date := ledger.NormalizeDate(bs.Date)
		if !inRange(date, start, end) {
			continue
		}
		if i, ok := buckets.idx(date); ok {
			sold[i] += bs.TotalAmount
		}
		summary.TotalSaleAmount += bs.TotalAmount
		summary.TotalMilkSoldLtr += bs.QuantityLtr
		summary.TotalMilkSaleAmount += bs.TotalAmount
		name := strings.TrimSpace(bs.CustomerName)
		if _, ok := partyType[name]; ok {
			balances[name] += bs.TotalAmount
		}
	}

	for _, pay := range set.Payments {
		date := ledger.NormalizeDate(pay.Date)
		if !inRange(date, start, end) {
			continue
		}
		name := strings.TrimSpace(pay.PartyName)
		if _, ok := partyType[name]; ok {
			debit, credit := ledger.PaymentSigns(pay)
			balances[name] += debit - credit
		}
	}

	for _, balance := range balances {
		summary.NetPartyDues += balance
	}

	summary.TotalMilkPurchasedLtr = ledger.Round1(summary.TotalMilkPurchasedLtr)
	summary.TotalMilkPurchaseCost = ledger.Round2(summary.TotalMilkPurchaseCost)
	summary.TotalMilkSoldLtr = ledger.Round1(summary.TotalMilkSoldLtr)
	summary.TotalMilkSaleAmount = ledger.Round2(summary.TotalMilkSaleAmount)
	summary.GheeSoldKg = ledger.Round1(summary.GheeSoldKg)
	summary.GheeSaleAmount = ledger.Round2(summary.GheeSaleAmount)
	summary.FeedSaleAmount = ledger.Round2(summary.FeedSaleAmount)
	summary.TotalSaleAmount = ledger.Round2(summary.TotalSaleAmount)
	summary.NetPartyDues = ledger.Round2(summary.NetPartyDues)

	series := make([]ChartPoint, buckets.len())
	for i := range series {
		series[i] = ChartPoint{
			Date:           buckets.label(i),
			PurchasedValue: ledger.Round2(purchased[i]),
			SoldValue:      ledger.Round2(sold[i]),
		}
	}

	return summary, series
}
