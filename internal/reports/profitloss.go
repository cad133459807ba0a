package reports

import (
	"time"

	"dairybook/internal/ledger"
)

// ProfitLossSummary is the whole-period P&L. Closing stock is valued with
// the weighted-average-cost method, assuming zero stock carried in from
// before the period: no persistent inventory ledger is kept.
type ProfitLossSummary struct {
	MilkRetailRevenue float64 `json:"milk_retail_revenue"`
	MilkBulkRevenue   float64 `json:"milk_bulk_revenue"`
	GheeRevenue       float64 `json:"ghee_revenue"`
	FeedRevenue       float64 `json:"feed_revenue"`
	TotalRevenue      float64 `json:"total_revenue"`

	MilkPurchaseCost float64 `json:"milk_purchase_cost"`
	GheePurchaseCost float64 `json:"ghee_purchase_cost"`
	FeedPurchaseCost float64 `json:"feed_purchase_cost"`
	TotalPurchases   float64 `json:"total_purchases"`

	ClosingStockValue float64 `json:"closing_stock_value"`
	CostOfGoodsSold   float64 `json:"cost_of_goods_sold"`
	GrossProfit       float64 `json:"gross_profit"`
	OperatingExpenses float64 `json:"operating_expenses"`
	NetProfitLoss     float64 `json:"net_profit_loss"`
}

// PLChartPoint is one calendar day's revenue/COGS/net-profit triple.
type PLChartPoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	COGS      float64 `json:"cogs"`
	NetProfit float64 `json:"net_profit"`
}

type stock struct {
	purchasedQty float64
	purchaseCost float64
	soldQty      float64
}

// avgUnitCost is 0 when nothing was purchased, never NaN.
func (s stock) avgUnitCost() float64 {
	if s.purchasedQty == 0 {
		return 0
	}
	return s.purchaseCost / s.purchasedQty
}

// closingValue clamps remaining quantity at zero: overselling against
// unmodeled prior-period stock contributes nothing.
func (s stock) closingValue() float64 {
	remaining := s.purchasedQty - s.soldQty
	if remaining < 0 {
		remaining = 0
	}
	return remaining * s.avgUnitCost()
}

// ComputeProfitLoss derives the period P&L from the in-period transaction
// streams. Two passes: the classifier's feed-vocabulary discovery over
// purchases, then one aggregation pass over sales, bulk sales, milk
// collections and purchases.
//
// The daily COGS series applies the period-average unit cost to each day's
// sold quantity. That is an approximation, not day-by-day inventory
// costing; only the period summary uses the full weighted-average model.
func ComputeProfitLoss(start, end time.Time, set ledger.TransactionSet) (*ProfitLossSummary, []PLChartPoint) {
	summary := &ProfitLossSummary{}
	buckets := newDayBuckets(start, end)
	revenueDay := make([]float64, buckets.len())
	milkSoldDay := make([]float64, buckets.len())
	gheeSoldDay := make([]float64, buckets.len())
	feedSoldDay := make(map[string][]float64)

	classifier := NewClassifier(set.Purchases)

	var milk, ghee stock
	feed := make(map[string]*stock)
	feedStock := func(name string) *stock {
		if feed[name] == nil {
			feed[name] = &stock{}
		}
		return feed[name]
	}

	for _, s := range set.Sales {
		date := ledger.NormalizeDate(s.Date)
		if !inRange(date, start, end) {
			continue
		}
		i, ok := buckets.idx(date)
		if !ok {
			continue
		}
		revenueDay[i] += s.TotalAmount
		summary.TotalRevenue += s.TotalAmount
		switch classifier.Classify(s.Unit, s.ProductName) {
		case LineMilk:
			summary.MilkRetailRevenue += s.TotalAmount
			milk.soldQty += s.Quantity
			milkSoldDay[i] += s.Quantity
		case LineGhee:
			summary.GheeRevenue += s.TotalAmount
			ghee.soldQty += s.Quantity
			gheeSoldDay[i] += s.Quantity
		case LineFeed:
			name := normalizeName(s.ProductName)
			summary.FeedRevenue += s.TotalAmount
			feedStock(name).soldQty += s.Quantity
			if feedSoldDay[name] == nil {
				feedSoldDay[name] = make([]float64, buckets.len())
			}
			feedSoldDay[name][i] += s.Quantity
		}
	}

	for _, bs := range set.BulkSales {
		date := ledger.NormalizeDate(bs.Date)
		if !inRange(date, start, end) {
			continue
		}
		i, ok := buckets.idx(date)
		if !ok {
			continue
		}
		revenueDay[i] += bs.TotalAmount
		summary.TotalRevenue += bs.TotalAmount
		summary.MilkBulkRevenue += bs.TotalAmount
		milk.soldQty += bs.QuantityLtr
		milkSoldDay[i] += bs.QuantityLtr
	}

	for _, mc := range set.MilkCollections {
		date := ledger.NormalizeDate(mc.Date)
		if !inRange(date, start, end) {
			continue
		}
		summary.MilkPurchaseCost += mc.NetAmountPayable
		milk.purchasedQty += mc.QuantityLtr
		milk.purchaseCost += mc.NetAmountPayable
	}

	for _, p := range set.Purchases {
		date := ledger.NormalizeDate(p.Date)
		if !inRange(date, start, end) {
			continue
		}
		switch classifier.Classify(p.Unit, p.ProductName) {
		case LineGhee:
			summary.GheePurchaseCost += p.TotalAmount
			ghee.purchasedQty += p.Quantity
			ghee.purchaseCost += p.TotalAmount
		case LineFeed:
			name := normalizeName(p.ProductName)
			summary.FeedPurchaseCost += p.TotalAmount
			fs := feedStock(name)
			fs.purchasedQty += p.Quantity
			fs.purchaseCost += p.TotalAmount
		}
	}

	summary.TotalPurchases = summary.MilkPurchaseCost + summary.GheePurchaseCost + summary.FeedPurchaseCost

	summary.ClosingStockValue = milk.closingValue() + ghee.closingValue()
	for _, fs := range feed {
		summary.ClosingStockValue += fs.closingValue()
	}

	summary.CostOfGoodsSold = summary.TotalPurchases - summary.ClosingStockValue
	summary.GrossProfit = summary.TotalRevenue - summary.CostOfGoodsSold
	summary.OperatingExpenses = 0 // expense tracking is out of scope
	summary.NetProfitLoss = summary.GrossProfit - summary.OperatingExpenses

	series := make([]PLChartPoint, buckets.len())
	for i := range series {
		cogs := milkSoldDay[i]*milk.avgUnitCost() + gheeSoldDay[i]*ghee.avgUnitCost()
		for name, daily := range feedSoldDay {
			cogs += daily[i] * feedStock(name).avgUnitCost()
		}
		series[i] = PLChartPoint{
			Date:      buckets.label(i),
			Revenue:   ledger.Round2(revenueDay[i]),
			COGS:      ledger.Round2(cogs),
			NetProfit: ledger.Round2(revenueDay[i] - cogs),
		}
	}

	summary.MilkRetailRevenue = ledger.Round2(summary.MilkRetailRevenue)
	summary.MilkBulkRevenue = ledger.Round2(summary.MilkBulkRevenue)
	summary.GheeRevenue = ledger.Round2(summary.GheeRevenue)
	summary.FeedRevenue = ledger.Round2(summary.FeedRevenue)
	summary.TotalRevenue = ledger.Round2(summary.TotalRevenue)
	summary.MilkPurchaseCost = ledger.Round2(summary.MilkPurchaseCost)
	summary.GheePurchaseCost = ledger.Round2(summary.GheePurchaseCost)
	summary.FeedPurchaseCost = ledger.Round2(summary.FeedPurchaseCost)
	summary.TotalPurchases = ledger.Round2(summary.TotalPurchases)
	summary.ClosingStockValue = ledger.Round2(summary.ClosingStockValue)
	summary.CostOfGoodsSold = ledger.Round2(summary.CostOfGoodsSold)
	summary.GrossProfit = ledger.Round2(summary.GrossProfit)
	summary.NetProfitLoss = ledger.Round2(summary.NetProfitLoss)

	return summary, series
}
