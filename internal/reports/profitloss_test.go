package reports

import (
	"testing"
	"time"

	"dairybook/internal/ledger"
	"dairybook/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeProfitLoss_WeightedAverageClosingStock(t *testing.T) {
	start := day(2025, time.April, 1)
	end := day(2025, time.April, 30)

	set := ledger.TransactionSet{
		MilkCollections: []*models.MilkCollection{
			// 100 Ltr purchased for 3500 => avg cost 35/Ltr
			{Date: day(2025, time.April, 1), PartyName: "Ramesh", QuantityLtr: 60, NetAmountPayable: 2100},
			{Date: day(2025, time.April, 2), PartyName: "Ramesh", QuantityLtr: 40, NetAmountPayable: 1400},
		},
		Sales: []*models.Sale{
			// 70 Ltr sold
			{Date: day(2025, time.April, 3), CustomerName: "Hotel Anand", ProductName: "Milk", Unit: models.UnitLtr, Quantity: 70, TotalAmount: 4200},
		},
	}

	summary, _ := ComputeProfitLoss(start, end, set)

	assert.Equal(t, 4200.0, summary.MilkRetailRevenue)
	assert.Equal(t, 4200.0, summary.TotalRevenue)
	assert.Equal(t, 3500.0, summary.MilkPurchaseCost)
	assert.Equal(t, 3500.0, summary.TotalPurchases)

	// 30 Ltr remaining at 35/Ltr
	assert.Equal(t, 1050.0, summary.ClosingStockValue)
	assert.Equal(t, 2450.0, summary.CostOfGoodsSold)
	assert.Equal(t, 1750.0, summary.GrossProfit)
	assert.Equal(t, 0.0, summary.OperatingExpenses)
	assert.Equal(t, 1750.0, summary.NetProfitLoss)
}

func TestComputeProfitLoss_PerProductFeedStock(t *testing.T) {
	start := day(2025, time.April, 1)
	end := day(2025, time.April, 30)

	set := ledger.TransactionSet{
		Purchases: []*models.Purchase{
			{Date: day(2025, time.April, 1), SupplierName: "Feeds Co", ProductName: "Churi", Category: models.CategoryPashuAahar, Unit: models.UnitBag, Quantity: 10, TotalAmount: 12000},
			{Date: day(2025, time.April, 1), SupplierName: "Feeds Co", ProductName: "Khal", Category: models.CategoryPashuAahar, Unit: models.UnitBag, Quantity: 5, TotalAmount: 10000},
		},
		Sales: []*models.Sale{
			{Date: day(2025, time.April, 5), CustomerName: "Ramesh", ProductName: "Churi", Unit: models.UnitBag, Quantity: 4, TotalAmount: 5600},
		},
	}

	summary, _ := ComputeProfitLoss(start, end, set)

	assert.Equal(t, 5600.0, summary.FeedRevenue)
	assert.Equal(t, 22000.0, summary.FeedPurchaseCost)

	// Churi: 6 bags left at 1200 = 7200; Khal: 5 bags left at 2000 = 10000
	assert.Equal(t, 17200.0, summary.ClosingStockValue)
	assert.Equal(t, 4800.0, summary.CostOfGoodsSold)
	assert.Equal(t, 800.0, summary.GrossProfit)
}

func TestComputeProfitLoss_OversoldStockClampsToZero(t *testing.T) {
	start := day(2025, time.April, 1)
	end := day(2025, time.April, 30)

	set := ledger.TransactionSet{
		MilkCollections: []*models.MilkCollection{
			{Date: day(2025, time.April, 1), PartyName: "Ramesh", QuantityLtr: 50, NetAmountPayable: 1750},
		},
		BulkSales: []*models.BulkSale{
			// Sells more than was collected this period
			{Date: day(2025, time.April, 2), CustomerName: "Hotel Anand", QuantityLtr: 80, TotalAmount: 3200},
		},
	}

	summary, _ := ComputeProfitLoss(start, end, set)

	assert.Equal(t, 3200.0, summary.MilkBulkRevenue)
	assert.Equal(t, 0.0, summary.ClosingStockValue)
	// All purchases flow to COGS when nothing remains
	assert.Equal(t, 1750.0, summary.CostOfGoodsSold)
	assert.Equal(t, 1450.0, summary.NetProfitLoss)
}

func TestComputeProfitLoss_SalesWithoutPurchases(t *testing.T) {
	start := day(2025, time.April, 1)
	end := day(2025, time.April, 30)

	set := ledger.TransactionSet{
		Sales: []*models.Sale{
			{Date: day(2025, time.April, 3), CustomerName: "Ramesh", ProductName: "Ghee", Unit: models.UnitKg, Quantity: 2, TotalAmount: 1300},
		},
	}

	summary, series := ComputeProfitLoss(start, end, set)

	// No purchased quantity: average unit cost is 0, never NaN
	assert.Equal(t, 1300.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.TotalPurchases)
	assert.Equal(t, 0.0, summary.ClosingStockValue)
	assert.Equal(t, 0.0, summary.CostOfGoodsSold)
	assert.Equal(t, 1300.0, summary.NetProfitLoss)

	assert.Equal(t, 0.0, series[2].COGS)
	assert.Equal(t, 1300.0, series[2].Revenue)
	assert.Equal(t, 1300.0, series[2].NetProfit)
}

func TestComputeProfitLoss_DailySeriesUsesPeriodAverageCost(t *testing.T) {
	start := day(2025, time.April, 1)
	end := day(2025, time.April, 3)

	set := ledger.TransactionSet{
		MilkCollections: []*models.MilkCollection{
			{Date: day(2025, time.April, 1), PartyName: "Ramesh", QuantityLtr: 100, NetAmountPayable: 3000},
		},
		Sales: []*models.Sale{
			{Date: day(2025, time.April, 2), CustomerName: "Hotel Anand", ProductName: "Milk", Unit: models.UnitLtr, Quantity: 20, TotalAmount: 1000},
			{Date: day(2025, time.April, 3), CustomerName: "Hotel Anand", ProductName: "Milk", Unit: models.UnitLtr, Quantity: 10, TotalAmount: 500},
		},
	}

	_, series := ComputeProfitLoss(start, end, set)

	assert.Len(t, series, 3)
	// avg cost 30/Ltr
	assert.Equal(t, 600.0, series[1].COGS)
	assert.Equal(t, 400.0, series[1].NetProfit)
	assert.Equal(t, 300.0, series[2].COGS)
	assert.Equal(t, "01 Apr", series[0].Date)
}

func TestComputeProfitLoss_EmptyPeriod(t *testing.T) {
	start := day(2025, time.April, 1)
	end := day(2025, time.April, 30)

	summary, series := ComputeProfitLoss(start, end, ledger.TransactionSet{})

	assert.Equal(t, &ProfitLossSummary{}, summary)
	assert.Len(t, series, 30)
}
