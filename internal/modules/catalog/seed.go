package catalog

import "github.com/mavenwealth/optimizer/internal/domain"

// BenchmarkTickers maps each asset class to the index ETF used as its
// performance benchmark in scoring and comparison.
var BenchmarkTickers = map[domain.AssetClass]string{
	domain.USEquity:      "ITOT",
	domain.IntlDeveloped: "IEFA",
	domain.EmergingMkts:  "IEMG",
	domain.USBonds:       "AGG",
	domain.IntlBonds:     "BNDX",
	domain.Alternatives:  "GLD",
}

func f(v float64) *float64 { return &v }

// SeedFunds returns the bundled fund universe. Returns and standard
// deviations are annualized percentage points from a static snapshot;
// expense ratios are fractions; AUM is in dollars.
func SeedFunds() []domain.Fund {
	return []domain.Fund{
		// Benchmark ETFs
		{Ticker: "ITOT", Name: "iShares Core S&P Total US Stock Market ETF", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0003, AUM: 62e9, Return1Y: f(24.1), Return3Y: f(9.8), Return5Y: f(14.2), Return10Y: f(12.4), StdDev3Y: f(17.1)},
		{Ticker: "IEFA", Name: "iShares Core MSCI EAFE ETF", Type: domain.FundTypeETF, AssetClass: domain.IntlDeveloped,
			ExpenseRatio: 0.0007, AUM: 121e9, Return1Y: f(11.9), Return3Y: f(5.1), Return5Y: f(7.8), Return10Y: f(5.4), StdDev3Y: f(16.8)},
		{Ticker: "IEMG", Name: "iShares Core MSCI Emerging Markets ETF", Type: domain.FundTypeETF, AssetClass: domain.EmergingMkts,
			ExpenseRatio: 0.0009, AUM: 82e9, Return1Y: f(12.3), Return3Y: f(-1.7), Return5Y: f(4.1), Return10Y: f(3.2), StdDev3Y: f(17.9)},
		{Ticker: "AGG", Name: "iShares Core US Aggregate Bond ETF", Type: domain.FundTypeETF, AssetClass: domain.USBonds,
			ExpenseRatio: 0.0003, AUM: 116e9, Return1Y: f(2.6), Return3Y: f(-2.4), Return5Y: f(0.2), Return10Y: f(1.3), StdDev3Y: f(7.2)},
		{Ticker: "BNDX", Name: "Vanguard Total International Bond ETF", Type: domain.FundTypeETF, AssetClass: domain.IntlBonds,
			ExpenseRatio: 0.0007, AUM: 58e9, Return1Y: f(4.8), Return3Y: f(-1.1), Return5Y: f(0.1), Return10Y: f(2.0), StdDev3Y: f(6.4)},
		{Ticker: "GLD", Name: "SPDR Gold Shares", Type: domain.FundTypeETF, AssetClass: domain.Alternatives,
			ExpenseRatio: 0.0040, AUM: 74e9, Return1Y: f(29.2), Return3Y: f(13.8), Return5Y: f(11.1), Return10Y: f(8.3), StdDev3Y: f(13.9)},

		// US Equity
		{Ticker: "VOO", Name: "Vanguard S&P 500 ETF", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0003, AUM: 520e9, Return1Y: f(24.9), Return3Y: f(10.3), Return5Y: f(14.6), Return10Y: f(12.8), StdDev3Y: f(16.9)},
		{Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0003, AUM: 440e9, Return1Y: f(24.0), Return3Y: f(9.6), Return5Y: f(14.1), Return10Y: f(12.3), StdDev3Y: f(17.2)},
		{Ticker: "SPY", Name: "SPDR S&P 500 ETF Trust", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0009, AUM: 560e9, Return1Y: f(24.8), Return3Y: f(10.2), Return5Y: f(14.5), Return10Y: f(12.7), StdDev3Y: f(16.9)},
		{Ticker: "QQQ", Name: "Invesco QQQ Trust", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0020, AUM: 300e9, Return1Y: f(29.0), Return3Y: f(11.4), Return5Y: f(19.6), Return10Y: f(17.8), StdDev3Y: f(21.5)},
		{Ticker: "SCHD", Name: "Schwab US Dividend Equity ETF", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0006, AUM: 63e9, Return1Y: f(14.2), Return3Y: f(6.5), Return5Y: f(11.8), Return10Y: f(11.1), StdDev3Y: f(15.0)},
		{Ticker: "VUG", Name: "Vanguard Growth ETF", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0004, AUM: 130e9, Return1Y: f(31.5), Return3Y: f(11.0), Return5Y: f(17.9), Return10Y: f(15.4), StdDev3Y: f(20.6)},
		{Ticker: "VTV", Name: "Vanguard Value ETF", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0004, AUM: 118e9, Return1Y: f(17.6), Return3Y: f(8.2), Return5Y: f(10.9), Return10Y: f(9.8), StdDev3Y: f(14.5)},
		{Ticker: "IWM", Name: "iShares Russell 2000 ETF", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0019, AUM: 66e9, Return1Y: f(17.9), Return3Y: f(1.8), Return5Y: f(8.1), Return10Y: f(7.9), StdDev3Y: f(21.3)},
		{Ticker: "USMV", Name: "iShares MSCI USA Min Vol Factor ETF", Type: domain.FundTypeETF, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0015, AUM: 24e9, Return1Y: f(16.3), Return3Y: f(8.6), Return5Y: f(9.7), Return10Y: f(10.4), StdDev3Y: f(12.1)},
		{Ticker: "FXAIX", Name: "Fidelity 500 Index Fund", Type: domain.FundTypeMutualFund, AssetClass: domain.USEquity,
			ExpenseRatio: 0.000015, AUM: 580e9, Return1Y: f(24.9), Return3Y: f(10.3), Return5Y: f(14.6), Return10Y: f(12.8), StdDev3Y: f(16.9), Active: false},
		{Ticker: "VTSAX", Name: "Vanguard Total Stock Market Index Fund Admiral", Type: domain.FundTypeMutualFund, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0004, AUM: 1500e9, Return1Y: f(24.0), Return3Y: f(9.6), Return5Y: f(14.1), Return10Y: f(12.3), StdDev3Y: f(17.2)},
		{Ticker: "AGTHX", Name: "American Funds Growth Fund of America", Type: domain.FundTypeMutualFund, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0062, AUM: 280e9, Return1Y: f(28.4), Return3Y: f(8.9), Return5Y: f(15.3), Return10Y: f(13.1), StdDev3Y: f(18.7), Active: true},
		{Ticker: "AWSHX", Name: "American Funds Washington Mutual Investors", Type: domain.FundTypeMutualFund, AssetClass: domain.USEquity,
			ExpenseRatio: 0.0057, AUM: 180e9, Return1Y: f(19.8), Return3Y: f(9.4), Return5Y: f(12.1), Return10Y: f(11.0), StdDev3Y: f(14.8), Active: true},

		// International Developed
		{Ticker: "VEA", Name: "Vanguard FTSE Developed Markets ETF", Type: domain.FundTypeETF, AssetClass: domain.IntlDeveloped,
			ExpenseRatio: 0.0005, AUM: 138e9, Return1Y: f(12.1), Return3Y: f(5.0), Return5Y: f(7.7), Return10Y: f(5.5), StdDev3Y: f(16.6)},
		{Ticker: "VXUS", Name: "Vanguard Total International Stock ETF", Type: domain.FundTypeETF, AssetClass: domain.IntlDeveloped,
			ExpenseRatio: 0.0008, AUM: 74e9, Return1Y: f(12.0), Return3Y: f(3.8), Return5Y: f(7.0), Return10Y: f(5.0), StdDev3Y: f(16.4)},
		{Ticker: "EFA", Name: "iShares MSCI EAFE ETF", Type: domain.FundTypeETF, AssetClass: domain.IntlDeveloped,
			ExpenseRatio: 0.0033, AUM: 56e9, Return1Y: f(11.5), Return3Y: f(5.0), Return5Y: f(7.5), Return10Y: f(5.2), StdDev3Y: f(16.9)},
		{Ticker: "EFAV", Name: "iShares MSCI EAFE Min Vol Factor ETF", Type: domain.FundTypeETF, AssetClass: domain.IntlDeveloped,
			ExpenseRatio: 0.0020, AUM: 7e9, Return1Y: f(10.4), Return3Y: f(4.4), Return5Y: f(4.9), Return10Y: f(4.5), StdDev3Y: f(12.3)},
		{Ticker: "VTMGX", Name: "Vanguard Developed Markets Index Fund Admiral", Type: domain.FundTypeMutualFund, AssetClass: domain.IntlDeveloped,
			ExpenseRatio: 0.0007, AUM: 190e9, Return1Y: f(12.1), Return3Y: f(5.0), Return5Y: f(7.7), Return10Y: f(5.5), StdDev3Y: f(16.6)},
		{Ticker: "FTIHX", Name: "Fidelity Total International Index Fund", Type: domain.FundTypeMutualFund, AssetClass: domain.IntlDeveloped,
			ExpenseRatio: 0.0006, AUM: 14e9, Return1Y: f(11.8), Return3Y: f(3.9), Return5Y: f(7.0), Return10Y: nil, StdDev3Y: f(16.5)},
		{Ticker: "CWGIX", Name: "American Funds Capital World Growth and Income", Type: domain.FundTypeMutualFund, AssetClass: domain.IntlDeveloped,
			ExpenseRatio: 0.0076, AUM: 130e9, Return1Y: f(18.6), Return3Y: f(7.1), Return5Y: f(10.3), Return10Y: f(8.7), StdDev3Y: f(15.6), Active: true},

		// Emerging Markets
		{Ticker: "VWO", Name: "Vanguard FTSE Emerging Markets ETF", Type: domain.FundTypeETF, AssetClass: domain.EmergingMkts,
			ExpenseRatio: 0.0008, AUM: 79e9, Return1Y: f(12.9), Return3Y: f(-0.9), Return5Y: f(4.3), Return10Y: f(3.5), StdDev3Y: f(17.3)},
		{Ticker: "EEM", Name: "iShares MSCI Emerging Markets ETF", Type: domain.FundTypeETF, AssetClass: domain.EmergingMkts,
			ExpenseRatio: 0.0070, AUM: 18e9, Return1Y: f(12.5), Return3Y: f(-2.2), Return5Y: f(3.5), Return10Y: f(2.9), StdDev3Y: f(18.1)},
		{Ticker: "EEMV", Name: "iShares MSCI Emerging Markets Min Vol Factor ETF", Type: domain.FundTypeETF, AssetClass: domain.EmergingMkts,
			ExpenseRatio: 0.0025, AUM: 4e9, Return1Y: f(9.8), Return3Y: f(0.6), Return5Y: f(2.8), Return10Y: f(2.6), StdDev3Y: f(12.7)},

		// US Bonds
		{Ticker: "BND", Name: "Vanguard Total Bond Market ETF", Type: domain.FundTypeETF, AssetClass: domain.USBonds,
			ExpenseRatio: 0.0003, AUM: 117e9, Return1Y: f(2.7), Return3Y: f(-2.3), Return5Y: f(0.1), Return10Y: f(1.4), StdDev3Y: f(7.1)},
		{Ticker: "TLT", Name: "iShares 20+ Year Treasury Bond ETF", Type: domain.FundTypeETF, AssetClass: domain.USBonds,
			ExpenseRatio: 0.0015, AUM: 50e9, Return1Y: f(-4.8), Return3Y: f(-12.0), Return5Y: f(-5.3), Return10Y: f(-0.8), StdDev3Y: f(15.4)},
		{Ticker: "SHY", Name: "iShares 1-3 Year Treasury Bond ETF", Type: domain.FundTypeETF, AssetClass: domain.USBonds,
			ExpenseRatio: 0.0015, AUM: 24e9, Return1Y: f(4.4), Return3Y: f(1.2), Return5Y: f(1.3), Return10Y: f(1.2), StdDev3Y: f(1.9)},
		{Ticker: "LQD", Name: "iShares iBoxx Investment Grade Corporate Bond ETF", Type: domain.FundTypeETF, AssetClass: domain.USBonds,
			ExpenseRatio: 0.0014, AUM: 30e9, Return1Y: f(3.4), Return3Y: f(-2.9), Return5Y: f(0.5), Return10Y: f(2.3), StdDev3Y: f(9.3)},
		{Ticker: "TIP", Name: "iShares TIPS Bond ETF", Type: domain.FundTypeETF, AssetClass: domain.USBonds,
			ExpenseRatio: 0.0019, AUM: 14e9, Return1Y: f(3.8), Return3Y: f(-1.0), Return5Y: f(2.0), Return10Y: f(2.1), StdDev3Y: f(6.5)},
		{Ticker: "VBTLX", Name: "Vanguard Total Bond Market Index Fund Admiral", Type: domain.FundTypeMutualFund, AssetClass: domain.USBonds,
			ExpenseRatio: 0.0005, AUM: 310e9, Return1Y: f(2.7), Return3Y: f(-2.3), Return5Y: f(0.1), Return10Y: f(1.4), StdDev3Y: f(7.1)},
		{Ticker: "ABNDX", Name: "American Funds Bond Fund of America", Type: domain.FundTypeMutualFund, AssetClass: domain.USBonds,
			ExpenseRatio: 0.0058, AUM: 82e9, Return1Y: f(3.2), Return3Y: f(-2.0), Return5Y: f(0.4), Return10Y: f(1.7), StdDev3Y: f(7.0), Active: true},
		{Ticker: "FXNAX", Name: "Fidelity US Bond Index Fund", Type: domain.FundTypeMutualFund, AssetClass: domain.USBonds,
			ExpenseRatio: 0.00025, AUM: 60e9, Return1Y: f(2.6), Return3Y: f(-2.4), Return5Y: f(0.2), Return10Y: f(1.3), StdDev3Y: f(7.2)},

		// International Bonds
		{Ticker: "IAGG", Name: "iShares Core International Aggregate Bond ETF", Type: domain.FundTypeETF, AssetClass: domain.IntlBonds,
			ExpenseRatio: 0.0007, AUM: 7e9, Return1Y: f(4.9), Return3Y: f(-0.8), Return5Y: f(0.2), Return10Y: nil, StdDev3Y: f(6.2)},
		{Ticker: "BWX", Name: "SPDR Bloomberg International Treasury Bond ETF", Type: domain.FundTypeETF, AssetClass: domain.IntlBonds,
			ExpenseRatio: 0.0035, AUM: 1.2e9, Return1Y: f(5.6), Return3Y: f(-3.4), Return5Y: f(-2.1), Return10Y: f(-0.5), StdDev3Y: f(9.8)},

		// Alternatives
		{Ticker: "IAU", Name: "iShares Gold Trust", Type: domain.FundTypeETF, AssetClass: domain.Alternatives,
			ExpenseRatio: 0.0025, AUM: 33e9, Return1Y: f(29.4), Return3Y: f(14.0), Return5Y: f(11.3), Return10Y: f(8.5), StdDev3Y: f(13.8)},
		{Ticker: "VNQ", Name: "Vanguard Real Estate ETF", Type: domain.FundTypeETF, AssetClass: domain.Alternatives,
			ExpenseRatio: 0.0013, AUM: 34e9, Return1Y: f(7.9), Return3Y: f(-2.6), Return5Y: f(3.4), Return10Y: f(5.3), StdDev3Y: f(20.4)},
		{Ticker: "PDBC", Name: "Invesco Optimum Yield Diversified Commodity Strategy ETF", Type: domain.FundTypeETF, AssetClass: domain.Alternatives,
			ExpenseRatio: 0.0059, AUM: 4.4e9, Return1Y: f(2.1), Return3Y: f(3.9), Return5Y: f(7.6), Return10Y: nil, StdDev3Y: f(14.2), Active: true},
	}
}
