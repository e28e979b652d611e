package analyzer

// SampleData returns the demonstration portfolio.
//
// Uploaded exports are not parsed yet: their analysis yields this portfolio too.
// Each call returns a fresh value.
func SampleData() *Portfolio {
	inr := func(v float64) Money { return M(v, DefaultCurrency) }
	h := func(symbol, company, sector string, quantity int, value, gain, ret float64) Holding {
		return Holding{
			Symbol:       symbol,
			Company:      company,
			Sector:       sector,
			Quantity:     Q(quantity),
			CurrentValue: inr(value),
			GainLoss:     inr(gain),
			ReturnPct:    P(ret),
		}
	}
	sector := func(name string, value, pct float64) SectorAllocation {
		return SectorAllocation{Sector: name, Value: inr(value), Percentage: P(pct)}
	}
	marketCap := func(category string, value, pct float64) MarketCapAllocation {
		return MarketCapAllocation{Category: category, Value: inr(value), Percentage: P(pct)}
	}

	return &Portfolio{
		Currency: DefaultCurrency,
		Summary: Summary{
			ClientCode:       "N534952",
			TotalScrips:      66,
			MarketValue:      inr(1443049),
			InvestedValue:    inr(1673400),
			OverallGainLoss:  inr(-230351.55),
			ReturnPercentage: P(-13.77),
		},
		Holdings: []Holding{
			h("RELIANCE", "Reliance Industries", "Oil Exploration/Refineries", 100, 71205.50, 6005.50, 9.22),
			h("TCS", "Tata Consultancy", "Information Technology", 50, 180500, -5500, -2.96),
			h("INFY", "Infosys Ltd", "Information Technology", 75, 112875, 8750, 8.41),
			h("HDFC", "HDFC Bank", "Finance/NBFC", 80, 128000, -12000, -8.57),
			h("ICICIBANK", "ICICI Bank", "Finance/NBFC", 60, 57600, 3600, 6.67),
			h("SUVEN", "Suven Life Sciences", "Pharmaceuticals & Drugs", 200, 70672, 24972, 54.69),
			h("CUPID", "Cupid Ltd", "Pharmaceuticals & Drugs", 150, 52180, 11305, 27.66),
			h("SADBHAV", "Sadbhav Engineering", "Capital Goods", 300, 56900, -64240, -53.08),
			h("IDEA", "Vodafone Idea", "Telecom", 500, 34750, -37500, -51.87),
			h("HCG", "HealthCare Global", "Healthcare Services", 120, 53424, 8424, 18.74),
			h("BOMDYEING", "Bombay Dyeing", "Textiles", 400, 151700, -50300, -24.89),
			h("WIPRO", "Wipro Ltd", "Information Technology", 90, 43200, 2800, 6.94),
		},
		Sectors: []SectorAllocation{
			sector("Information Technology", 336575, 23.33),
			sector("Pharmaceuticals & Drugs", 122852, 8.52),
			sector("Finance/NBFC", 185600, 12.86),
			sector("Oil Exploration/Refineries", 71206, 4.93),
			sector("Capital Goods", 56900, 3.94),
			sector("Textiles", 151700, 10.51),
			sector("Telecom", 34750, 2.41),
			sector("Healthcare Services", 53424, 3.70),
			sector("Others", 430042, 29.80),
		},
		MarketCaps: []MarketCapAllocation{
			marketCap("LargeCap", 578381, 40.08),
			marketCap("MidCap", 360317, 24.97),
			marketCap("SmallCap", 504351, 34.95),
		},
	}
}
