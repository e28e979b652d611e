package analyzer

// Holding is one position of a brokerage export.
// Holdings are values: the engine never modifies them once loaded.
type Holding struct {
	Symbol       string   `json:"symbol"`
	Company      string   `json:"company"`
	Sector       string   `json:"sector"`
	Quantity     Quantity `json:"quantity"`
	CurrentValue Money    `json:"current_value"`
	GainLoss     Money    `json:"gain_loss"`
	ReturnPct    Percent  `json:"return_pct"`
}

// IsGain reports whether the position is not at a loss.
func (h Holding) IsGain() bool { return !h.GainLoss.IsNegative() }

// Equal compares all the fields of two holdings.
func (h Holding) Equal(o Holding) bool {
	return h.Symbol == o.Symbol &&
		h.Company == o.Company &&
		h.Sector == o.Sector &&
		h.Quantity.Equal(o.Quantity) &&
		h.CurrentValue.Equal(o.CurrentValue) &&
		h.GainLoss.Equal(o.GainLoss) &&
		h.ReturnPct.Equal(o.ReturnPct)
}

// Symbols returns the symbols of holdings, in order.
func Symbols(holdings []Holding) []string {
	s := make([]string, len(holdings))
	for i, h := range holdings {
		s[i] = h.Symbol
	}
	return s
}
