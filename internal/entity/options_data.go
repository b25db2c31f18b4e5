package entity

// OptionsData is one row of the NIFTY option chain, keyed by strike and
// expiry.
type OptionsData struct {
	StrikePrice float64 `json:"strike_price"`
	CallLTP     float64 `json:"call_ltp"`
	CallVolume  int64   `json:"call_volume"`
	PutLTP      float64 `json:"put_ltp"`
	PutVolume   int64   `json:"put_volume"`
	ExpiryDate  string  `json:"expiry_date"`
}
