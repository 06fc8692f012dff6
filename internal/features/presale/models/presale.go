package models

// PresaleConfig is the singleton sale record: parameters fixed at initialization
// plus the running totals mutated by purchases and admin operations.
// @Description Presale configuration and running totals
type PresaleConfig struct {
	Owner             string `json:"owner" example:"EQCD39VS5jcptHL8vMjEXrzGaRcCVYto7HUn4bpAOg8xqB2N"`
	TokenContract     string `json:"token_contract" example:"EQBCFwW8uFUh-amdRmNY9NyeDEaeDYXd9ggJGsicpqVcHq7B"`
	PresaleStart      int64  `json:"presale_start" example:"1735689600"`
	PresaleEnd        int64  `json:"presale_end" example:"1738368000"`
	TotalSupply       uint64 `json:"total_supply" example:"1000000"`
	TokenSoldAmount   uint64 `json:"token_sold_amount" example:"250000"`
	TokenPrice        uint64 `json:"token_price" example:"1"`
	VestingPeriod     int64  `json:"vesting_period" example:"15552000"`
	VestingStepPeriod int64  `json:"vesting_step_period" example:"2592000"`
	Denom             string `json:"denom" example:"uusd"`

	// RetainedFunds tracks coins tendered alongside purchases in currencies other
	// than Denom. Only the matching-denom amount is forwarded to the owner on a
	// purchase; everything else stays here until WithdrawFunds sweeps it.
	RetainedFunds map[string]uint64 `json:"retained_funds,omitempty"`
}

// TokenContractPlaceholder is the value of PresaleConfig.TokenContract until an
// owner binds a real token contract.
const TokenContractPlaceholder = "token_address"

// UserRecord is one buyer's ledger entry. TotalToken only ever grows;
// ReceivedToken and LastReceivedTime anchor a future vesting claim operation
// and are not advanced by any current code path.
// @Description Per-buyer purchase and vesting record
type UserRecord struct {
	Address          string `json:"address" example:"EQAYqo4u7VF0fa4gPlY56gywu3sb4GmFKRQwIWlJPKNHUG-v"`
	TotalToken       uint64 `json:"total_token" example:"400"`
	ReceivedToken    uint64 `json:"received_token" example:"0"`
	LastReceivedTime int64  `json:"last_received_time" example:"1738365408"`
}

// Coin is a currency-amount pair as supplied in the host envelope.
type Coin struct {
	Denom  string `json:"denom" example:"uusd"`
	Amount uint64 `json:"amount" example:"100"`
}

// AmountOf returns the total amount of the given denom across the tendered
// coins, zero if none match.
func AmountOf(funds []Coin, denom string) uint64 {
	var total uint64
	for _, c := range funds {
		if c.Denom == denom {
			total += c.Amount
		}
	}
	return total
}
