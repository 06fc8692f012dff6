package models

// InitRequest carries the sale parameters for the one-time initialization.
// The owner is implicit: it is the caller identity from the host envelope.
type InitRequest struct {
	PresaleStart      int64  `json:"presale_start" binding:"required" example:"1735689600"`
	PresaleEnd        int64  `json:"presale_end" binding:"required" example:"1738368000"`
	TotalSupply       uint64 `json:"total_supply" binding:"required" example:"1000000"`
	TokenPrice        uint64 `json:"token_price" binding:"required" example:"1"`
	VestingPeriod     int64  `json:"vesting_period" binding:"required" example:"15552000"`
	VestingStepPeriod int64  `json:"vesting_step_period" binding:"required" example:"2592000"`
	Denom             string `json:"denom" binding:"required" example:"uusd"`
}

// PurchaseRequest carries the requested quantity and the tendered funds.
type PurchaseRequest struct {
	Quantity uint64 `json:"quantity" binding:"required" example:"100"`
	// Funds may be empty; the service rejects underfunded purchases itself.
	Funds []Coin `json:"funds"`
}

// AddressRequest carries a single identity argument (bind token contract,
// change owner).
type AddressRequest struct {
	Address string `json:"address" binding:"required" example:"EQBCFwW8uFUh-amdRmNY9NyeDEaeDYXd9ggJGsicpqVcHq7B"`
}

// ExecuteResponse is the success envelope for mutating entry points: the
// outbound instructions the host must dispatch now that the call committed.
type ExecuteResponse struct {
	Success      bool          `json:"success" example:"true"`
	Instructions []Instruction `json:"instructions"`
}

// ParticipantsResponse lists every distinct buyer in first-purchase order.
type ParticipantsResponse struct {
	Participants []string `json:"participants"`
}

// ErrorResponse is the error envelope, mirrored here for swagger.
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Code      string `json:"code" example:"NOT_ENOUGH_FUNDS"`
	Message   string `json:"message" example:"tendered 99 uusd, need 100"`
	RequestID string `json:"request_id,omitempty"`
}
