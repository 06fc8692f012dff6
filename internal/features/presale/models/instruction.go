package models

// InstructionType discriminates the outbound instruction variants the ledger
// can emit. The host executes instructions only after the call commits.
type InstructionType string

const (
	InstructionSendFunds  InstructionType = "send_funds"
	InstructionMintTokens InstructionType = "mint_tokens"
)

// Instruction is a single outbound action for the host's message layer.
// Exactly one of the payload groups is populated, according to Type.
type Instruction struct {
	Type InstructionType `json:"type" example:"send_funds"`

	// send_funds payload
	ToAddress string `json:"to_address,omitempty"`
	Funds     []Coin `json:"funds,omitempty"`

	// mint_tokens payload
	TokenContract string `json:"token_contract,omitempty"`
	Recipient     string `json:"recipient,omitempty"`
	Amount        uint64 `json:"amount,omitempty"`
}

// NewSendFunds builds a send_funds instruction.
func NewSendFunds(to string, funds []Coin) Instruction {
	return Instruction{Type: InstructionSendFunds, ToAddress: to, Funds: funds}
}

// NewMintTokens builds a mint_tokens instruction directing the bound token
// contract to mint amount units to recipient.
func NewMintTokens(contract, recipient string, amount uint64) Instruction {
	return Instruction{Type: InstructionMintTokens, TokenContract: contract, Recipient: recipient, Amount: amount}
}
