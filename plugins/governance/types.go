package governance

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	MaxTitleLength       = 64
	MaxDescriptionLength = 512

	DefaultVotingPeriodDays = 7

	// FixedTotalSupply is the supply quorum is measured against. It does not
	// follow the live token supply.
	FixedTotalSupply uint64 = 10_000_000
)

type ProposalType uint8

const (
	ParameterChange ProposalType = 0x00
	TreasurySpend   ProposalType = 0x01
	ProtocolUpgrade ProposalType = 0x02
	General         ProposalType = 0x03
)

func ProposalTypeFromString(str string) (ProposalType, error) {
	switch str {
	case "ParameterChange", "parameter_change":
		return ParameterChange, nil
	case "TreasurySpend", "treasury_spend":
		return TreasurySpend, nil
	case "ProtocolUpgrade", "protocol_upgrade":
		return ProtocolUpgrade, nil
	case "General", "general":
		return General, nil
	default:
		return ProposalType(0xff), fmt.Errorf("'%s' is not a valid proposal type", str)
	}
}

func (pt ProposalType) IsValid() bool {
	return pt <= General
}

func (pt ProposalType) String() string {
	switch pt {
	case ParameterChange:
		return "ParameterChange"
	case TreasurySpend:
		return "TreasurySpend"
	case ProtocolUpgrade:
		return "ProtocolUpgrade"
	case General:
		return "General"
	default:
		return ""
	}
}

func (pt ProposalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(pt.String())
}

func (pt *ProposalType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ProposalTypeFromString(s)
	if err != nil {
		return err
	}
	*pt = parsed
	return nil
}

type ProposalStatus uint8

const (
	StatusActive       ProposalStatus = 0x00
	StatusPassed       ProposalStatus = 0x01
	StatusRejected     ProposalStatus = 0x02
	StatusQuorumNotMet ProposalStatus = 0x03
	StatusExecuted     ProposalStatus = 0x04
)

func ProposalStatusFromString(str string) (ProposalStatus, error) {
	switch str {
	case "Active", "active":
		return StatusActive, nil
	case "Passed", "passed":
		return StatusPassed, nil
	case "Rejected", "rejected":
		return StatusRejected, nil
	case "QuorumNotMet", "quorum_not_met":
		return StatusQuorumNotMet, nil
	case "Executed", "executed":
		return StatusExecuted, nil
	default:
		return ProposalStatus(0xff), fmt.Errorf("'%s' is not a valid proposal status", str)
	}
}

func (status ProposalStatus) String() string {
	switch status {
	case StatusActive:
		return "Active"
	case StatusPassed:
		return "Passed"
	case StatusRejected:
		return "Rejected"
	case StatusQuorumNotMet:
		return "QuorumNotMet"
	case StatusExecuted:
		return "Executed"
	default:
		return ""
	}
}

func (status ProposalStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(status.String())
}

func (status *ProposalStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ProposalStatusFromString(s)
	if err != nil {
		return err
	}
	*status = parsed
	return nil
}

type VoteChoice uint8

const (
	VoteYes VoteChoice = 0x00
	VoteNo  VoteChoice = 0x01
)

func VoteChoiceFromString(str string) (VoteChoice, error) {
	switch str {
	case "Yes", "yes":
		return VoteYes, nil
	case "No", "no":
		return VoteNo, nil
	default:
		return VoteChoice(0xff), fmt.Errorf("'%s' is not a valid vote choice", str)
	}
}

func (vc VoteChoice) IsValid() bool {
	return vc == VoteYes || vc == VoteNo
}

func (vc VoteChoice) String() string {
	switch vc {
	case VoteYes:
		return "Yes"
	case VoteNo:
		return "No"
	default:
		return ""
	}
}

func (vc VoteChoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(vc.String())
}

func (vc *VoteChoice) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := VoteChoiceFromString(s)
	if err != nil {
		return err
	}
	*vc = parsed
	return nil
}

// Governance is the per-mint configuration every governance operation is threaded through.
type Governance struct {
	Authority         sdk.AccAddress `json:"authority"`
	TokenMint         string         `json:"token_mint"`
	QuorumPercent     uint8          `json:"quorum_percent"`
	ProposalThreshold uint64         `json:"proposal_threshold"`
	ProposalCount     uint64         `json:"proposal_count"`
	VotingPeriodDays  uint8          `json:"voting_period_days"`
}

type Proposal struct {
	Id            uint64         `json:"id"`
	Proposer      sdk.AccAddress `json:"proposer"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ProposalType  ProposalType   `json:"proposal_type"`
	CreatedAt     int64          `json:"created_at"`
	VotingEndTime int64          `json:"voting_end_time"`
	YesVotes      uint64         `json:"yes_votes"`
	NoVotes       uint64         `json:"no_votes"`
	Status        ProposalStatus `json:"status"`
}

func (p Proposal) String() string {
	return fmt.Sprintf("Proposal{%d#%s#%s#%s#yes=%d#no=%d}", p.Id, p.Title, p.ProposalType, p.Status, p.YesVotes, p.NoVotes)
}

type VoteRecord struct {
	Voter       sdk.AccAddress `json:"voter"`
	ProposalId  uint64         `json:"proposal_id"`
	Vote        VoteChoice     `json:"vote"`
	VotingPower uint64         `json:"voting_power"`
	HasVoted    bool           `json:"has_voted"`
}
