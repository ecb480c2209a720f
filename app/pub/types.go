package pub

import (
	"fmt"
	"sort"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type msgType int8

const (
	ledgerEventsTpe msgType = iota
)

func (this msgType) String() string {
	switch this {
	case ledgerEventsTpe:
		return "LedgerEvents"
	default:
		return "Unknown"
	}
}

// deliberated not implemented Ser/Deser method
type AvroOrJsonMsg interface {
	ToNativeMap() map[string]interface{}
	String() string
}

// LedgerEvent is one successfully delivered msg, flattened from its result tags.
type LedgerEvent struct {
	Route   string            `json:"route"`
	MsgType string            `json:"type"`
	Signer  string            `json:"signer"`
	Attrs   map[string]string `json:"attrs"`
}

// NewLedgerEvent builds an event from a delivered msg and the tags of its result.
func NewLedgerEvent(msg sdk.Msg, tags sdk.Tags) LedgerEvent {
	signer := ""
	if signers := msg.GetSigners(); len(signers) > 0 {
		signer = signers[0].String()
	}
	attrs := make(map[string]string, len(tags))
	for _, tag := range tags {
		attrs[string(tag.Key)] = string(tag.Value)
	}
	return LedgerEvent{
		Route:   msg.Route(),
		MsgType: msg.Type(),
		Signer:  signer,
		Attrs:   attrs,
	}
}

func (e LedgerEvent) String() string {
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, e.Attrs[k]))
	}
	return fmt.Sprintf("%s/%s signer: %s attrs: [%s]", e.Route, e.MsgType, e.Signer, strings.Join(pairs, " "))
}

func (e LedgerEvent) toNativeMap() map[string]interface{} {
	var native = make(map[string]interface{})
	native["route"] = e.Route
	native["type"] = e.MsgType
	native["signer"] = e.Signer
	attrs := make(map[string]interface{}, len(e.Attrs))
	for k, v := range e.Attrs {
		attrs[k] = v
	}
	native["attrs"] = attrs
	return native
}

// BlockEvents groups every event delivered at one height.
type BlockEvents struct {
	Height    int64         `json:"height"`
	Timestamp int64         `json:"timestamp"`
	NumOfMsgs int           `json:"numOfMsgs"`
	Events    []LedgerEvent `json:"events"`
}

func NewBlockEvents(height, timestamp int64, events []LedgerEvent) BlockEvents {
	return BlockEvents{
		Height:    height,
		Timestamp: timestamp,
		NumOfMsgs: len(events),
		Events:    events,
	}
}

func (msg *BlockEvents) String() string {
	return fmt.Sprintf("BlockEvents at height: %d, numOfMsgs: %d", msg.Height, msg.NumOfMsgs)
}

func (msg *BlockEvents) ToNativeMap() map[string]interface{} {
	var native = make(map[string]interface{})
	native["height"] = msg.Height
	native["timestamp"] = msg.Timestamp
	native["numOfMsgs"] = msg.NumOfMsgs
	events := make([]interface{}, len(msg.Events))
	for idx, e := range msg.Events {
		events[idx] = e.toNativeMap()
	}
	native["events"] = events
	return native
}
