package starknet

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidBlockID is returned when a block identifier carries none of
	// number, hash or tag.
	ErrInvalidBlockID = errors.New("invalid block id")
)

// BlockStatus is the finality status reported for a StarkNet block.
type BlockStatus string

const (
	// BlockStatusPending block not closed yet, contents may still change
	BlockStatusPending BlockStatus = "PENDING"
	// BlockStatusAcceptedOnL2 block accepted by the sequencer
	BlockStatusAcceptedOnL2 BlockStatus = "ACCEPTED_ON_L2"
	// BlockStatusAcceptedOnL1 block proven and accepted on Ethereum
	BlockStatusAcceptedOnL1 BlockStatus = "ACCEPTED_ON_L1"
	// BlockStatusRejected block rejected by the sequencer
	BlockStatusRejected BlockStatus = "REJECTED"
)

// BlockTag identifies a block relative to the head of the chain.
type BlockTag string

const (
	// BlockTagLatest is the latest closed block
	BlockTagLatest BlockTag = "latest"
	// BlockTagPending is the block currently being built
	BlockTagPending BlockTag = "pending"
)

// BlockID identifies a block by number, by hash or by tag. Exactly one of the
// three selectors is set.
type BlockID struct {
	Number *uint64
	Hash   *Felt
	Tag    BlockTag
}

// BlockIDFromNumber builds a by-number block identifier.
func BlockIDFromNumber(number uint64) BlockID {
	return BlockID{Number: &number}
}

// BlockIDFromHash builds a by-hash block identifier.
func BlockIDFromHash(hash *Felt) BlockID {
	return BlockID{Hash: hash}
}

// BlockIDFromTag builds a by-tag block identifier.
func BlockIDFromTag(tag BlockTag) BlockID {
	return BlockID{Tag: tag}
}

// MarshalJSON encodes the identifier in the StarkNet RPC wire form: a bare
// tag string, or an object with a block_number or block_hash member.
func (id BlockID) MarshalJSON() ([]byte, error) {
	switch {
	case id.Tag != "":
		return json.Marshal(string(id.Tag))
	case id.Number != nil:
		return json.Marshal(map[string]uint64{"block_number": *id.Number})
	case id.Hash != nil:
		return json.Marshal(map[string]*Felt{"block_hash": id.Hash})
	}
	return nil, ErrInvalidBlockID
}

// UnmarshalJSON decodes the StarkNet RPC wire form of a block identifier.
func (id *BlockID) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch BlockTag(tag) {
		case BlockTagLatest, BlockTagPending:
			id.Tag = BlockTag(tag)
			return nil
		default:
			return fmt.Errorf("%w: unknown tag %q", ErrInvalidBlockID, tag)
		}
	}
	var selector struct {
		Number *uint64 `json:"block_number"`
		Hash   *Felt   `json:"block_hash"`
	}
	if err := json.Unmarshal(data, &selector); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBlockID, err)
	}
	if selector.Number == nil && selector.Hash == nil {
		return ErrInvalidBlockID
	}
	id.Number = selector.Number
	id.Hash = selector.Hash
	return nil
}

// BlockHeader carries the fields shared by every block representation.
type BlockHeader struct {
	BlockHash        *Felt  `json:"block_hash"`
	ParentHash       *Felt  `json:"parent_hash"`
	BlockNumber      uint64 `json:"block_number"`
	NewRoot          *Felt  `json:"new_root"`
	Timestamp        uint64 `json:"timestamp"`
	SequencerAddress *Felt  `json:"sequencer_address"`
}

// BlockWithTxs is a closed block together with its full transactions.
type BlockWithTxs struct {
	BlockHeader
	Status       BlockStatus  `json:"status"`
	Transactions Transactions `json:"transactions"`
}

// Pending reports whether the block has not been closed by the sequencer yet.
// Pending blocks carry no number or hash and must never be treated as final.
func (b *BlockWithTxs) Pending() bool {
	return b.Status == BlockStatusPending
}

// WithTxHashes projects the block down to its transaction hashes.
func (b *BlockWithTxs) WithTxHashes() *BlockWithTxHashes {
	hashes := make([]*Felt, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		hashes = append(hashes, tx.Hash())
	}
	return &BlockWithTxHashes{
		BlockHeader:  b.BlockHeader,
		Status:       b.Status,
		Transactions: hashes,
	}
}

// BlockWithTxHashes is a closed block carrying only transaction hashes.
type BlockWithTxHashes struct {
	BlockHeader
	Status       BlockStatus `json:"status"`
	Transactions []*Felt     `json:"transactions"`
}

// BlockHashAndNumber is the (hash, number) pair of a block.
type BlockHashAndNumber struct {
	BlockHash   *Felt  `json:"block_hash"`
	BlockNumber uint64 `json:"block_number"`
}

// FunctionCall is the input of a StarkNet view-function invocation.
type FunctionCall struct {
	ContractAddress    *Felt   `json:"contract_address"`
	EntryPointSelector *Felt   `json:"entry_point_selector"`
	Calldata           []*Felt `json:"calldata"`
}

// FeeEstimate is the sequencer's fee estimation for a transaction.
type FeeEstimate struct {
	GasConsumed *Felt `json:"gas_consumed"`
	GasPrice    *Felt `json:"gas_price"`
	OverallFee  *Felt `json:"overall_fee"`
}

// BroadcastedTransaction is a not-yet-submitted invoke transaction, as sent
// to starknet_estimateFee.
type BroadcastedTransaction struct {
	Type          TxType  `json:"type"`
	MaxFee        *Felt   `json:"max_fee"`
	Version       *Felt   `json:"version"`
	Signature     []*Felt `json:"signature"`
	Nonce         *Felt   `json:"nonce"`
	SenderAddress *Felt   `json:"sender_address"`
	Calldata      []*Felt `json:"calldata"`
}

// TransactionReceipt is the execution receipt of a transaction. The provider
// returns it as-is; only the transaction hash is interpreted locally.
type TransactionReceipt struct {
	TransactionHash *Felt       `json:"transaction_hash"`
	ActualFee       *Felt       `json:"actual_fee"`
	Status          BlockStatus `json:"status"`
	BlockHash       *Felt       `json:"block_hash,omitempty"`
	BlockNumber     uint64      `json:"block_number,omitempty"`
	Type            TxType      `json:"type"`
}
