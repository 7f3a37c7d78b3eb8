package etherman

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ErrEncode is returned when a core contract call cannot be encoded, meaning
// the requested function is not part of the embedded ABI or the arguments do
// not match its signature. This indicates a configuration problem, not a
// transient fault.
var ErrEncode = errors.New("error encoding starknet core contract call")

// starknetCoreABI is the fragment of the StarkNet core contract ABI the
// client needs: the L1<->L2 messaging registry getters and the proven-state
// getters.
const starknetCoreABI = `[
	{"inputs":[{"internalType":"bytes32","name":"msgHash","type":"bytes32"}],"name":"l1ToL2MessageCancellations","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"bytes32","name":"msgHash","type":"bytes32"}],"name":"l1ToL2Messages","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"bytes32","name":"msgHash","type":"bytes32"}],"name":"l2ToL1Messages","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"l1ToL2MessageNonce","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"stateRoot","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"stateBlockNumber","outputs":[{"internalType":"int256","name":"","type":"int256"}],"stateMutability":"view","type":"function"}
]`

// CallOpts is an encoded read-only L1 contract call.
type CallOpts struct {
	To   common.Address
	Data []byte
}

// StarknetCore builds and decodes calls against the StarkNet core contract.
// It is stateless after construction.
type StarknetCore struct {
	Address common.Address

	abi abi.ABI
}

// NewStarknetCore parses the embedded core contract ABI. A parse failure can
// only come from a broken build, so callers treat it as fatal.
func NewStarknetCore(address common.Address) (*StarknetCore, error) {
	parsed, err := abi.JSON(strings.NewReader(starknetCoreABI))
	if err != nil {
		return nil, fmt.Errorf("error parsing starknet core contract ABI: %w", err)
	}
	return &StarknetCore{
		Address: address,
		abi:     parsed,
	}, nil
}

// Encode packs a call to the named core contract function.
func (c *StarknetCore) Encode(method string, args ...interface{}) ([]byte, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrEncode, method, err)
	}
	return data, nil
}

// EncodedCall packs a call to the named function and wraps it with the core
// contract address, ready to be handed to the L1 client.
func (c *StarknetCore) EncodedCall(method string, args ...interface{}) (CallOpts, error) {
	data, err := c.Encode(method, args...)
	if err != nil {
		return CallOpts{}, err
	}
	return CallOpts{To: c.Address, Data: data}, nil
}

// DecodeUint256 interprets a raw call result as a big-endian 256-bit
// unsigned integer. An empty result decodes to zero.
func DecodeUint256(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}
