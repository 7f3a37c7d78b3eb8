package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkConfig carries the per-network constants.
type NetworkConfig struct {
	// CoreContractAddress is the StarkNet core contract on L1.
	CoreContractAddress common.Address
}

// see https://github.com/starknet-io/starknet-addresses
var networks = map[string]NetworkConfig{
	"mainnet": {
		CoreContractAddress: common.HexToAddress("0xc662c410C0ECf747543f5bA90660f6ABeBD9C8c4"),
	},
	"goerli": {
		CoreContractAddress: common.HexToAddress("0xde29d060D45901Fb19ED6C6e959EB22d8626708e"),
	},
}

// NetworkPreset returns the built-in constants of a named network.
func NetworkPreset(name string) (NetworkConfig, error) {
	network, ok := networks[name]
	if !ok {
		return NetworkConfig{}, fmt.Errorf("unknown network %q", name)
	}
	return network, nil
}
