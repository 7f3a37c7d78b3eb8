package etherman

import (
	"github.com/ethereum/go-ethereum/common"
)

// Config holds the L1 side settings.
type Config struct {
	// URL is the endpoint of the Ethereum node used as root of trust.
	URL string `mapstructure:"URL"`
	// CoreContractAddress is the address of the StarkNet core contract,
	// the L1 registry of the proven L2 state.
	CoreContractAddress common.Address `mapstructure:"CoreContractAddress"`
}
