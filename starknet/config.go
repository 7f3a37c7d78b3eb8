package starknet

// Config holds the connection settings of the StarkNet data provider.
type Config struct {
	// URL is the endpoint of the StarkNet JSON-RPC node. The node is an
	// untrusted data source; every answer served from it is anchored or
	// cross-checked by the light client.
	URL string `mapstructure:"URL"`
}
