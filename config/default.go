package config

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Environment = "development" # "production" or "development"
Level = "info"
Outputs = ["stderr"]

[Etherman]
# URL of the Ethereum node used as root of trust
URL = "http://localhost:8545"
# Address of the StarkNet core contract on L1
CoreContractAddress = "0xc662c410C0ECf747543f5bA90660f6ABeBD9C8c4"

[Starknet]
# URL of the StarkNet JSON-RPC node (untrusted data source)
URL = "http://localhost:9545"

[LightClient]
# PollInterval is the delay between sync loop iterations
PollInterval = "5s"
# RetainBlocks caps how many blocks below the head stay cached, 0 = keep all
RetainBlocks = 0

[RPC]
# Host defines the network adapter that will be used to serve the HTTP requests
Host = "0.0.0.0"
# Port defines the port to serve the endpoints via HTTP
Port = 3030
# ReadTimeout is the HTTP server read timeout
ReadTimeout = "60s"
# WriteTimeout is the HTTP server write timeout
WriteTimeout = "60s"
# MaxRequestsPerIPAndSecond defines how many requests a single IP can send within a single second
MaxRequestsPerIPAndSecond = 500
`
