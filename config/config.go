package config

import (
	"bytes"
	"path/filepath"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/tinoh9/beerus/etherman"
	"github.com/tinoh9/beerus/lightclient"
	"github.com/tinoh9/beerus/log"
	"github.com/tinoh9/beerus/starknet"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagNetwork is the flag to pick a built-in network preset.
	FlagNetwork = "network"

	// EnvVarPrefix is the prefix of the environment variables overriding
	// config file values.
	EnvVarPrefix = "BEERUS"
)

// Config represents the configuration of the entire Beerus node.
// The file is TOML format.
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// Configuration of the L1 (Ethereum) client
	Etherman etherman.Config
	// Configuration of the L2 (StarkNet) data provider
	Starknet starknet.Config
	// Configuration of the light client sync loop
	LightClient lightclient.Config
	// RPC is the config for the RPC server
	RPC jRPC.Config
}

// Default parses the default configuration values.
func Default() (*Config, error) {
	cfg := &Config{}
	viper.SetConfigType("toml")

	err := viper.ReadConfig(bytes.NewBuffer([]byte(DefaultValues)))
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg, viper.DecodeHook(decodeHooks()))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads the configuration: defaults, overridden by the config file the
// --cfg flag points to, overridden by BEERUS_* environment variables. The
// --network flag applies a built-in core contract preset on top.
func Load(ctx *cli.Context) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	configFilePath := ctx.String(FlagCfg)
	if configFilePath != "" {
		dirName, fileName := filepath.Split(configFilePath)

		fileExtension := strings.TrimPrefix(filepath.Ext(fileName), ".")
		fileNameWithoutExtension := strings.TrimSuffix(fileName, "."+fileExtension)

		viper.AddConfigPath(dirName)
		viper.SetConfigName(fileNameWithoutExtension)
		viper.SetConfigType(fileExtension)
	}
	viper.AutomaticEnv()
	viper.SetEnvPrefix(EnvVarPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err = viper.ReadInConfig()
	if err != nil {
		_, ok := err.(viper.ConfigFileNotFoundError)
		if ok {
			log.Infof("config file not found")
		} else {
			log.Infof("error reading config file: ", err)
			return nil, err
		}
	}

	err = viper.Unmarshal(&cfg, viper.DecodeHook(decodeHooks()))
	if err != nil {
		return nil, err
	}

	if network := ctx.String(FlagNetwork); network != "" {
		preset, err := NetworkPreset(network)
		if err != nil {
			return nil, err
		}
		cfg.Etherman.CoreContractAddress = preset.CoreContractAddress
	}
	return cfg, nil
}

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}
