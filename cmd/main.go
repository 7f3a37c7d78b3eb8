package main

import (
	"os"

	"github.com/urfave/cli/v2"

	beerus "github.com/tinoh9/beerus"
	"github.com/tinoh9/beerus/config"
	"github.com/tinoh9/beerus/log"
)

const appName = "beerus"

var (
	configFileFlag = cli.StringFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration `FILE`",
		Required: false,
	}
	networkFlag = cli.StringFlag{
		Name:     config.FlagNetwork,
		Aliases:  []string{"n"},
		Usage:    "Built-in network preset (mainnet, goerli)",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = beerus.Version

	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the beerus light client",
			Action:  runCmd,
			Flags:   []cli.Flag{&configFileFlag, &networkFlag},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
