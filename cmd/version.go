package main

import (
	"os"

	"github.com/urfave/cli/v2"

	beerus "github.com/tinoh9/beerus"
)

func versionCmd(*cli.Context) error {
	beerus.PrintVersion(os.Stdout)
	return nil
}
