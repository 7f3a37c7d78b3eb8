package main

import (
	"os"
	"os/signal"
	"syscall"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	beerus "github.com/tinoh9/beerus"
	"github.com/tinoh9/beerus/config"
	"github.com/tinoh9/beerus/etherman"
	"github.com/tinoh9/beerus/lightclient"
	"github.com/tinoh9/beerus/log"
	"github.com/tinoh9/beerus/rpc"
	"github.com/tinoh9/beerus/starknet"
)

func runCmd(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		beerus.PrintVersion(os.Stdout)
		log.Info("Starting beerus")
	} else {
		logVersion()
	}

	ctx, cancel := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	l1Client, err := etherman.NewClient(c.Etherman)
	if err != nil {
		log.Fatal("Error creating L1 client: ", err)
	}
	provider, err := starknet.NewProvider(c.Starknet)
	if err != nil {
		log.Fatal("Error creating starknet provider: ", err)
	}
	client, err := lightclient.New(c.LightClient, c.Etherman.CoreContractAddress, l1Client, provider)
	if err != nil {
		log.Fatal("Error creating light client: ", err)
	}
	if err := client.Start(ctx); err != nil {
		log.Fatal("Error starting light client: ", err)
	}

	server := createRPC(c.RPC, client)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-ctx.Done()
		return server.Stop()
	})
	return g.Wait()
}

func createRPC(cfg jRPC.Config, client rpc.LightClienter) *jRPC.Server {
	logger := log.WithFields("module", "rpc")
	services := []jRPC.Service{
		{
			Name:    rpc.STARKNET,
			Service: rpc.NewStarknetEndpoints(logger, cfg.ReadTimeout.Duration, client),
		},
		{
			Name:    rpc.BEERUS,
			Service: rpc.NewBeerusEndpoints(logger, cfg.ReadTimeout.Duration, client),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func logVersion() {
	v := beerus.GetVersion()
	log.Infof(
		"Starting beerus version=%s revision=%s branch=%s go=%s built=%s os/arch=%s/%s",
		v.Version, v.GitRev, v.GitBranch, v.GoVersion, v.BuildDate, v.OS, v.Arch,
	)
}
