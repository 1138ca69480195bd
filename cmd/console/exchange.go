package main

import (
	"flag"

	"github.com/ducminhle1904/strategy-console/cmd/common"
	"github.com/ducminhle1904/strategy-console/internal/api"
)

// supportedExchanges lists the exchange names the backend can proxy.
var supportedExchanges = []string{"binance", "bybit", "okx", "kraken"}

func cmdConnectExchange(args []string) error {
	fs := flag.NewFlagSet("connect-exchange", flag.ExitOnError)
	g := registerGlobalFlags(fs)
	exchange := fs.String("exchange", "", "Exchange name")
	display := fs.String("display-name", "", "Display name for this connection")
	apiKey := fs.String("api-key", "", "Exchange API key (or STRATEGY_EXCHANGE_KEY)")
	apiSecret := fs.String("api-secret", "", "Exchange API secret (or STRATEGY_EXCHANGE_SECRET)")
	password := fs.String("password", "", "Account password, authorizes credential storage (or STRATEGY_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	key := *apiKey
	if key == "" {
		key = common.GetEnvWithDefault("STRATEGY_EXCHANGE_KEY", "")
	}
	secret := *apiSecret
	if secret == "" {
		secret = common.GetEnvWithDefault("STRATEGY_EXCHANGE_SECRET", "")
	}
	pass := *password
	if pass == "" {
		pass = common.GetEnvWithDefault("STRATEGY_PASSWORD", "")
	}

	v := common.NewFlagValidator().
		ValidateChoice("exchange", *exchange, supportedExchanges).
		ValidateRequired("api-key", key).
		ValidateRequired("api-secret", secret).
		ValidateRequired("password", pass)
	if v.HasErrors() {
		v.PrintErrors()
		return v.GetError()
	}

	app, err := buildApp(g)
	if err != nil {
		return err
	}

	ctx, cancel := app.ctx()
	defer cancel()

	if err := app.ensureSession(ctx); err != nil {
		return err
	}

	name := *display
	if name == "" {
		name = *exchange
	}

	conn, err := app.client.ConnectExchange(ctx, api.ExchangeConnectionRequest{
		ExchangeName: *exchange,
		DisplayName:  name,
		APIKey:       key,
		APISecret:    secret,
		Password:     pass,
	})
	if err != nil {
		return err
	}

	common.Success("Exchange %s connected (id %s)", conn.DisplayName, conn.ID)
	return nil
}

func cmdBalances(args []string) error {
	fs := flag.NewFlagSet("balances", flag.ExitOnError)
	g := registerGlobalFlags(fs)
	password := fs.String("password", "", "Account password, authorizes credential decryption (or STRATEGY_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pass := *password
	if pass == "" {
		pass = common.GetEnvWithDefault("STRATEGY_PASSWORD", "")
	}

	v := common.NewFlagValidator().ValidateRequired("password", pass)
	if v.HasErrors() {
		v.PrintErrors()
		return v.GetError()
	}

	app, err := buildApp(g)
	if err != nil {
		return err
	}

	ctx, cancel := app.ctx()
	defer cancel()

	if err := app.ensureSession(ctx); err != nil {
		return err
	}

	connections, err := app.client.ListExchangeConnections(ctx)
	if err != nil {
		return err
	}
	if len(connections) == 0 {
		common.Warn("No exchange connections. Run '%s connect-exchange' first.", appName)
		return nil
	}

	common.Progress("Fetching live balances from %d connection(s)", len(connections))
	balances, err := app.client.LiveBalances(ctx, pass)
	if err != nil {
		return err
	}

	app.reporter.RenderBalances(balances)
	return nil
}
