package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ducminhle1904/strategy-console/cmd/common"
	"github.com/ducminhle1904/strategy-console/internal/api"
	"github.com/ducminhle1904/strategy-console/internal/config"
	"github.com/ducminhle1904/strategy-console/internal/logger"
	"github.com/ducminhle1904/strategy-console/internal/state"
	"github.com/ducminhle1904/strategy-console/pkg/reporting"
)

const appName = "strategy-console"

// command is one console subcommand. Each owns its flag set and builds its
// own application wiring after parsing, so global flags can ride on every
// subcommand's flag set.
type command struct {
	name        string
	description string
	run         func(args []string) error
}

var commands = []command{
	{"login", "Authenticate against the backend and hold the session", cmdLogin},
	{"signup", "Create an account and authenticate", cmdSignup},
	{"logout", "End the current session", cmdLogout},
	{"dashboard", "Render the account summary and strategy tables", cmdDashboard},
	{"create-dca", "Create a DCA strategy", cmdCreateDCA},
	{"create-grid", "Create a grid trading strategy", cmdCreateGrid},
	{"create-rsi", "Create an RSI strategy", cmdCreateRSI},
	{"create-sma", "Create an SMA crossover strategy", cmdCreateSMA},
	{"create-macd", "Create a MACD strategy", cmdCreateMACD},
	{"start", "Start a stopped strategy", cmdStart},
	{"stop", "Stop a running strategy", cmdStop},
	{"backtest", "Run a backtest, staged or from flags", cmdBacktest},
	{"connect-exchange", "Store exchange credentials on the backend", cmdConnectExchange},
	{"balances", "Fetch live balances from connected exchanges", cmdBalances},
	{"watch", "Poll the account summary and expose metrics", cmdWatch},
	{"version", "Print version information", cmdVersion},
}

// application bundles the wiring every subcommand needs.
type application struct {
	cfg      *config.Config
	client   *api.Client
	log      *logrus.Logger
	reporter *reporting.ConsoleReporter
	store    *state.Store
}

// globalOpts are the flags shared by every subcommand.
type globalOpts struct {
	configPath *string
	apiURL     *string
	envFile    *string
	timeout    *time.Duration
	noEmojis   *bool
	silent     *bool
}

func registerGlobalFlags(fs *flag.FlagSet) *globalOpts {
	return &globalOpts{
		configPath: fs.String("config", config.DefaultPath(), "Config file path"),
		apiURL:     fs.String("api-url", "", "Backend base URL (overrides config and environment)"),
		envFile:    fs.String("env", ".env", "Environment file path"),
		timeout:    fs.Duration("timeout", 0, "Request timeout (overrides config)"),
		noEmojis:   fs.Bool("no-emojis", false, "Disable emoji output"),
		silent:     fs.Bool("silent", false, "Minimal console output"),
	}
}

// buildApp resolves config precedence and constructs the shared wiring.
func buildApp(g *globalOpts) (*application, error) {
	_ = common.LoadEnvFile(*g.envFile)

	cfg, err := config.Load(*g.configPath)
	if err != nil {
		return nil, err
	}

	if *g.apiURL != "" {
		cfg.APIBaseURL = *g.apiURL
	}
	if *g.timeout > 0 {
		cfg.RequestTimeout = *g.timeout
	}
	if *g.noEmojis {
		cfg.Output.NoEmojis = true
	}
	if *g.silent {
		common.SetSilentMode(true)
	}
	common.DefaultLogger.ShowEmojis = !cfg.Output.NoEmojis

	log := logger.New(cfg.Log)

	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = api.BaseURLFromEnv()
	}

	store, err := state.NewStore(state.DefaultDir())
	if err != nil {
		return nil, err
	}

	return &application{
		cfg: cfg,
		client: api.NewClient(api.Options{
			BaseURL: baseURL,
			Timeout: cfg.RequestTimeout,
			Logger:  log,
		}),
		log:      log,
		reporter: reporting.NewConsoleReporter(cfg.Output.NoEmojis),
		store:    store,
	}, nil
}

func (a *application) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.RequestTimeout)
}

// ensureSession authenticates from the environment when no session is held.
// Session cookies are never written to disk; each invocation logs in fresh.
func (a *application) ensureSession(ctx context.Context) error {
	if a.client.Token() != "" {
		return nil
	}
	creds := resolveCredentials("", "")
	if creds.email == "" || creds.password == "" {
		return &api.APIError{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated. Set STRATEGY_EMAIL and STRATEGY_PASSWORD in the environment or .env file.",
		}
	}
	_, err := a.client.Login(ctx, creds.email, creds.password)
	return err
}

func cmdVersion(_ []string) error {
	common.PrintVersion(appName)
	return nil
}

func printUsage() {
	fmt.Printf("%s - terminal client for the trading strategy platform\n\n", appName)
	fmt.Printf("USAGE:\n  %s <command> [options]\n\nCOMMANDS:\n", appName)
	for _, c := range commands {
		fmt.Printf("  %-18s %s\n", c.name, c.description)
	}
	fmt.Printf("\nRun '%s <command> -help' for command options.\n", appName)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	name := os.Args[1]
	if name == "help" || name == "-help" || name == "--help" {
		printUsage()
		return
	}

	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(os.Args[2:]); err != nil {
			var apiErr *api.APIError
			if errors.As(err, &apiErr) {
				common.Error("%s", api.FriendlyMessage(apiErr))
			} else {
				common.Error("%v", err)
			}
			os.Exit(1)
		}
		return
	}

	common.Error("Unknown command: %s", name)
	printUsage()
	os.Exit(2)
}
