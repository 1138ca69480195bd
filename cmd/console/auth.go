package main

import (
	"flag"

	"github.com/ducminhle1904/strategy-console/cmd/common"
)

func cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	g := registerGlobalFlags(fs)
	email := fs.String("email", "", "Account email (or STRATEGY_EMAIL)")
	password := fs.String("password", "", "Account password (or STRATEGY_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := buildApp(g)
	if err != nil {
		return err
	}

	creds := resolveCredentials(*email, *password)
	v := common.NewFlagValidator().
		ValidateRequired("email", creds.email).
		ValidateRequired("password", creds.password)
	if v.HasErrors() {
		v.PrintErrors()
		return v.GetError()
	}

	ctx, cancel := app.ctx()
	defer cancel()

	user, err := app.client.Login(ctx, creds.email, creds.password)
	if err != nil {
		return err
	}

	common.Success("Logged in as %s", user.Email)
	return nil
}

func cmdSignup(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	g := registerGlobalFlags(fs)
	email := fs.String("email", "", "Account email (or STRATEGY_EMAIL)")
	password := fs.String("password", "", "Account password (or STRATEGY_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := buildApp(g)
	if err != nil {
		return err
	}

	creds := resolveCredentials(*email, *password)
	v := common.NewFlagValidator().
		ValidateRequired("email", creds.email).
		ValidateRequired("password", creds.password)
	if v.HasErrors() {
		v.PrintErrors()
		return v.GetError()
	}

	ctx, cancel := app.ctx()
	defer cancel()

	user, err := app.client.Signup(ctx, creds.email, creds.password)
	if err != nil {
		return err
	}

	common.Success("Account created for %s", user.Email)
	return nil
}

func cmdLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	g := registerGlobalFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := buildApp(g)
	if err != nil {
		return err
	}

	ctx, cancel := app.ctx()
	defer cancel()

	if err := app.client.Logout(ctx); err != nil {
		return err
	}

	common.Success("Logged out")
	return nil
}

type credentialPair struct {
	email    string
	password string
}

// resolveCredentials prefers explicit flags over the environment. The
// environment path exists so CI and the watch daemon never put passwords on
// the command line.
func resolveCredentials(email, password string) credentialPair {
	if email == "" {
		email = common.GetEnvWithDefault("STRATEGY_EMAIL", "")
	}
	if password == "" {
		password = common.GetEnvWithDefault("STRATEGY_PASSWORD", "")
	}
	return credentialPair{email: email, password: password}
}
