package main

import (
	"fmt"

	"github.com/carlmjohnson/versioninfo"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	oauth "github.com/webex-samples/webex-oauth-golang"
)

func main() {
	app := &cli.App{
		Name:    "webex-oauth-demo",
		Usage:   "minimal webex oauth2 authorization-code demo server",
		Version: versioninfo.Short(),
		Action:  run,
	}

	app.RunAndExitOnError()
}

func run(cmd *cli.Context) error {
	// a .env file is optional, real env vars win either way
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	oauthClient, err := oauth.NewClient(oauth.ClientArgs{
		AuthURL:      cfg.AuthURL,
		ClientSecret: cfg.ClientSecret,
	})
	if err != nil {
		return err
	}

	s, err := newServer(cfg, oauthClient)
	if err != nil {
		return err
	}

	fmt.Println("webex oauth demo server")
	fmt.Println("starting http server...")

	return s.run()
}
