// Command fmctl queries the Founder Match backend from the shell, printing JSON.
package main

import (
	"log"
	"os"

	"github.com/founder-match/founder-match-web/config"
	"github.com/founder-match/founder-match-web/internal/apiclient"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: fmctl <projects|project|profiles|profile|users|user> [args]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	client := apiclient.New(apiclient.Options{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout})

	if err := run(client, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
