// Command gcal-auth runs the one-time Google consent flow for OAuth desktop
// credentials and saves the token the API server reads at startup.
//
// Usage:
//
//	go run ./cmd/gcal-auth [credentials.json]
package main

import (
	"context"
	"fmt"
	"os"

	"ai-todo/config"
	"ai-todo/pkg/gcalendar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	credsPath := cfg.GoogleCalendar.CredentialsPath
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if credsPath == "" {
		fmt.Println("No credentials file: pass one as an argument or set google_calendar.credentials_path")
		os.Exit(1)
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		fmt.Printf("Failed to read credentials file %q: %v\n", credsPath, err)
		os.Exit(1)
	}

	oauthCfg, err := gcalendar.OAuthConfigFromJSON(data)
	if err != nil {
		fmt.Printf("%v\nMake sure %q is an OAuth desktop app credentials file.\n", err, credsPath)
		os.Exit(1)
	}

	fmt.Println("Step 1: open this URL and sign in with your Google account:")
	fmt.Println()
	fmt.Println(gcalendar.ConsentURL(oauthCfg))
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		fmt.Println("Failed to read authorization code: ", err)
		os.Exit(1)
	}

	if err := gcalendar.ExchangeAndSave(context.Background(), oauthCfg, code, cfg.GoogleCalendar.TokenPath); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("Token saved to %s. Restart the API server to enable the calendar mirror.\n", cfg.GoogleCalendar.TokenPath)
}
