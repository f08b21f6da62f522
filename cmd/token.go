// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
)

// tokenCmd fetches the bearer the remote tenant directory client would use,
// handy to debug directory credentials outside the server
var tokenCmd = &cobra.Command{
	Use:   "directory-token",
	Short: "Get a tenant directory access token using the Client Credentials flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if clientID == "" || clientSecret == "" {
			return fmt.Errorf("client id and secret are required, pass flags or set $DIRECTORY_CLIENT_ID and $DIRECTORY_CLIENT_SECRET")
		}

		if tokenURL == "" {
			if issuerURL == "" {
				return fmt.Errorf("either --token-url or --issuer-url must be provided")
			}

			provider, err := oidc.NewProvider(ctx, issuerURL)
			if err != nil {
				return fmt.Errorf("failed to discover issuer %s: %w", issuerURL, err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&clientID, "client-id", os.Getenv("DIRECTORY_CLIENT_ID"), "Client ID")
	tokenCmd.Flags().StringVar(&clientSecret, "client-secret", os.Getenv("DIRECTORY_CLIENT_SECRET"), "Client Secret")
	tokenCmd.Flags().StringVar(&tokenURL, "token-url", os.Getenv("DIRECTORY_TOKEN_URL"), "Token URL")
	tokenCmd.Flags().StringVar(&issuerURL, "issuer-url", os.Getenv("DIRECTORY_ISSUER_URL"), "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")
}
