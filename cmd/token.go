// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

type tokenArgs struct {
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
}

// tokenCmd fetches a service token, used by integrations calling the API in
// jwt authentication mode
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token using Client Credentials flow",
	RunE:  runToken,
}

var tokenFlags tokenArgs

func runToken(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	tokenURL := tokenFlags.tokenURL

	if tokenURL == "" {
		if tokenFlags.issuerURL == "" {
			return errors.New("either --token-url or --issuer-url must be provided")
		}

		// Discovery endpoint
		provider, err := oidc.NewProvider(ctx, tokenFlags.issuerURL)
		if err != nil {
			return fmt.Errorf("failed to create OIDC provider from issuer: %w", err)
		}
		tokenURL = provider.Endpoint().TokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     tokenFlags.clientID,
		ClientSecret: tokenFlags.clientSecret,
		TokenURL:     tokenURL,
		Scopes:       tokenFlags.scopes,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
	return nil
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenFlags.clientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&tokenFlags.clientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenFlags.tokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&tokenFlags.issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSliceVar(&tokenFlags.scopes, "scopes", []string{}, "Scopes (comma-separated)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}
