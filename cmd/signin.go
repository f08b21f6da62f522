// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	signinDomain string
	useShared    bool
)

var signinCmd = &cobra.Command{
	Use:   "signin [email]",
	Short: "Request a magic sign-in link for an email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if useShared {
			return postJSON(cmd.OutOrStdout(), "/api/auth/magic-link/", map[string]string{"email": args[0]})
		}

		return postJSON(cmd.OutOrStdout(), "/api/auth/signin/", map[string]any{
			"email":  args[0],
			"domain": signinDomain,
		})
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [token]",
	Short: "Redeem a magic-link token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return postJSON(cmd.OutOrStdout(), "/api/auth/verify/", map[string]string{"token": args[0]})
	},
}

func init() {
	rootCmd.AddCommand(signinCmd)
	rootCmd.AddCommand(verifyCmd)

	signinCmd.Flags().StringVar(&signinDomain, "domain", "", "Organization domain to route the link to")
	signinCmd.Flags().BoolVar(&useShared, "shared", false, "Send a link for the shared instance")
}
