// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"github.com/spf13/cobra"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Resolve tenants against a running server",
}

var lookupTenantCmd = &cobra.Command{
	Use:   "lookup [domain]",
	Short: "Look up the tenant instance serving an email domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return postJSON(cmd.OutOrStdout(), "/api/auth/lookup/", map[string]string{"domain": args[0]})
	},
}

var validateTenantCmd = &cobra.Command{
	Use:   "validate [subdomain]",
	Short: "Check that an organization subdomain exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return postJSON(cmd.OutOrStdout(), "/api/tenant/validate/", map[string]string{"subdomain": args[0]})
	},
}

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Print the published pricing catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return getJSON(cmd.OutOrStdout(), "/api/pricing/")
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	rootCmd.AddCommand(pricingCmd)
	tenantCmd.AddCommand(lookupTenantCmd)
	tenantCmd.AddCommand(validateTenantCmd)
}
