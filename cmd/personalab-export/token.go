package main

import (
	"errors"
	"fmt"
	"time"

	"personalab/internal/platform/auth"
	"personalab/internal/platform/config"
	pnet "personalab/internal/platform/net"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		secret, issuer string
		id             pnet.Identity
		ttl            time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local API testing",
		Long: "Signs an HS256 token the API accepts. The secret and issuer default to\n" +
			"PERSONALAB_JWT_SECRET and PERSONALAB_JWT_ISSUER.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New().Prefix("PERSONALAB_")
			if secret == "" {
				secret = cfg.MayString("JWT_SECRET", "")
			}
			if secret == "" {
				return errors.New("no signing secret, pass --secret or set PERSONALAB_JWT_SECRET")
			}
			if issuer == "" {
				issuer = cfg.MayString("JWT_ISSUER", "")
			}
			if id.UserID == "" {
				return errors.New("--sub is required")
			}
			tok, err := auth.NewVerifier(secret, auth.WithIssuer(issuer)).Sign(id, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&secret, "secret", "", "HS256 signing secret")
	fl.StringVar(&issuer, "issuer", "", "iss claim")
	fl.StringVar(&id.UserID, "sub", "", "user id")
	fl.StringVar(&id.Email, "email", "", "email claim")
	fl.StringVar(&id.Name, "name", "", "display name")
	fl.DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
