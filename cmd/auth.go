// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tenantflow/tenantflow/pkg/bootstrap"
	"github.com/tenantflow/tenantflow/pkg/session"
)

type credentialArgs struct {
	email        string
	passwordFile string
	name         string
	phone        string
}

var credentialFlags credentialArgs

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register as a landlord",
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and revoke the session",
	RunE:  runLogout,
}

// readPassword reads the password from path, "-" or an empty path prompts on
// the terminal
func readPassword(cmd *cobra.Command, path string) (string, error) {
	if path != "" && path != "-" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return strings.TrimRight(string(b), "\r\n"), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		b, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 1024))
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimRight(string(b), "\r\n"), nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(b), nil
}

func runSignup(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	password, err := readPassword(cmd, credentialFlags.passwordFile)
	if err != nil {
		return err
	}

	s, err := a.provider.SignUp(ctx, session.SignUpRequest{
		Email:    credentialFlags.email,
		Password: password,
		Name:     credentialFlags.name,
		Phone:    credentialFlags.phone,
	})
	if err != nil {
		return err
	}

	if s == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Signup successful! Please verify your email, then run `tenantflow login`.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed up and signed in as %s\n", s.Email)
	return nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	password, err := readPassword(cmd, credentialFlags.passwordFile)
	if err != nil {
		return err
	}

	s, err := a.provider.SignIn(ctx, credentialFlags.email, password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		return errors.New("login failed: invalid email or password")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", s.Email)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	w, _, err := a.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.SignOut(ctx); err != nil {
		return err
	}

	a.renderer.View(bootstrap.Route(w.State()))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{signupCmd, loginCmd} {
		c.Flags().StringVar(&credentialFlags.email, "email", "", "Email address")
		c.Flags().StringVar(&credentialFlags.passwordFile, "password-file", "", "Read the password from a file, prompts when empty or -")
		_ = c.MarkFlagRequired("email")
	}

	signupCmd.Flags().StringVar(&credentialFlags.name, "name", "", "Full name")
	signupCmd.Flags().StringVar(&credentialFlags.phone, "phone", "", "Phone number")
	_ = signupCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd)
}
