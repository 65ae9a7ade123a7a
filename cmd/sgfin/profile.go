package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/store"
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the preparer profile printed on reports",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the saved preparer profile",
		RunE: withStore(func(cmd *cobra.Command, a *app, st store.Store, args []string) error {
			p, err := st.GetProfile(cmd.Context())
			switch {
			case errors.Is(err, store.ErrNotFound):
				p = a.cfg.Preparer.Preparer()
				if p.IsZero() {
					fmt.Fprintln(cmd.OutOrStdout(), "No profile saved")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "No profile saved; using the configured preparer")
			case err != nil:
				return err
			}
			printProfile(cmd, p)
			return nil
		}),
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Save the preparer profile",
		Long: `Save the preparer profile. Flags that are not given keep their saved value.

Example:
  sgfin profile set --name "Jane Tan" --cea R123456A --mobile "+65 9123 4567"`,
		RunE: withStore(func(cmd *cobra.Command, a *app, st store.Store, args []string) error {
			p, err := st.GetProfile(cmd.Context())
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			for flag, field := range map[string]*string{
				"name":   &p.Name,
				"cea":    &p.CEANumber,
				"mobile": &p.Mobile,
				"email":  &p.Email,
			} {
				if cmd.Flags().Changed(flag) {
					v, _ := cmd.Flags().GetString(flag)
					*field = strings.TrimSpace(v)
				}
			}
			if p.Name == "" {
				return fmt.Errorf("profile name is required")
			}
			if err := st.SaveProfile(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			printProfile(cmd, p)
			return nil
		}),
	}
	set.Flags().String("name", "", "Preparer name")
	set.Flags().String("cea", "", "CEA registration number")
	set.Flags().String("mobile", "", "Mobile number")
	set.Flags().String("email", "", "Email address")

	cmd.AddCommand(show, set)
	return cmd
}

func printProfile(cmd *cobra.Command, p domain.Preparer) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:   %s\n", p.Name)
	if p.CEANumber != "" {
		fmt.Fprintf(out, "CEA:    %s\n", p.CEANumber)
	}
	if p.Mobile != "" {
		fmt.Fprintf(out, "Mobile: %s\n", p.Mobile)
	}
	if p.Email != "" {
		fmt.Fprintf(out, "Email:  %s\n", p.Email)
	}
}
