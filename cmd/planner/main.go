// Command planner is a terminal client for the selection store. The toggle
// subcommand goes through the optimistic selection reconciler, so notices
// and rollbacks behave as they do in the planner UI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kikiarya/hsc-planner/internal/adapter/plannerapi"
	"github.com/kikiarya/hsc-planner/internal/app"
	"github.com/kikiarya/hsc-planner/internal/auth"
	"github.com/kikiarya/hsc-planner/internal/config"
	"github.com/kikiarya/hsc-planner/internal/domain"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "HSC subject selection client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(subjectsCmd())
	rootCmd.AddCommand(selectionsCmd())
	rootCmd.AddCommand(toggleCmd())
	rootCmd.AddCommand(tokenCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "planner:", err)
		stop()
		os.Exit(1)
	}
}

func loadClient() (*config.Config, *slog.Logger, *plannerapi.Client, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := app.NewLoggerTo(os.Stderr, cfg.Log)
	client := plannerapi.New(cfg.Client.BaseURL, cfg.Client.Token, cfg.Client.RequestTimeout, logger)
	return cfg, logger, client, nil
}

func subjectsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List the HSC subject catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, client, err := loadClient()
			if err != nil {
				return err
			}

			subjects, err := client.ListSubjects(cmd.Context(), strings.ToUpper(category))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tCATEGORY\tUNITS")
			for _, s := range subjects {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", s.Code, s.Name, s.Category, s.Units)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category (e.g. SCIENCE)")
	return cmd
}

func selectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selections",
		Short: "List your selected subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, client, err := loadClient()
			if err != nil {
				return err
			}

			list, err := client.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No subjects selected yet. Use 'planner toggle' to add one.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCODE\tNAME\tCATEGORY\tREASON")
			for _, c := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Key.Code, c.Key.Name, c.Meta.Category, c.Meta.Reason)
			}
			return tw.Flush()
		},
	}
}

func toggleCmd() *cobra.Command {
	var opts toggleOptions

	cmd := &cobra.Command{
		Use:   "toggle CODE NAME",
		Short: "Add a subject if unselected, remove it otherwise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, client, err := loadClient()
			if err != nil {
				return err
			}
			opts.Code, opts.Name = args[0], args[1]
			return runToggle(cmd.Context(), cmd.OutOrStdout(), client, cfg.Client, logger, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "subject category")
	cmd.Flags().StringVarP(&opts.Reason, "reason", "r", "", "why you are taking the subject")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "log notices instead of printing them")
	cmd.Flags().BoolVar(&opts.Linger, "linger", false, "wait for notices to auto-dismiss before exiting")
	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		user string
		role string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token with the configured secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			if len(cfg.Auth.JWTSecret) < 32 {
				return fmt.Errorf("auth.jwt_secret must be at least 32 characters")
			}

			userID := uuid.New()
			if user != "" {
				if userID, err = uuid.Parse(user); err != nil {
					return fmt.Errorf("--user: %w", err)
				}
			}
			r := domain.Role(role)
			if !r.IsValid() {
				return fmt.Errorf("--role: unknown role %q", role)
			}

			jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateAccessToken(userID, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user ID (random if empty)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleStudent), "role claim")
	return cmd
}
