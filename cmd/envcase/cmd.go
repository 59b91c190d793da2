package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/velmie/x/envcase"
)

type options struct {
	policy  string
	folding string
	verbose bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "envcase",
		Short:         "envcase reads environment variables regardless of the case of their names",
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	cmd.PersistentFlags().StringVarP(
		&opts.policy,
		"policy",
		"p",
		envcase.Uncased.String(),
		"Case policy: exact, uncased, lower, upper, lower-key or upper-key",
	)
	cmd.PersistentFlags().StringVar(
		&opts.folding,
		"folding",
		envcase.DefaultFolding().Name(),
		"Case folding: ascii or unicode",
	)
	cmd.PersistentFlags().BoolVarP(
		&opts.verbose,
		"verbose",
		"v",
		false,
		"Log resolution details to stderr",
	)

	cmd.AddCommand(newGetCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newFeaturesCmd())

	return cmd
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY [KEY...]",
		Short: "Print the value of the first key that matches a variable",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			policy, folding, err := opts.parse()
			if err != nil {
				return err
			}

			resolver := envcase.NewResolver(envcase.EnvSource{}).
				WithPolicy(policy).
				WithFolding(folding).
				WithLogger(opts.logger)

			var v *envcase.Variable
			if len(args) == 1 {
				v, err = resolver.Get(args[0])
			} else {
				v, err = resolver.Coalesce(args...)
			}
			if err != nil {
				return err
			}
			val, err := v.String()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), val)
			return err
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List variables with names rewritten for the policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			policy, folding, err := opts.parse()
			if err != nil {
				return err
			}

			var lines []string
			err = envcase.New(envcase.EnvSource{}, envcase.WithFolding(folding)).
				Each(policy, func(name, value string) bool {
					lines = append(lines, name+"="+value)
					return true
				})
			if err != nil {
				return err
			}
			slices.Sort(lines)

			opts.logger.Debug("listing variables", "count", len(lines), "policy", policy.String())
			for _, line := range lines {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Print the capabilities compiled into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"default folding: %s\nunicode build: %t\n",
				envcase.DefaultFolding().Name(),
				envcase.UnicodeEnabled,
			)
			return err
		},
	}
}

func (o *options) parse() (envcase.Policy, envcase.Folding, error) {
	policy, err := envcase.ParsePolicy(o.policy)
	if err != nil {
		return 0, nil, err
	}
	folding, ok := envcase.FoldingByName(o.folding)
	if !ok {
		return 0, nil, fmt.Errorf("unknown folding %q", o.folding)
	}
	return policy, folding, nil
}
