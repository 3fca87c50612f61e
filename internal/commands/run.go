package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/accountbook/internal/account"
	"github.com/cleared-dev/accountbook/internal/bank"
	"github.com/cleared-dev/accountbook/internal/config"
	"github.com/cleared-dev/accountbook/internal/model"
)

func newRunCommand(a *app) *cobra.Command {
	var monthEnd bool
	var kind string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Replay a scenario file and print each account's history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k := model.AccountKind(kind)
			if kind != "" && !k.Valid() {
				return fmt.Errorf("invalid --kind %q", kind)
			}
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			return a.replay(cmd.OutOrStdout(), cfg, replayOptions{monthEnd: monthEnd, kind: k})
		},
	}

	cmd.Flags().BoolVar(&monthEnd, "month-end", false, "run month-end processing on every account after the operations")
	cmd.Flags().StringVar(&kind, "kind", "", "only print accounts of this kind (standard, gift-card, line-of-credit)")

	return cmd
}

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the built-in walkthrough scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.replay(cmd.OutOrStdout(), config.Default(), replayOptions{})
		},
	}
}

type replayOptions struct {
	monthEnd bool
	kind     model.AccountKind // empty = all kinds
}

// replay runs cfg and prints the selected accounts, including when playback stops early.
func (a *app) replay(w io.Writer, cfg *config.Config, opts replayOptions) error {
	s, err := bank.Setup(cfg)
	if err != nil {
		return fmt.Errorf("opening accounts: %w", err)
	}
	for _, label := range s.Labels {
		acct, _ := s.Account(label)
		a.log.Debug("opened account",
			zap.String("label", label),
			zap.String("number", acct.Number()),
			zap.String("kind", string(acct.Kind())),
		)
	}

	results, applyErr := s.Apply(cfg)
	for _, r := range results {
		fields := []zap.Field{
			zap.Int("index", r.Index),
			zap.String("account", r.Op.Account),
			zap.String("type", r.Op.Type),
			zap.String("amount", r.Op.Amount),
		}
		if r.Err != nil {
			a.log.Info("operation rejected as expected", append(fields, zap.Error(r.Err))...)
			continue
		}
		a.log.Debug("operation applied", fields...)
	}
	if applyErr != nil {
		a.log.Error("scenario stopped", zap.Error(applyErr))
	}

	if applyErr == nil && opts.monthEnd {
		if err := s.Bank.MonthEnd(); err != nil {
			a.log.Warn("month end failed", zap.Error(err))
			applyErr = err
		}
	}

	if err := printScenario(w, s, opts.kind); err != nil {
		return err
	}
	return applyErr
}

func printScenario(w io.Writer, s *bank.Scenario, kind model.AccountKind) error {
	var selected map[string]bool
	if kind != "" {
		selected = make(map[string]bool)
		for _, acct := range s.Bank.ByKind(kind) {
			selected[acct.Number()] = true
		}
	}

	printed := 0
	for _, label := range s.Labels {
		acct, _ := s.Account(label)
		if selected != nil && !selected[acct.Number()] {
			continue
		}
		printed++
		if printed > 1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Account %s (%s, %s) owner: %s balance: %s\n",
			acct.Number(), label, acct.Kind(), acct.Owner(), acct.Balance().String()); err != nil {
			return err
		}
		if gift, ok := s.Bank.GiftCard(acct.Number()); ok {
			if _, err := fmt.Fprintf(w, "Monthly deposit: %s (not applied)\n", gift.MonthlyDeposit().String()); err != nil {
				return err
			}
		}
		if err := account.WriteHistory(w, acct); err != nil {
			return fmt.Errorf("writing history for %s: %w", acct.Number(), err)
		}
	}
	return nil
}
