package economy

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/hustlebot/hustle/internal/common/money"
	"github.com/hustlebot/hustle/internal/models"
	ledgerRepo "github.com/hustlebot/hustle/internal/repositories/ledger"
	"github.com/hustlebot/hustle/internal/reward"
)

// service implements the Service interface
type service struct {
	config *Config
	ledger ledgerRepo.Repository

	// override mode is explicit state on the service, never a package
	// global; rolls receive the snapshot by value
	mu         sync.RWMutex
	overrideOn bool
}

// New creates a new economy service
func New(config *Config) (*service, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	if config.Ledger == nil {
		return nil, ErrNilLedger
	}
	if config.Roller == nil {
		return nil, ErrNilRoller
	}
	if config.Clock == nil {
		return nil, ErrNilClock
	}
	if config.Progression == nil {
		return nil, ErrNilProgression
	}

	// Defaults are applied to a copy; the caller's struct is never written
	cfg := *config

	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = 10
	}
	if cfg.FishPenaltyRate <= 0 || cfg.FishPenaltyRate >= 1 {
		cfg.FishPenaltyRate = 0.05
	}

	return &service{
		config: &cfg,
		ledger: cfg.Ledger,
	}, nil
}

// odds returns the trigger probabilities currently in effect
func (s *service) odds() reward.Odds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.overrideOn {
		return s.config.OverrideOdds
	}
	return s.config.BaseOdds
}

// Work performs one reward roll: specials first, then the tier-gated
// rarity roll, then an independent tip. The payout delta and counter
// increments go through the ledger's atomic primitives.
func (s *service) Work(ctx context.Context, input *WorkInput) (*WorkOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	odds := s.odds()
	s.cacheName(ctx, input.UserID, input.UserName)

	if special := reward.RollSpecial(odds, s.config.Roller); special != nil {
		return s.commitOutcome(ctx, input.UserID, &WorkOutput{
			Special:    true,
			Class:      string(reward.ClassSpecial),
			Label:      special.Flavor,
			BasePayout: special.Payout,
			Tip:        reward.RollTip(odds, s.config.Roller),
		}, special.Name)
	}

	counts, err := s.ledger.GetJobCounts(ctx, &ledgerRepo.GetJobCountsInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	tier := s.config.Progression.TierFor(counts.Total)
	dist := tier.Distribution
	if odds.Override != nil {
		dist = odds.Override
	}

	job := reward.RollJob(dist, s.config.Roller)
	out := &WorkOutput{
		Class:      string(job.Class),
		Label:      job.Label,
		BasePayout: job.Payout,
		Tip:        reward.RollTip(odds, s.config.Roller),
		TierName:   tier.Name,
	}

	return s.commitOutcome(ctx, input.UserID, out, string(job.Class))
}

// Fish punishes anglers: this is not that kind of server. Takes a flat
// fraction of the wallet; an empty wallet gets off with the warning.
func (s *service) Fish(ctx context.Context, input *FishInput) (*FishOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	s.cacheName(ctx, input.UserID, input.UserName)

	balance, err := s.ledger.GetBalance(ctx, &ledgerRepo.GetBalanceInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}
	if balance.Balance <= 0 {
		return &FishOutput{Balance: balance.Balance}, nil
	}

	penalty := money.Round2(balance.Balance * s.config.FishPenaltyRate)
	debited, err := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
		UserID: input.UserID,
		Delta:  -penalty,
	})
	if err != nil {
		return nil, err
	}

	return &FishOutput{
		Penalized: true,
		Penalty:   penalty,
		Balance:   debited.Balance,
	}, nil
}

// commitOutcome applies the tip, credits the payout, and records counters
// and the best-payout record. The credit is the one mutation that must not
// be lost; counter or record failures are logged and do not fail the work.
func (s *service) commitOutcome(ctx context.Context, userID string, out *WorkOutput, recordClass string) (*WorkOutput, error) {
	out.TotalPayout = out.BasePayout
	if out.Tip != nil {
		out.TotalPayout = money.Round2(out.BasePayout * out.Tip.Mult)
	}

	credited, err := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
		UserID: userID,
		Delta:  out.TotalPayout,
	})
	if err != nil {
		return nil, err
	}
	out.Balance = credited.Balance

	if err := s.ledger.IncrementJobCount(ctx, &ledgerRepo.IncrementJobCountInput{
		UserID: userID,
		Class:  out.Class,
	}); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to increment job count")
	}

	best, err := s.ledger.GetBestPayout(ctx, &ledgerRepo.GetBestPayoutInput{
		UserID: userID,
	})
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to read best payout")
	} else if best.Record == nil || out.TotalPayout > best.Record.Amount {
		out.NewBest = true
		record := &models.PayoutRecord{
			Amount:    out.TotalPayout,
			Label:     out.Label,
			Class:     recordClass,
			Timestamp: s.config.Clock.Now(),
		}
		if err := s.ledger.SetBestPayoutIfGreater(ctx, &ledgerRepo.SetBestPayoutIfGreaterInput{
			UserID: userID,
			Record: record,
		}); err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("failed to record best payout")
		}
	}

	if s.config.Announcer != nil && highlightWorthy(out) {
		s.config.Announcer.WorkHighlight(ctx, userID, out)
	}

	return out, nil
}

// highlightWorthy reports whether a work result gets broadcast: specials
// and the two rarest classes
func highlightWorthy(out *WorkOutput) bool {
	return out.Special ||
		out.Class == string(reward.ClassLegendary) ||
		out.Class == string(reward.ClassSecret)
}

// GetBalance returns a user's wallet balance
func (s *service) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	s.cacheName(ctx, input.UserID, input.UserName)

	out, err := s.ledger.GetBalance(ctx, &ledgerRepo.GetBalanceInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{Balance: out.Balance}, nil
}

// Pay transfers money between two users. The sender is checked before the
// debit; the two deltas cancel exactly, so the transfer is zero-sum.
func (s *service) Pay(ctx context.Context, input *PayInput) (*PayOutput, error) {
	if input == nil || input.FromUserID == "" || input.ToUserID == "" {
		return nil, errors.New("input and user IDs cannot be empty")
	}

	amount := money.Round2(input.Amount)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if input.FromUserID == input.ToUserID {
		return nil, ErrSelfPayment
	}

	s.cacheName(ctx, input.FromUserID, input.FromName)
	s.cacheName(ctx, input.ToUserID, input.ToName)

	balance, err := s.ledger.GetBalance(ctx, &ledgerRepo.GetBalanceInput{
		UserID: input.FromUserID,
	})
	if err != nil {
		return nil, err
	}
	if balance.Balance < amount {
		return nil, ErrInsufficientFunds
	}

	debited, err := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
		UserID: input.FromUserID,
		Delta:  -amount,
	})
	if err != nil {
		return nil, err
	}

	credited, err := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
		UserID: input.ToUserID,
		Delta:  amount,
	})
	if err != nil {
		// Undo the debit so a failed transfer never destroys money
		if _, refundErr := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
			UserID: input.FromUserID,
			Delta:  amount,
		}); refundErr != nil {
			log.WithError(refundErr).WithField("user_id", input.FromUserID).
				Error("failed to refund after transfer error")
		}
		return nil, err
	}

	return &PayOutput{
		Amount:      amount,
		FromBalance: debited.Balance,
		ToBalance:   credited.Balance,
	}, nil
}

// GetProgress summarizes a user's job counts and tier standing
func (s *service) GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	counts, err := s.ledger.GetJobCounts(ctx, &ledgerRepo.GetJobCountsInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	best, err := s.ledger.GetBestPayout(ctx, &ledgerRepo.GetBestPayoutInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	tier := s.config.Progression.TierFor(counts.Total)
	out := &GetProgressOutput{
		Counts:     counts.Counts,
		Total:      counts.Total,
		Tier:       tier,
		BestPayout: best.Record,
	}

	if next, ok := s.config.Progression.Next(tier); ok {
		out.Next = &NextUnlock{
			Name:          next.Name,
			JobsRemaining: next.MinJobs - counts.Total,
		}
	}

	return out, nil
}

// Leaderboard returns the top accounts by money or jobs
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Kind {
	case LeaderboardJobs:
		out, err := s.ledger.ListTopJobTotals(ctx, &ledgerRepo.ListTopJobTotalsInput{
			Limit: s.config.LeaderboardSize,
		})
		if err != nil {
			return nil, err
		}
		return &LeaderboardOutput{Kind: input.Kind, Entries: out.Entries}, nil
	default:
		out, err := s.ledger.ListTopBalances(ctx, &ledgerRepo.ListTopBalancesInput{
			Limit: s.config.LeaderboardSize,
		})
		if err != nil {
			return nil, err
		}
		return &LeaderboardOutput{Kind: LeaderboardMoney, Entries: out.Entries}, nil
	}
}

// ResetAccount wipes one account
func (s *service) ResetAccount(ctx context.Context, input *ResetAccountInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	err := s.ledger.DeleteAccount(ctx, &ledgerRepo.DeleteAccountInput{
		UserID: input.UserID,
	})
	if errors.Is(err, ledgerRepo.ErrAccountNotFound) {
		return ErrNotFound
	}
	return err
}

// ResetAll wipes the whole ledger
func (s *service) ResetAll(ctx context.Context) error {
	return s.ledger.DeleteAllAccounts(ctx)
}

// SetOverrideMode swaps the live odds for the override odds (or back)
func (s *service) SetOverrideMode(_ context.Context, input *SetOverrideModeInput) (*SetOverrideModeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	s.overrideOn = input.Enabled
	s.mu.Unlock()

	return &SetOverrideModeOutput{Enabled: input.Enabled}, nil
}

// OverrideEnabled reports whether override mode is on
func (s *service) OverrideEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrideOn
}

// cacheName stores the display name for leaderboard rendering. Best
// effort: a miss only degrades leaderboard labels.
func (s *service) cacheName(ctx context.Context, userID, name string) {
	if name == "" {
		return
	}
	if err := s.ledger.SetAccountName(ctx, &ledgerRepo.SetAccountNameInput{
		UserID: userID,
		Name:   name,
	}); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to cache account name")
	}
}
