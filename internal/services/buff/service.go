package buff

import (
	"context"
	"errors"
	"time"

	"github.com/hustlebot/hustle/internal/models"
	ledgerRepo "github.com/hustlebot/hustle/internal/repositories/ledger"
)

// service implements the Service interface
type service struct {
	config *Config
	ledger ledgerRepo.Repository
}

// New creates a new buff service
func New(config *Config) (*service, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	if config.Ledger == nil {
		return nil, ErrNilLedger
	}
	if config.Clock == nil {
		return nil, ErrNilClock
	}

	// Defaults are applied to a copy; the caller's struct is never written
	cfg := *config

	if cfg.Price <= 0 {
		cfg.Price = 25000
	}
	if cfg.GrantUses <= 0 {
		cfg.GrantUses = 5
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 6 * time.Hour
	}
	if cfg.BoostedWinChance <= 0 {
		cfg.BoostedWinChance = 0.55
	}
	if cfg.SalvageChance <= 0 {
		cfg.SalvageChance = 0.10
	}
	if cfg.SalvageMultiplier <= 0 {
		cfg.SalvageMultiplier = 1.0
	}

	return &service{
		config: &cfg,
		ledger: cfg.Ledger,
	}, nil
}

// Purchase buys a luck boost
func (s *service) Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	now := s.config.Clock.Now()

	// Cooldown is checked before funds so a broke user still learns the
	// right reason their purchase failed
	record, err := s.ledger.GetBuffRecord(ctx, &ledgerRepo.GetBuffRecordInput{
		UserID: input.UserID,
	})
	if err != nil && !errors.Is(err, ledgerRepo.ErrBuffNotFound) {
		return nil, err
	}
	if record != nil && now.Before(record.CooldownUntil) {
		return nil, ErrOnCooldown
	}

	balance, err := s.ledger.GetBalance(ctx, &ledgerRepo.GetBalanceInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}
	if balance.Balance < s.config.Price {
		return nil, ErrInsufficientFunds
	}

	debited, err := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
		UserID: input.UserID,
		Delta:  -s.config.Price,
	})
	if err != nil {
		return nil, err
	}

	fresh := &models.BuffRecord{
		UserID:        input.UserID,
		Uses:          s.config.GrantUses,
		CooldownUntil: now.Add(s.config.Cooldown),
		PurchasedAt:   now,
	}

	if err := s.ledger.SetBuffRecord(ctx, &ledgerRepo.SetBuffRecordInput{
		Record: fresh,
	}); err != nil {
		return nil, err
	}

	return &PurchaseOutput{
		Record:  fresh,
		Balance: debited.Balance,
		Price:   s.config.Price,
	}, nil
}

// Status reports a user's current boost state
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	record, err := s.ledger.GetBuffRecord(ctx, &ledgerRepo.GetBuffRecordInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrBuffNotFound) {
			return &StatusOutput{}, nil
		}
		return nil, err
	}

	return &StatusOutput{
		Record: record,
		Active: record.Active(),
	}, nil
}

// Consume spends one boost use. Uses decrease monotonically to zero; at
// zero this is an idempotent no-op.
func (s *service) Consume(ctx context.Context, input *ConsumeInput) (*ConsumeOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	record, err := s.ledger.GetBuffRecord(ctx, &ledgerRepo.GetBuffRecordInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrBuffNotFound) {
			return &ConsumeOutput{Remaining: 0, Consumed: false}, nil
		}
		return nil, err
	}

	if record.Uses == 0 {
		return &ConsumeOutput{Remaining: 0, Consumed: false}, nil
	}

	record.Uses--
	if err := s.ledger.SetBuffRecord(ctx, &ledgerRepo.SetBuffRecordInput{
		Record: record,
	}); err != nil {
		return nil, err
	}

	return &ConsumeOutput{Remaining: record.Uses, Consumed: true}, nil
}

// BoostedWinChance is the coinflip win probability while boosted
func (s *service) BoostedWinChance() float64 {
	return s.config.BoostedWinChance
}

// SalvageChance is the probability a boosted losing color bet is salvaged
func (s *service) SalvageChance() float64 {
	return s.config.SalvageChance
}

// SalvageMultiplier is the stake multiplier paid on a salvaged bet
func (s *service) SalvageMultiplier() float64 {
	return s.config.SalvageMultiplier
}
