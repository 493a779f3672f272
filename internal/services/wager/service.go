package wager

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hustlebot/hustle/internal/common/money"
	"github.com/hustlebot/hustle/internal/common/uuid"
	ledgerRepo "github.com/hustlebot/hustle/internal/repositories/ledger"
	"github.com/hustlebot/hustle/internal/roulette"
	"github.com/hustlebot/hustle/internal/services/buff"
)

// round is the in-memory state of one channel's betting window. It is
// process-local; a crash between admission and settlement strands the
// already-debited stakes.
type round struct {
	id        string
	channelID string
	phase     RoundPhase
	openedAt  time.Time
	closesAt  time.Time
	bets      []PlacedBet

	// timer handles, stopped on cancellation
	lastCall *time.Timer
	resolve  *time.Timer
}

// service implements the Service interface
type service struct {
	config *Config
	ledger ledgerRepo.Repository
	buff   buff.Service

	// mu guards the registry and is held across a bet's validate, debit
	// and admit steps, so a round can never gain a bet once resolution
	// has begun
	mu     sync.Mutex
	rounds map[string]*round
}

// New creates a new wager service
func New(config *Config) (*service, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	if config.Ledger == nil {
		return nil, ErrNilLedger
	}
	if config.Buff == nil {
		return nil, ErrNilBuff
	}
	if config.Roller == nil {
		return nil, ErrNilRoller
	}
	if config.Clock == nil {
		return nil, ErrNilClock
	}
	if config.Notifier == nil {
		return nil, ErrNilNotifier
	}

	// Defaults are applied to a copy; the caller's struct is never written
	cfg := *config

	if cfg.MinBet <= 0 {
		cfg.MinBet = 1
	}
	if cfg.MaxBet <= 0 {
		cfg.MaxBet = 1000000
	}
	if cfg.Window <= 0 {
		cfg.Window = 30 * time.Second
	}
	if cfg.LastCall < 0 || cfg.LastCall >= cfg.Window {
		cfg.LastCall = 0
	}
	if cfg.CoinflipWinChance <= 0 || cfg.CoinflipWinChance >= 1 {
		cfg.CoinflipWinChance = 0.5
	}
	if cfg.UUID == nil {
		cfg.UUID = uuid.New()
	}

	return &service{
		config: &cfg,
		ledger: cfg.Ledger,
		buff:   cfg.Buff,
		rounds: make(map[string]*round),
	}, nil
}

// validateStake normalizes a stake and checks the table limits
func (s *service) validateStake(amount float64) (float64, error) {
	stake := money.Round2(amount)
	if stake <= 0 {
		return 0, ErrInvalidAmount
	}
	if stake < s.config.MinBet {
		return 0, ErrBetTooSmall
	}
	if stake > s.config.MaxBet {
		return 0, ErrBetTooLarge
	}
	return stake, nil
}

// debitStake reserves the stake pessimistically: funds leave the account
// at admission, not at settlement
func (s *service) debitStake(ctx context.Context, userID string, stake float64) (float64, error) {
	balance, err := s.ledger.GetBalance(ctx, &ledgerRepo.GetBalanceInput{UserID: userID})
	if err != nil {
		return 0, err
	}
	if balance.Balance < stake {
		return 0, ErrInsufficientFunds
	}

	debited, err := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
		UserID: userID,
		Delta:  -stake,
	})
	if err != nil {
		return 0, err
	}
	return debited.Balance, nil
}

// Coinflip settles a double-or-nothing flip immediately. An active luck
// boost skews the win probability and spends one use.
func (s *service) Coinflip(ctx context.Context, input *CoinflipInput) (*CoinflipOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	stake, err := s.validateStake(input.Amount)
	if err != nil {
		return nil, err
	}

	s.cacheName(ctx, input.UserID, input.UserName)

	balance, err := s.debitStake(ctx, input.UserID, stake)
	if err != nil {
		return nil, err
	}

	out := &CoinflipOutput{Balance: balance}

	winChance := s.config.CoinflipWinChance
	status, err := s.buff.Status(ctx, &buff.StatusInput{UserID: input.UserID})
	if err != nil {
		log.WithError(err).WithField("user_id", input.UserID).Warn("failed to read boost status")
	} else if status.Active {
		consumed, err := s.buff.Consume(ctx, &buff.ConsumeInput{UserID: input.UserID})
		if err != nil {
			log.WithError(err).WithField("user_id", input.UserID).Warn("failed to consume boost use")
		} else if consumed.Consumed {
			winChance = s.buff.BoostedWinChance()
			out.Boosted = true
			out.BoostUsesLeft = consumed.Remaining
		}
	}

	if s.config.Roller.Float64() < winChance {
		payout := money.Round2(stake * 2)
		credited, err := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
			UserID: input.UserID,
			Delta:  payout,
		})
		if err != nil {
			return nil, err
		}
		out.Won = true
		out.Payout = payout
		out.Balance = credited.Balance
	}

	return out, nil
}

// PlaceBet admits a roulette bet. The first bet in a channel opens a round
// and schedules its last-call and resolution timers; later bets join the
// open round without touching the timers.
func (s *service) PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error) {
	if input == nil || input.ChannelID == "" || input.UserID == "" {
		return nil, errors.New("input, channel ID and user ID cannot be empty")
	}

	// Malformed descriptors are rejected before any state change
	bet, err := roulette.ParseBet(input.Bet)
	if err != nil {
		return nil, err
	}

	stake, err := s.validateStake(input.Amount)
	if err != nil {
		return nil, err
	}

	s.cacheName(ctx, input.UserID, input.UserName)

	s.mu.Lock()
	defer s.mu.Unlock()

	r, open := s.rounds[input.ChannelID]
	if open && r.phase == PhaseResolving {
		return nil, ErrRoundResolving
	}

	balance, err := s.debitStake(ctx, input.UserID, stake)
	if err != nil {
		return nil, err
	}

	placed := PlacedBet{
		UserID:   input.UserID,
		UserName: input.UserName,
		Bet:      bet,
		Stake:    stake,
	}

	// Boost modifiers are flagged and spent at admission, not settlement
	if bet.SalvageEligible() {
		status, err := s.buff.Status(ctx, &buff.StatusInput{UserID: input.UserID})
		if err != nil {
			log.WithError(err).WithField("user_id", input.UserID).Warn("failed to read boost status")
		} else if status.Active {
			consumed, err := s.buff.Consume(ctx, &buff.ConsumeInput{UserID: input.UserID})
			if err != nil {
				log.WithError(err).WithField("user_id", input.UserID).Warn("failed to consume boost use")
			} else if consumed.Consumed {
				placed.Salvage = true
			}
		}
	}

	out := &PlaceBetOutput{
		Bet:     bet,
		Salvage: placed.Salvage,
		Balance: balance,
	}

	if !open {
		r = s.openRound(input.ChannelID)
		out.Opened = true
	}

	r.bets = append(r.bets, placed)
	out.ClosesAt = r.closesAt
	out.Participants = len(r.bets)

	return out, nil
}

// openRound registers a fresh round for the channel and schedules its
// timers. Caller holds s.mu.
func (s *service) openRound(channelID string) *round {
	now := s.config.Clock.Now()
	r := &round{
		id:        s.config.UUID.NewUUID(),
		channelID: channelID,
		phase:     PhaseOpen,
		openedAt:  now,
		closesAt:  now.Add(s.config.Window),
	}
	s.rounds[channelID] = r

	log.WithFields(log.Fields{
		"round_id": r.id,
		"channel":  channelID,
	}).Info("roulette round opened")

	if s.config.LastCall > 0 {
		r.lastCall = time.AfterFunc(s.config.Window-s.config.LastCall, func() {
			s.announceLastCall(channelID)
		})
	}
	r.resolve = time.AfterFunc(s.config.Window, func() {
		s.resolveRound(channelID)
	})

	return r
}

// announceLastCall flips the round to Closing and notifies the channel.
// Bets are still accepted until the resolve timer fires.
func (s *service) announceLastCall(channelID string) {
	s.mu.Lock()
	r, ok := s.rounds[channelID]
	if !ok || r.phase != PhaseOpen {
		s.mu.Unlock()
		return
	}
	r.phase = PhaseClosing
	snapshot := r.snapshot()
	s.mu.Unlock()

	s.config.Notifier.RoundLastCall(context.Background(), snapshot)
}

// resolveRound marks the round resolving, draws one outcome and settles
// every bet in admission order. Settlement is per-bet: a failed credit is
// logged and does not block the remaining bets. The round stays in the
// registry until the last credit lands, so a bet arriving mid-settlement
// sees Resolving instead of opening a second round in the channel.
func (s *service) resolveRound(channelID string) {
	s.mu.Lock()
	r, ok := s.rounds[channelID]
	if !ok {
		s.mu.Unlock()
		return
	}
	r.phase = PhaseResolving
	s.mu.Unlock()

	ctx := context.Background()
	outcome := roulette.Spin(s.config.Roller)

	result := &RoundResult{
		RoundID:   r.id,
		ChannelID: channelID,
		Outcome:   outcome,
		Results:   make([]BetResult, 0, len(r.bets)),
	}

	for _, placed := range r.bets {
		br := BetResult{PlacedBet: placed}
		result.TotalStaked += placed.Stake

		if mult := roulette.Multiplier(placed.Bet, outcome); mult > 0 {
			br.Won = true
			br.Multiplier = mult
			br.Payout = money.Round2(placed.Stake * mult)
		} else if placed.Salvage && s.config.Roller.Float64() < s.buff.SalvageChance() {
			br.Won = true
			br.Salvaged = true
			br.Payout = money.Round2(placed.Stake * s.buff.SalvageMultiplier())
		}

		if br.Payout > 0 {
			credited, err := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
				UserID: placed.UserID,
				Delta:  br.Payout,
			})
			if err != nil {
				log.WithError(err).WithFields(log.Fields{
					"user_id": placed.UserID,
					"channel": channelID,
				}).Error("failed to credit roulette payout")
			} else {
				br.Balance = credited.Balance
				result.TotalPaid += br.Payout
			}
		}

		result.Results = append(result.Results, br)
	}

	s.mu.Lock()
	delete(s.rounds, channelID)
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"round_id": r.id,
		"outcome":  outcome.Slot,
		"bets":     len(r.bets),
	}).Info("roulette round resolved")

	s.config.Notifier.RoundResolved(ctx, result)
}

// CancelRound aborts a channel's round: stops both timers, drops the round
// and refunds every admitted stake
func (s *service) CancelRound(ctx context.Context, input *CancelRoundInput) (*CancelRoundOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	s.mu.Lock()
	r, ok := s.rounds[input.ChannelID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoActiveRound
	}
	// Settlement has debited nothing further but is already paying out;
	// refunding now would double-pay
	if r.phase == PhaseResolving {
		s.mu.Unlock()
		return nil, ErrRoundResolving
	}
	if r.lastCall != nil {
		r.lastCall.Stop()
	}
	r.resolve.Stop()
	delete(s.rounds, input.ChannelID)
	s.mu.Unlock()

	out := &CancelRoundOutput{}
	for _, placed := range r.bets {
		if _, err := s.ledger.AddBalance(ctx, &ledgerRepo.AddBalanceInput{
			UserID: placed.UserID,
			Delta:  placed.Stake,
		}); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id": placed.UserID,
				"channel": input.ChannelID,
			}).Error("failed to refund cancelled bet")
			continue
		}
		out.Refunded++
		out.Total = money.Round2(out.Total + placed.Stake)
	}

	return out, nil
}

// ActiveRound returns a snapshot of the channel's round, if any
func (s *service) ActiveRound(channelID string) (*RoundSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rounds[channelID]
	if !ok {
		return nil, false
	}
	return r.snapshot(), true
}

func (r *round) snapshot() *RoundSnapshot {
	bets := make([]PlacedBet, len(r.bets))
	copy(bets, r.bets)
	return &RoundSnapshot{
		RoundID:   r.id,
		ChannelID: r.channelID,
		Phase:     r.phase,
		Bets:      bets,
		OpenedAt:  r.openedAt,
		ClosesAt:  r.closesAt,
	}
}

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
