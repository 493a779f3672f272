package buff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/hustlebot/hustle/internal/common/clock/mocks"
	"github.com/hustlebot/hustle/internal/models"
	ledgerRepo "github.com/hustlebot/hustle/internal/repositories/ledger"
	ledgerMocks "github.com/hustlebot/hustle/internal/repositories/ledger/mocks"
)

type BuffServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockLedger *ledgerMocks.MockRepository
	mockClock  *clockMocks.MockClock
	svc        Service
	ctx        context.Context

	testTime   time.Time
	testUserID string
}

func (s *BuffServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		Price:             25000,
		GrantUses:         5,
		Cooldown:          6 * time.Hour,
		BoostedWinChance:  0.55,
		SalvageChance:     0.10,
		SalvageMultiplier: 1.0,
		Ledger:            s.mockLedger,
		Clock:             s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func TestBuffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BuffServiceTestSuite))
}

func (s *BuffServiceTestSuite) TestPurchaseHappyPath() {
	s.mockLedger.EXPECT().
		GetBuffRecord(s.ctx, &ledgerRepo.GetBuffRecordInput{UserID: s.testUserID}).
		Return(nil, ledgerRepo.ErrBuffNotFound)

	s.mockLedger.EXPECT().
		GetBalance(s.ctx, &ledgerRepo.GetBalanceInput{UserID: s.testUserID}).
		Return(&ledgerRepo.GetBalanceOutput{Balance: 30000}, nil)

	s.mockLedger.EXPECT().
		AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{UserID: s.testUserID, Delta: -25000}).
		Return(&ledgerRepo.AddBalanceOutput{Balance: 5000}, nil)

	s.mockLedger.EXPECT().
		SetBuffRecord(s.ctx, &ledgerRepo.SetBuffRecordInput{
			Record: &models.BuffRecord{
				UserID:        s.testUserID,
				Uses:          5,
				CooldownUntil: s.testTime.Add(6 * time.Hour),
				PurchasedAt:   s.testTime,
			},
		}).
		Return(nil)

	out, err := s.svc.Purchase(s.ctx, &PurchaseInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(5, out.Record.Uses)
	s.Equal(5000.0, out.Balance)
	s.Equal(25000.0, out.Price)
}

func (s *BuffServiceTestSuite) TestPurchaseInsufficientFunds() {
	s.mockLedger.EXPECT().
		GetBuffRecord(s.ctx, gomock.Any()).
		Return(nil, ledgerRepo.ErrBuffNotFound)

	s.mockLedger.EXPECT().
		GetBalance(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetBalanceOutput{Balance: 100}, nil)

	_, err := s.svc.Purchase(s.ctx, &PurchaseInput{UserID: s.testUserID})
	s.Require().ErrorIs(err, ErrInsufficientFunds)
}

func (s *BuffServiceTestSuite) TestPurchaseOnCooldown() {
	s.mockLedger.EXPECT().
		GetBuffRecord(s.ctx, gomock.Any()).
		Return(&models.BuffRecord{
			UserID:        s.testUserID,
			Uses:          0,
			CooldownUntil: s.testTime.Add(time.Hour),
		}, nil)

	_, err := s.svc.Purchase(s.ctx, &PurchaseInput{UserID: s.testUserID})
	s.Require().ErrorIs(err, ErrOnCooldown)
}

func (s *BuffServiceTestSuite) TestPurchaseAfterCooldownExpires() {
	s.mockLedger.EXPECT().
		GetBuffRecord(s.ctx, gomock.Any()).
		Return(&models.BuffRecord{
			UserID:        s.testUserID,
			Uses:          0,
			CooldownUntil: s.testTime.Add(-time.Minute),
		}, nil)

	s.mockLedger.EXPECT().
		GetBalance(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetBalanceOutput{Balance: 30000}, nil)

	s.mockLedger.EXPECT().
		AddBalance(s.ctx, gomock.Any()).
		Return(&ledgerRepo.AddBalanceOutput{Balance: 5000}, nil)

	s.mockLedger.EXPECT().
		SetBuffRecord(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.svc.Purchase(s.ctx, &PurchaseInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(5, out.Record.Uses)
}

func (s *BuffServiceTestSuite) TestConsumeDecrements() {
	s.mockLedger.EXPECT().
		GetBuffRecord(s.ctx, gomock.Any()).
		Return(&models.BuffRecord{UserID: s.testUserID, Uses: 3}, nil)

	s.mockLedger.EXPECT().
		SetBuffRecord(s.ctx, &ledgerRepo.SetBuffRecordInput{
			Record: &models.BuffRecord{UserID: s.testUserID, Uses: 2},
		}).
		Return(nil)

	out, err := s.svc.Consume(s.ctx, &ConsumeInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(out.Consumed)
	s.Equal(2, out.Remaining)
}

func (s *BuffServiceTestSuite) TestConsumeAtZeroIsNoOp() {
	s.mockLedger.EXPECT().
		GetBuffRecord(s.ctx, gomock.Any()).
		Return(&models.BuffRecord{UserID: s.testUserID, Uses: 0}, nil)

	out, err := s.svc.Consume(s.ctx, &ConsumeInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.False(out.Consumed)
	s.Equal(0, out.Remaining)
}

func (s *BuffServiceTestSuite) TestConsumeWithoutRecordIsNoOp() {
	s.mockLedger.EXPECT().
		GetBuffRecord(s.ctx, gomock.Any()).
		Return(nil, ledgerRepo.ErrBuffNotFound)

	out, err := s.svc.Consume(s.ctx, &ConsumeInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.False(out.Consumed)
}

func (s *BuffServiceTestSuite) TestStatus() {
	s.mockLedger.EXPECT().
		GetBuffRecord(s.ctx, gomock.Any()).
		Return(&models.BuffRecord{UserID: s.testUserID, Uses: 2}, nil)

	out, err := s.svc.Status(s.ctx, &StatusInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(out.Active)
	s.Equal(2, out.Record.Uses)

	s.mockLedger.EXPECT().
		GetBuffRecord(s.ctx, gomock.Any()).
		Return(nil, ledgerRepo.ErrBuffNotFound)

	out, err = s.svc.Status(s.ctx, &StatusInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.False(out.Active)
	s.Nil(out.Record)
}

func (s *BuffServiceTestSuite) TestEffectHooks() {
	s.Equal(0.55, s.svc.BoostedWinChance())
	s.Equal(0.10, s.svc.SalvageChance())
	s.Equal(1.0, s.svc.SalvageMultiplier())
}

func (s *BuffServiceTestSuite) TestNewLeavesConfigUntouched() {
	cfg := &Config{
		Ledger: s.mockLedger,
		Clock:  s.mockClock,
	}

	_, err := New(cfg)
	s.Require().NoError(err)
	s.Zero(cfg.Price)
	s.Zero(cfg.GrantUses)
	s.Zero(cfg.Cooldown)
	s.Zero(cfg.BoostedWinChance)
}
