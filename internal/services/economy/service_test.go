package economy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/hustlebot/hustle/internal/common/clock/mocks"
	"github.com/hustlebot/hustle/internal/models"
	"github.com/hustlebot/hustle/internal/progression"
	ledgerRepo "github.com/hustlebot/hustle/internal/repositories/ledger"
	ledgerMocks "github.com/hustlebot/hustle/internal/repositories/ledger/mocks"
	"github.com/hustlebot/hustle/internal/reward"
	rngMocks "github.com/hustlebot/hustle/internal/rng/mocks"
)

type EconomyServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockLedger *ledgerMocks.MockRepository
	mockSource *rngMocks.MockSource
	mockClock  *clockMocks.MockClock
	svc        Service
	ctx        context.Context

	testTime   time.Time
	testUserID string
}

func (s *EconomyServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockSource = rngMocks.NewMockSource(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Two tiers with single-class distributions keep the weighted walk
	// predictable under a scripted random source.
	table, err := progression.NewTable([]progression.Tier{
		{
			Name: "Odd-Jobber", MinJobs: 0,
			Distribution: reward.Distribution{reward.ClassCommon: 100},
		},
		{
			Name: "Go-Getter", MinJobs: 250,
			Distribution: reward.Distribution{reward.ClassEpic: 100},
		},
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		BaseOdds: reward.Odds{
			SpecialChance: 0.01,
			RareGateOneIn: 777,
			TipChance:     0.20,
		},
		OverrideOdds: reward.Odds{
			SpecialChance: 0.25,
			RareGateOneIn: 5,
			TipChance:     0.50,
			Override:      reward.Distribution{reward.ClassRare: 100},
		},
		Ledger:      s.mockLedger,
		Progression: table,
		Roller:      s.mockSource,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *EconomyServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEconomyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EconomyServiceTestSuite))
}

func (s *EconomyServiceTestSuite) expectName(userID, name string) {
	s.mockLedger.EXPECT().SetAccountName(s.ctx, &ledgerRepo.SetAccountNameInput{
		UserID: userID,
		Name:   name,
	}).Return(nil)
}

func (s *EconomyServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilLedger)

	_, err = New(&Config{Ledger: s.mockLedger})
	s.ErrorIs(err, ErrNilRoller)

	_, err = New(&Config{Ledger: s.mockLedger, Roller: s.mockSource})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Ledger: s.mockLedger, Roller: s.mockSource, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilProgression)
}

func (s *EconomyServiceTestSuite) TestWorkRegularJob() {
	common, ok := reward.Jobs(reward.ClassCommon)
	s.Require().True(ok)

	s.expectName(s.testUserID, "Worker")

	gomock.InOrder(
		// special gate misses
		s.mockSource.EXPECT().Float64().Return(1.0),
		// rarity walk lands on common
		s.mockSource.EXPECT().Uniform(0.0, 100.0).Return(10.0),
		s.mockSource.EXPECT().Intn(len(common.Labels)).Return(2),
		s.mockSource.EXPECT().Uniform(common.Payout.Min, common.Payout.Max).Return(120.5),
		// tip gate misses
		s.mockSource.EXPECT().Float64().Return(1.0),
	)

	s.mockLedger.EXPECT().GetJobCounts(s.ctx, &ledgerRepo.GetJobCountsInput{
		UserID: s.testUserID,
	}).Return(&ledgerRepo.GetJobCountsOutput{
		Counts: map[string]int{"common": 10},
		Total:  10,
	}, nil)
	s.mockLedger.EXPECT().AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{
		UserID: s.testUserID,
		Delta:  120.5,
	}).Return(&ledgerRepo.AddBalanceOutput{Balance: 620.5}, nil)
	s.mockLedger.EXPECT().IncrementJobCount(s.ctx, &ledgerRepo.IncrementJobCountInput{
		UserID: s.testUserID,
		Class:  "common",
	}).Return(nil)
	s.mockLedger.EXPECT().GetBestPayout(s.ctx, &ledgerRepo.GetBestPayoutInput{
		UserID: s.testUserID,
	}).Return(&ledgerRepo.GetBestPayoutOutput{Record: nil}, nil)
	s.mockLedger.EXPECT().SetBestPayoutIfGreater(s.ctx, &ledgerRepo.SetBestPayoutIfGreaterInput{
		UserID: s.testUserID,
		Record: &models.PayoutRecord{
			Amount:    120.5,
			Label:     common.Labels[2],
			Class:     "common",
			Timestamp: s.testTime,
		},
	}).Return(nil)

	output, err := s.svc.Work(s.ctx, &WorkInput{UserID: s.testUserID, UserName: "Worker"})

	s.Require().NoError(err)
	s.False(output.Special)
	s.Equal("common", output.Class)
	s.Equal(common.Labels[2], output.Label)
	s.Equal(120.5, output.BasePayout)
	s.Nil(output.Tip)
	s.Equal(120.5, output.TotalPayout)
	s.Equal(620.5, output.Balance)
	s.Equal("Odd-Jobber", output.TierName)
	s.True(output.NewBest)
}

func (s *EconomyServiceTestSuite) TestWorkWithTip() {
	common, ok := reward.Jobs(reward.ClassCommon)
	s.Require().True(ok)

	s.expectName(s.testUserID, "Worker")

	gomock.InOrder(
		s.mockSource.EXPECT().Float64().Return(1.0),
		s.mockSource.EXPECT().Uniform(0.0, 100.0).Return(10.0),
		s.mockSource.EXPECT().Intn(len(common.Labels)).Return(0),
		s.mockSource.EXPECT().Uniform(common.Payout.Min, common.Payout.Max).Return(100.0),
		// tip gate passes, lowest tier lands
		s.mockSource.EXPECT().Float64().Return(0.1),
		s.mockSource.EXPECT().Uniform(0.0, gomock.Any()).Return(0.0),
		s.mockSource.EXPECT().Uniform(gomock.Any(), gomock.Any()).Return(1.10),
	)

	s.mockLedger.EXPECT().GetJobCounts(s.ctx, gomock.Any()).Return(&ledgerRepo.GetJobCountsOutput{
		Counts: map[string]int{"common": 1},
		Total:  1,
	}, nil)
	s.mockLedger.EXPECT().AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{
		UserID: s.testUserID,
		Delta:  110.0,
	}).Return(&ledgerRepo.AddBalanceOutput{Balance: 110.0}, nil)
	s.mockLedger.EXPECT().IncrementJobCount(s.ctx, gomock.Any()).Return(nil)
	s.mockLedger.EXPECT().GetBestPayout(s.ctx, gomock.Any()).Return(&ledgerRepo.GetBestPayoutOutput{
		Record: &models.PayoutRecord{Amount: 5000},
	}, nil)

	output, err := s.svc.Work(s.ctx, &WorkInput{UserID: s.testUserID, UserName: "Worker"})

	s.Require().NoError(err)
	s.Require().NotNil(output.Tip)
	s.Equal(1.10, output.Tip.Mult)
	s.Equal(100.0, output.BasePayout)
	s.Equal(110.0, output.TotalPayout)
	s.False(output.NewBest)
}

func (s *EconomyServiceTestSuite) TestWorkSpecialJob() {
	s.expectName(s.testUserID, "Worker")

	gomock.InOrder(
		// special gate passes and the uniform pick lands on the gateless
		// penny job at index 1
		s.mockSource.EXPECT().Float64().Return(0.0),
		s.mockSource.EXPECT().Intn(4).Return(1),
		s.mockSource.EXPECT().Uniform(0.25, 0.25).Return(0.25),
		// tip gate misses
		s.mockSource.EXPECT().Float64().Return(1.0),
	)

	s.mockLedger.EXPECT().AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{
		UserID: s.testUserID,
		Delta:  0.25,
	}).Return(&ledgerRepo.AddBalanceOutput{Balance: 50.25}, nil)
	s.mockLedger.EXPECT().IncrementJobCount(s.ctx, &ledgerRepo.IncrementJobCountInput{
		UserID: s.testUserID,
		Class:  "special",
	}).Return(nil)
	s.mockLedger.EXPECT().GetBestPayout(s.ctx, gomock.Any()).Return(&ledgerRepo.GetBestPayoutOutput{
		Record: &models.PayoutRecord{Amount: 500},
	}, nil)

	output, err := s.svc.Work(s.ctx, &WorkInput{UserID: s.testUserID, UserName: "Worker"})

	s.Require().NoError(err)
	s.True(output.Special)
	s.Equal("special", output.Class)
	s.NotEmpty(output.Label)
	s.Equal(0.25, output.TotalPayout)
	s.Equal(50.25, output.Balance)
	s.False(output.NewBest)
}

func (s *EconomyServiceTestSuite) TestWorkOverrideOddsReplaceTierDistribution() {
	rare, ok := reward.Jobs(reward.ClassRare)
	s.Require().True(ok)

	_, err := s.svc.SetOverrideMode(s.ctx, &SetOverrideModeInput{Enabled: true})
	s.Require().NoError(err)

	s.expectName(s.testUserID, "Worker")

	gomock.InOrder(
		s.mockSource.EXPECT().Float64().Return(1.0),
		// the override distribution is all rare regardless of tier
		s.mockSource.EXPECT().Uniform(0.0, 100.0).Return(50.0),
		s.mockSource.EXPECT().Intn(len(rare.Labels)).Return(0),
		s.mockSource.EXPECT().Uniform(rare.Payout.Min, rare.Payout.Max).Return(rare.Payout.Min),
		s.mockSource.EXPECT().Float64().Return(1.0),
	)

	s.mockLedger.EXPECT().GetJobCounts(s.ctx, gomock.Any()).Return(&ledgerRepo.GetJobCountsOutput{
		Counts: map[string]int{},
		Total:  0,
	}, nil)
	s.mockLedger.EXPECT().AddBalance(s.ctx, gomock.Any()).Return(&ledgerRepo.AddBalanceOutput{
		Balance: rare.Payout.Min,
	}, nil)
	s.mockLedger.EXPECT().IncrementJobCount(s.ctx, &ledgerRepo.IncrementJobCountInput{
		UserID: s.testUserID,
		Class:  "rare",
	}).Return(nil)
	s.mockLedger.EXPECT().GetBestPayout(s.ctx, gomock.Any()).Return(&ledgerRepo.GetBestPayoutOutput{
		Record: &models.PayoutRecord{Amount: 1e12},
	}, nil)

	output, err := s.svc.Work(s.ctx, &WorkInput{UserID: s.testUserID, UserName: "Worker"})

	s.Require().NoError(err)
	s.Equal("rare", output.Class)
	s.Equal("Odd-Jobber", output.TierName)
}

func (s *EconomyServiceTestSuite) TestGetBalance() {
	s.expectName(s.testUserID, "Worker")
	s.mockLedger.EXPECT().GetBalance(s.ctx, &ledgerRepo.GetBalanceInput{
		UserID: s.testUserID,
	}).Return(&ledgerRepo.GetBalanceOutput{Balance: 420.69}, nil)

	output, err := s.svc.GetBalance(s.ctx, &GetBalanceInput{UserID: s.testUserID, UserName: "Worker"})

	s.Require().NoError(err)
	s.Equal(420.69, output.Balance)
}

func (s *EconomyServiceTestSuite) TestPay() {
	s.expectName("alice", "Alice")
	s.expectName("bob", "Bob")

	s.mockLedger.EXPECT().GetBalance(s.ctx, &ledgerRepo.GetBalanceInput{
		UserID: "alice",
	}).Return(&ledgerRepo.GetBalanceOutput{Balance: 100}, nil)
	gomock.InOrder(
		s.mockLedger.EXPECT().AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{
			UserID: "alice",
			Delta:  -40,
		}).Return(&ledgerRepo.AddBalanceOutput{Balance: 60}, nil),
		s.mockLedger.EXPECT().AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{
			UserID: "bob",
			Delta:  40,
		}).Return(&ledgerRepo.AddBalanceOutput{Balance: 40}, nil),
	)

	output, err := s.svc.Pay(s.ctx, &PayInput{
		FromUserID: "alice", FromName: "Alice",
		ToUserID: "bob", ToName: "Bob",
		Amount: 40,
	})

	s.Require().NoError(err)
	s.Equal(40.0, output.Amount)
	s.Equal(60.0, output.FromBalance)
	s.Equal(40.0, output.ToBalance)
}

func (s *EconomyServiceTestSuite) TestPayRoundsAmount() {
	s.expectName("alice", "Alice")
	s.expectName("bob", "Bob")

	s.mockLedger.EXPECT().GetBalance(s.ctx, gomock.Any()).Return(&ledgerRepo.GetBalanceOutput{
		Balance: 100,
	}, nil)
	s.mockLedger.EXPECT().AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{
		UserID: "alice",
		Delta:  -12.35,
	}).Return(&ledgerRepo.AddBalanceOutput{Balance: 87.65}, nil)
	s.mockLedger.EXPECT().AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{
		UserID: "bob",
		Delta:  12.35,
	}).Return(&ledgerRepo.AddBalanceOutput{Balance: 12.35}, nil)

	output, err := s.svc.Pay(s.ctx, &PayInput{
		FromUserID: "alice", FromName: "Alice",
		ToUserID: "bob", ToName: "Bob",
		Amount: 12.345,
	})

	s.Require().NoError(err)
	s.Equal(12.35, output.Amount)
}

func (s *EconomyServiceTestSuite) TestPayInsufficientFunds() {
	s.expectName("alice", "Alice")
	s.expectName("bob", "Bob")

	s.mockLedger.EXPECT().GetBalance(s.ctx, gomock.Any()).Return(&ledgerRepo.GetBalanceOutput{
		Balance: 10,
	}, nil)

	_, err := s.svc.Pay(s.ctx, &PayInput{
		FromUserID: "alice", FromName: "Alice",
		ToUserID: "bob", ToName: "Bob",
		Amount: 40,
	})

	s.ErrorIs(err, ErrInsufficientFunds)
}

func (s *EconomyServiceTestSuite) TestPayInvalidAmount() {
	_, err := s.svc.Pay(s.ctx, &PayInput{
		FromUserID: "alice", ToUserID: "bob", Amount: 0,
	})
	s.ErrorIs(err, ErrInvalidAmount)

	_, err = s.svc.Pay(s.ctx, &PayInput{
		FromUserID: "alice", ToUserID: "bob", Amount: -5,
	})
	s.ErrorIs(err, ErrInvalidAmount)

	// sub-cent amounts round to zero
	_, err = s.svc.Pay(s.ctx, &PayInput{
		FromUserID: "alice", ToUserID: "bob", Amount: 0.004,
	})
	s.ErrorIs(err, ErrInvalidAmount)
}

func (s *EconomyServiceTestSuite) TestPaySelf() {
	_, err := s.svc.Pay(s.ctx, &PayInput{
		FromUserID: "alice", ToUserID: "alice", Amount: 40,
	})
	s.ErrorIs(err, ErrSelfPayment)
}

func (s *EconomyServiceTestSuite) TestGetProgress() {
	best := &models.PayoutRecord{
		Amount: 950.75, Label: "walked a dog", Class: "common", Timestamp: s.testTime,
	}

	s.mockLedger.EXPECT().GetJobCounts(s.ctx, &ledgerRepo.GetJobCountsInput{
		UserID: s.testUserID,
	}).Return(&ledgerRepo.GetJobCountsOutput{
		Counts: map[string]int{"common": 8, "rare": 2},
		Total:  10,
	}, nil)
	s.mockLedger.EXPECT().GetBestPayout(s.ctx, &ledgerRepo.GetBestPayoutInput{
		UserID: s.testUserID,
	}).Return(&ledgerRepo.GetBestPayoutOutput{Record: best}, nil)

	output, err := s.svc.GetProgress(s.ctx, &GetProgressInput{UserID: s.testUserID})

	s.Require().NoError(err)
	s.Equal(10, output.Total)
	s.Equal("Odd-Jobber", output.Tier.Name)
	s.Require().NotNil(output.Next)
	s.Equal("Go-Getter", output.Next.Name)
	s.Equal(240, output.Next.JobsRemaining)
	s.Equal(best, output.BestPayout)
}

func (s *EconomyServiceTestSuite) TestGetProgressTopTier() {
	s.mockLedger.EXPECT().GetJobCounts(s.ctx, gomock.Any()).Return(&ledgerRepo.GetJobCountsOutput{
		Counts: map[string]int{"epic": 300},
		Total:  300,
	}, nil)
	s.mockLedger.EXPECT().GetBestPayout(s.ctx, gomock.Any()).Return(&ledgerRepo.GetBestPayoutOutput{}, nil)

	output, err := s.svc.GetProgress(s.ctx, &GetProgressInput{UserID: s.testUserID})

	s.Require().NoError(err)
	s.Equal("Go-Getter", output.Tier.Name)
	s.Nil(output.Next)
	s.Nil(output.BestPayout)
}

func (s *EconomyServiceTestSuite) TestLeaderboards() {
	moneyRows := []ledgerRepo.LeaderboardEntry{
		{UserID: "a", Name: "Alice", Value: 900},
		{UserID: "b", Name: "Bob", Value: 450},
	}
	jobRows := []ledgerRepo.LeaderboardEntry{
		{UserID: "b", Name: "Bob", Value: 120},
	}

	s.mockLedger.EXPECT().ListTopBalances(s.ctx, &ledgerRepo.ListTopBalancesInput{
		Limit: 10,
	}).Return(&ledgerRepo.ListTopBalancesOutput{Entries: moneyRows}, nil)
	s.mockLedger.EXPECT().ListTopJobTotals(s.ctx, &ledgerRepo.ListTopJobTotalsInput{
		Limit: 10,
	}).Return(&ledgerRepo.ListTopJobTotalsOutput{Entries: jobRows}, nil)

	output, err := s.svc.Leaderboard(s.ctx, &LeaderboardInput{Kind: LeaderboardMoney})
	s.Require().NoError(err)
	s.Equal(moneyRows, output.Entries)

	output, err = s.svc.Leaderboard(s.ctx, &LeaderboardInput{Kind: LeaderboardJobs})
	s.Require().NoError(err)
	s.Equal(jobRows, output.Entries)
}

func (s *EconomyServiceTestSuite) TestResetAccount() {
	s.mockLedger.EXPECT().DeleteAccount(s.ctx, &ledgerRepo.DeleteAccountInput{
		UserID: s.testUserID,
	}).Return(nil)

	s.NoError(s.svc.ResetAccount(s.ctx, &ResetAccountInput{UserID: s.testUserID}))
}

func (s *EconomyServiceTestSuite) TestResetAccountNotFound() {
	s.mockLedger.EXPECT().DeleteAccount(s.ctx, gomock.Any()).Return(ledgerRepo.ErrAccountNotFound)

	err := s.svc.ResetAccount(s.ctx, &ResetAccountInput{UserID: s.testUserID})
	s.ErrorIs(err, ErrNotFound)
}

func (s *EconomyServiceTestSuite) TestResetAll() {
	s.mockLedger.EXPECT().DeleteAllAccounts(s.ctx).Return(nil)
	s.NoError(s.svc.ResetAll(s.ctx))
}

func (s *EconomyServiceTestSuite) TestOverrideToggle() {
	s.False(s.svc.OverrideEnabled())

	output, err := s.svc.SetOverrideMode(s.ctx, &SetOverrideModeInput{Enabled: true})
	s.Require().NoError(err)
	s.True(output.Enabled)
	s.True(s.svc.OverrideEnabled())

	output, err = s.svc.SetOverrideMode(s.ctx, &SetOverrideModeInput{Enabled: false})
	s.Require().NoError(err)
	s.False(output.Enabled)
	s.False(s.svc.OverrideEnabled())
}

func (s *EconomyServiceTestSuite) TestFishTakesCut() {
	s.expectName(s.testUserID, "Angler")

	s.mockLedger.EXPECT().GetBalance(s.ctx, &ledgerRepo.GetBalanceInput{
		UserID: s.testUserID,
	}).Return(&ledgerRepo.GetBalanceOutput{Balance: 100.0}, nil)
	s.mockLedger.EXPECT().AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{
		UserID: s.testUserID,
		Delta:  -5.0,
	}).Return(&ledgerRepo.AddBalanceOutput{Balance: 95.0}, nil)

	output, err := s.svc.Fish(s.ctx, &FishInput{UserID: s.testUserID, UserName: "Angler"})

	s.Require().NoError(err)
	s.True(output.Penalized)
	s.Equal(5.0, output.Penalty)
	s.Equal(95.0, output.Balance)
}

func (s *EconomyServiceTestSuite) TestFishRoundsPenalty() {
	s.expectName(s.testUserID, "Angler")

	s.mockLedger.EXPECT().GetBalance(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetBalanceOutput{Balance: 33.33}, nil)
	s.mockLedger.EXPECT().AddBalance(s.ctx, &ledgerRepo.AddBalanceInput{
		UserID: s.testUserID,
		Delta:  -1.67,
	}).Return(&ledgerRepo.AddBalanceOutput{Balance: 31.66}, nil)

	output, err := s.svc.Fish(s.ctx, &FishInput{UserID: s.testUserID, UserName: "Angler"})

	s.Require().NoError(err)
	s.Equal(1.67, output.Penalty)
}

func (s *EconomyServiceTestSuite) TestFishSparesEmptyWallet() {
	s.expectName(s.testUserID, "Angler")

	s.mockLedger.EXPECT().GetBalance(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetBalanceOutput{Balance: 0}, nil)

	output, err := s.svc.Fish(s.ctx, &FishInput{UserID: s.testUserID, UserName: "Angler"})

	s.Require().NoError(err)
	s.False(output.Penalized)
	s.Zero(output.Penalty)
	s.Zero(output.Balance)
}

// captureAnnouncer records broadcast calls for assertions
type captureAnnouncer struct {
	calls []*WorkOutput
}

func (a *captureAnnouncer) WorkHighlight(_ context.Context, _ string, out *WorkOutput) {
	a.calls = append(a.calls, out)
}

// newAnnouncingService builds a service whose only tier rolls the given
// distribution, with broadcasts captured
func (s *EconomyServiceTestSuite) newAnnouncingService(dist reward.Distribution, announcer Announcer) Service {
	table, err := progression.NewTable([]progression.Tier{
		{Name: "Odd-Jobber", MinJobs: 0, Distribution: dist},
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		BaseOdds:    reward.Odds{SpecialChance: 0.01, RareGateOneIn: 777, TipChance: 0.20},
		Announcer:   announcer,
		Ledger:      s.mockLedger,
		Progression: table,
		Roller:      s.mockSource,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	return svc
}

func (s *EconomyServiceTestSuite) TestWorkBroadcastsLegendaryWin() {
	legendary, ok := reward.Jobs(reward.ClassLegendary)
	s.Require().True(ok)

	announcer := &captureAnnouncer{}
	svc := s.newAnnouncingService(reward.Distribution{reward.ClassLegendary: 100}, announcer)

	s.expectName(s.testUserID, "Worker")

	gomock.InOrder(
		s.mockSource.EXPECT().Float64().Return(1.0),
		s.mockSource.EXPECT().Uniform(0.0, 100.0).Return(10.0),
		s.mockSource.EXPECT().Intn(len(legendary.Labels)).Return(0),
		s.mockSource.EXPECT().Uniform(legendary.Payout.Min, legendary.Payout.Max).Return(25000.0),
		s.mockSource.EXPECT().Float64().Return(1.0),
	)

	s.mockLedger.EXPECT().GetJobCounts(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetJobCountsOutput{}, nil)
	s.mockLedger.EXPECT().AddBalance(s.ctx, gomock.Any()).
		Return(&ledgerRepo.AddBalanceOutput{Balance: 25000.0}, nil)
	s.mockLedger.EXPECT().IncrementJobCount(s.ctx, gomock.Any()).Return(nil)
	s.mockLedger.EXPECT().GetBestPayout(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetBestPayoutOutput{Record: nil}, nil)
	s.mockLedger.EXPECT().SetBestPayoutIfGreater(s.ctx, gomock.Any()).Return(nil)

	output, err := svc.Work(s.ctx, &WorkInput{UserID: s.testUserID, UserName: "Worker"})

	s.Require().NoError(err)
	s.Equal("legendary", output.Class)
	s.Require().Len(announcer.calls, 1)
	s.Equal(output, announcer.calls[0])
}

func (s *EconomyServiceTestSuite) TestWorkDoesNotBroadcastCommonWin() {
	common, ok := reward.Jobs(reward.ClassCommon)
	s.Require().True(ok)

	announcer := &captureAnnouncer{}
	svc := s.newAnnouncingService(reward.Distribution{reward.ClassCommon: 100}, announcer)

	s.expectName(s.testUserID, "Worker")

	gomock.InOrder(
		s.mockSource.EXPECT().Float64().Return(1.0),
		s.mockSource.EXPECT().Uniform(0.0, 100.0).Return(10.0),
		s.mockSource.EXPECT().Intn(len(common.Labels)).Return(0),
		s.mockSource.EXPECT().Uniform(common.Payout.Min, common.Payout.Max).Return(80.0),
		s.mockSource.EXPECT().Float64().Return(1.0),
	)

	s.mockLedger.EXPECT().GetJobCounts(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetJobCountsOutput{}, nil)
	s.mockLedger.EXPECT().AddBalance(s.ctx, gomock.Any()).
		Return(&ledgerRepo.AddBalanceOutput{Balance: 80.0}, nil)
	s.mockLedger.EXPECT().IncrementJobCount(s.ctx, gomock.Any()).Return(nil)
	s.mockLedger.EXPECT().GetBestPayout(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetBestPayoutOutput{Record: nil}, nil)
	s.mockLedger.EXPECT().SetBestPayoutIfGreater(s.ctx, gomock.Any()).Return(nil)

	_, err := svc.Work(s.ctx, &WorkInput{UserID: s.testUserID, UserName: "Worker"})

	s.Require().NoError(err)
	s.Empty(announcer.calls)
}

func (s *EconomyServiceTestSuite) TestWorkBroadcastsSpecialWin() {
	announcer := &captureAnnouncer{}
	svc := s.newAnnouncingService(reward.Distribution{reward.ClassCommon: 100}, announcer)

	s.expectName(s.testUserID, "Worker")

	gomock.InOrder(
		s.mockSource.EXPECT().Float64().Return(0.0),
		s.mockSource.EXPECT().Intn(4).Return(1),
		s.mockSource.EXPECT().Uniform(0.25, 0.25).Return(0.25),
		s.mockSource.EXPECT().Float64().Return(1.0),
	)

	s.mockLedger.EXPECT().AddBalance(s.ctx, gomock.Any()).
		Return(&ledgerRepo.AddBalanceOutput{Balance: 0.25}, nil)
	s.mockLedger.EXPECT().IncrementJobCount(s.ctx, gomock.Any()).Return(nil)
	s.mockLedger.EXPECT().GetBestPayout(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetBestPayoutOutput{Record: nil}, nil)
	s.mockLedger.EXPECT().SetBestPayoutIfGreater(s.ctx, gomock.Any()).Return(nil)

	output, err := svc.Work(s.ctx, &WorkInput{UserID: s.testUserID, UserName: "Worker"})

	s.Require().NoError(err)
	s.True(output.Special)
	s.Require().Len(announcer.calls, 1)
}

func (s *EconomyServiceTestSuite) TestNewLeavesConfigUntouched() {
	cfg := &Config{
		Ledger:      s.mockLedger,
		Roller:      s.mockSource,
		Clock:       s.mockClock,
		Progression: progression.DefaultTable(),
	}

	_, err := New(cfg)
	s.Require().NoError(err)
	s.Zero(cfg.LeaderboardSize)
	s.Zero(cfg.FishPenaltyRate)
}
