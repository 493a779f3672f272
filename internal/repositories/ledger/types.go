package ledger

import "github.com/hustlebot/hustle/internal/models"

// GetBalanceInput contains parameters for reading a balance
type GetBalanceInput struct {
	UserID string
}

// GetBalanceOutput contains the result of reading a balance
type GetBalanceOutput struct {
	Balance float64
}

// AddBalanceInput contains parameters for applying a balance delta
type AddBalanceInput struct {
	UserID string
	Delta  float64
}

// AddBalanceOutput contains the balance after the delta was applied
type AddBalanceOutput struct {
	Balance float64
}

// SetAccountNameInput contains parameters for caching a display name
type SetAccountNameInput struct {
	UserID string
	Name   string
}

// IncrementJobCountInput contains parameters for bumping a class counter
type IncrementJobCountInput struct {
	UserID string
	Class  string
}

// GetJobCountsInput contains parameters for reading class counters
type GetJobCountsInput struct {
	UserID string
}

// GetJobCountsOutput contains all class counters for a user
type GetJobCountsOutput struct {
	Counts map[string]int
	Total  int
}

// GetBestPayoutInput contains parameters for reading the best payout record
type GetBestPayoutInput struct {
	UserID string
}

// GetBestPayoutOutput contains the best payout record; Record is nil when
// the user has never been paid
type GetBestPayoutOutput struct {
	Record *models.PayoutRecord
}

// SetBestPayoutIfGreaterInput contains the candidate payout record
type SetBestPayoutIfGreaterInput struct {
	UserID string
	Record *models.PayoutRecord
}

// GetBuffRecordInput contains parameters for reading a buff record
type GetBuffRecordInput struct {
	UserID string
}

// SetBuffRecordInput contains the buff record to store
type SetBuffRecordInput struct {
	Record *models.BuffRecord
}

// LeaderboardEntry is one row of a leaderboard
type LeaderboardEntry struct {
	UserID string
	Name   string
	Value  float64
}

// ListTopBalancesInput contains parameters for the money leaderboard
type ListTopBalancesInput struct {
	Limit int
}

// ListTopBalancesOutput contains the money leaderboard rows
type ListTopBalancesOutput struct {
	Entries []LeaderboardEntry
}

// ListTopJobTotalsInput contains parameters for the jobs leaderboard
type ListTopJobTotalsInput struct {
	Limit int
}

// ListTopJobTotalsOutput contains the jobs leaderboard rows
type ListTopJobTotalsOutput struct {
	Entries []LeaderboardEntry
}

// DeleteAccountInput contains parameters for removing one account
type DeleteAccountInput struct {
	UserID string
}
