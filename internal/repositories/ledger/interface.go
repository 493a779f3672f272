package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hustlebot/hustle/internal/repositories/ledger Repository

import (
	"context"

	"github.com/hustlebot/hustle/internal/models"
)

// Repository is the abstract ledger the rest of the system mutates through.
// Implementations must make AddBalance and IncrementJobCount atomic per
// account; concurrent handlers rely on add-delta semantics, never on
// read-modify-write.
type Repository interface {
	// GetBalance returns the balance for a user (zero for unknown users)
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// AddBalance atomically applies a signed delta and returns the new balance
	AddBalance(ctx context.Context, input *AddBalanceInput) (*AddBalanceOutput, error)

	// SetAccountName caches a user's display name for leaderboards
	SetAccountName(ctx context.Context, input *SetAccountNameInput) error

	// IncrementJobCount atomically bumps a rarity class counter
	IncrementJobCount(ctx context.Context, input *IncrementJobCountInput) error

	// GetJobCounts returns all rarity class counters for a user
	GetJobCounts(ctx context.Context, input *GetJobCountsInput) (*GetJobCountsOutput, error)

	// GetBestPayout returns the highest payout record for a user, if any
	GetBestPayout(ctx context.Context, input *GetBestPayoutInput) (*GetBestPayoutOutput, error)

	// SetBestPayoutIfGreater replaces the record only when the new amount
	// is strictly greater than the stored one
	SetBestPayoutIfGreater(ctx context.Context, input *SetBestPayoutIfGreaterInput) error

	// GetBuffRecord returns a user's luck boost record
	GetBuffRecord(ctx context.Context, input *GetBuffRecordInput) (*models.BuffRecord, error)

	// SetBuffRecord stores a user's luck boost record
	SetBuffRecord(ctx context.Context, input *SetBuffRecordInput) error

	// ListTopBalances returns the richest accounts, best first
	ListTopBalances(ctx context.Context, input *ListTopBalancesInput) (*ListTopBalancesOutput, error)

	// ListTopJobTotals returns the hardest workers, best first
	ListTopJobTotals(ctx context.Context, input *ListTopJobTotalsInput) (*ListTopJobTotalsOutput, error)

	// DeleteAccount removes every record for one user
	DeleteAccount(ctx context.Context, input *DeleteAccountInput) error

	// DeleteAllAccounts wipes the whole ledger
	DeleteAllAccounts(ctx context.Context) error
}
