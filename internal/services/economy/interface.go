package economy

import "context"

// Service defines the interface for economy operations
type Service interface {
	// Work performs one reward roll and commits the payout
	Work(ctx context.Context, input *WorkInput) (*WorkOutput, error)

	// GetBalance returns a user's wallet balance
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// Pay transfers money between two users; zero-sum by construction
	Pay(ctx context.Context, input *PayInput) (*PayOutput, error)

	// Fish takes a cut of the caller's wallet; there is no fishing here
	Fish(ctx context.Context, input *FishInput) (*FishOutput, error)

	// GetProgress summarizes a user's job counts and tier standing
	GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error)

	// Leaderboard returns the top accounts by money or jobs
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// ResetAccount wipes one account
	ResetAccount(ctx context.Context, input *ResetAccountInput) error

	// ResetAll wipes the whole ledger
	ResetAll(ctx context.Context) error

	// SetOverrideMode swaps the live odds for the override odds (or back)
	SetOverrideMode(ctx context.Context, input *SetOverrideModeInput) (*SetOverrideModeOutput, error)

	// OverrideEnabled reports whether override mode is on
	OverrideEnabled() bool
}
