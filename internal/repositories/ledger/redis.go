package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/hustlebot/hustle/internal/models"
)

const (
	// Keys in Redis
	balancesKey         = "economy:balances"   // zset: member=user, score=balance
	jobTotalsKey        = "economy:job_totals" // zset: member=user, score=lifetime jobs
	namesKey            = "economy:names"      // hash: user -> display name
	jobCountsKeyPrefix  = "economy:job_counts:"
	bestPayoutKeyPrefix = "economy:best_payout:"
	buffKeyPrefix       = "economy:buff:"

	// Attempts for the best-payout compare-and-swap before giving up
	bestPayoutRetries = 5
)

var (
	// ErrAccountNotFound is returned when a reset targets an unknown user
	ErrAccountNotFound = errors.New("account not found")

	// ErrBuffNotFound is returned when a user has no luck boost record
	ErrBuffNotFound = errors.New("buff record not found")
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetBalance returns the balance for a user; unknown users have zero
func (r *redisRepository) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	balance, err := r.client.ZScore(ctx, balancesKey, input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetBalanceOutput{Balance: 0}, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &GetBalanceOutput{Balance: balance}, nil
}

// AddBalance applies a signed delta through ZINCRBY, which serializes
// concurrent updates for the same account inside Redis
func (r *redisRepository) AddBalance(ctx context.Context, input *AddBalanceInput) (*AddBalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	balance, err := r.client.ZIncrBy(ctx, balancesKey, input.Delta, input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to add balance: %w", err)
	}

	return &AddBalanceOutput{Balance: balance}, nil
}

// SetAccountName caches a display name for leaderboard rendering
func (r *redisRepository) SetAccountName(ctx context.Context, input *SetAccountNameInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if err := r.client.HSet(ctx, namesKey, input.UserID, input.Name).Err(); err != nil {
		return fmt.Errorf("failed to set account name: %w", err)
	}

	return nil
}

// IncrementJobCount bumps a rarity class counter and the lifetime total
func (r *redisRepository) IncrementJobCount(ctx context.Context, input *IncrementJobCountInput) error {
	if input == nil || input.UserID == "" || input.Class == "" {
		return errors.New("input, user ID and class cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, jobCountsKeyPrefix+input.UserID, input.Class, 1)
	pipe.ZIncrBy(ctx, jobTotalsKey, 1, input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment job count: %w", err)
	}

	return nil
}

// GetJobCounts returns every class counter for a user
func (r *redisRepository) GetJobCounts(ctx context.Context, input *GetJobCountsInput) (*GetJobCountsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	raw, err := r.client.HGetAll(ctx, jobCountsKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get job counts: %w", err)
	}

	counts := make(map[string]int, len(raw))
	total := 0
	for class, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("corrupt job count for class %s: %w", class, err)
		}
		counts[class] = n
		total += n
	}

	return &GetJobCountsOutput{Counts: counts, Total: total}, nil
}

// GetBestPayout returns the best payout record, nil when none exists
func (r *redisRepository) GetBestPayout(ctx context.Context, input *GetBestPayoutInput) (*GetBestPayoutOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, bestPayoutKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetBestPayoutOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get best payout: %w", err)
	}

	var record models.PayoutRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal best payout: %w", err)
	}

	return &GetBestPayoutOutput{Record: &record}, nil
}

// SetBestPayoutIfGreater runs a compare-and-swap under WATCH so two
// concurrent payouts cannot clobber a higher record with a lower one
func (r *redisRepository) SetBestPayoutIfGreater(ctx context.Context, input *SetBestPayoutIfGreaterInput) error {
	if input == nil || input.UserID == "" || input.Record == nil {
		return errors.New("input, user ID and record cannot be nil")
	}

	key := bestPayoutKeyPrefix + input.UserID

	swap := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil && err != redis.Nil {
			return err
		}

		if err == nil {
			var current models.PayoutRecord
			if jsonErr := json.Unmarshal([]byte(raw), &current); jsonErr != nil {
				return fmt.Errorf("failed to unmarshal best payout: %w", jsonErr)
			}
			if input.Record.Amount <= current.Amount {
				return nil
			}
		}

		recordJSON, err := json.Marshal(input.Record)
		if err != nil {
			return fmt.Errorf("failed to marshal best payout: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, recordJSON, 0)
			return nil
		})
		return err
	}

	for i := 0; i < bestPayoutRetries; i++ {
		err := r.client.Watch(ctx, swap, key)
		if err == nil {
			return nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return fmt.Errorf("failed to set best payout: %w", err)
	}

	return fmt.Errorf("failed to set best payout after %d attempts", bestPayoutRetries)
}

// GetBuffRecord returns a user's luck boost record
func (r *redisRepository) GetBuffRecord(ctx context.Context, input *GetBuffRecordInput) (*models.BuffRecord, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, buffKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrBuffNotFound
		}
		return nil, fmt.Errorf("failed to get buff record: %w", err)
	}

	var record models.BuffRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal buff record: %w", err)
	}

	return &record, nil
}

// SetBuffRecord stores a user's luck boost record
func (r *redisRepository) SetBuffRecord(ctx context.Context, input *SetBuffRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if input.Record.UserID == "" {
		return errors.New("buff record user ID cannot be empty")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal buff record: %w", err)
	}

	if err := r.client.Set(ctx, buffKeyPrefix+input.Record.UserID, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set buff record: %w", err)
	}

	return nil
}

// ListTopBalances returns the richest accounts, best first
func (r *redisRepository) ListTopBalances(ctx context.Context, input *ListTopBalancesInput) (*ListTopBalancesOutput, error) {
	entries, err := r.listTop(ctx, balancesKey, input.Limit)
	if err != nil {
		return nil, err
	}
	return &ListTopBalancesOutput{Entries: entries}, nil
}

// ListTopJobTotals returns the hardest workers, best first
func (r *redisRepository) ListTopJobTotals(ctx context.Context, input *ListTopJobTotalsInput) (*ListTopJobTotalsOutput, error) {
	entries, err := r.listTop(ctx, jobTotalsKey, input.Limit)
	if err != nil {
		return nil, err
	}
	return &ListTopJobTotalsOutput{Entries: entries}, nil
}

func (r *redisRepository) listTop(ctx context.Context, key string, limit int) ([]LeaderboardEntry, error) {
	if limit < 1 {
		limit = 10
	}

	rows, err := r.client.ZRevRangeWithScores(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	if len(rows) == 0 {
		return []LeaderboardEntry{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, fmt.Sprint(row.Member))
	}

	names, err := r.client.HMGet(ctx, namesKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read account names: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		name := ""
		if i < len(names) && names[i] != nil {
			name = fmt.Sprint(names[i])
		}
		entries = append(entries, LeaderboardEntry{
			UserID: ids[i],
			Name:   name,
			Value:  row.Score,
		})
	}

	return entries, nil
}

// DeleteAccount removes every record for one user
func (r *redisRepository) DeleteAccount(ctx context.Context, input *DeleteAccountInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	_, balanceErr := r.client.ZScore(ctx, balancesKey, input.UserID).Result()
	_, totalsErr := r.client.ZScore(ctx, jobTotalsKey, input.UserID).Result()
	if balanceErr == redis.Nil && totalsErr == redis.Nil {
		return ErrAccountNotFound
	}
	if balanceErr != nil && balanceErr != redis.Nil {
		return fmt.Errorf("failed to check account: %w", balanceErr)
	}
	if totalsErr != nil && totalsErr != redis.Nil {
		return fmt.Errorf("failed to check account: %w", totalsErr)
	}

	pipe := r.client.Pipeline()
	pipe.ZRem(ctx, balancesKey, input.UserID)
	pipe.ZRem(ctx, jobTotalsKey, input.UserID)
	pipe.HDel(ctx, namesKey, input.UserID)
	pipe.Del(ctx,
		jobCountsKeyPrefix+input.UserID,
		bestPayoutKeyPrefix+input.UserID,
		buffKeyPrefix+input.UserID,
	)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}

// DeleteAllAccounts wipes the whole ledger
func (r *redisRepository) DeleteAllAccounts(ctx context.Context) error {
	// Every user with any state appears in at least one of the two zsets:
	// all mutations go through AddBalance or IncrementJobCount.
	users := map[string]bool{}
	for _, key := range []string{balancesKey, jobTotalsKey} {
		members, err := r.client.ZRange(ctx, key, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, m := range members {
			users[m] = true
		}
	}

	pipe := r.client.Pipeline()
	for userID := range users {
		pipe.Del(ctx,
			jobCountsKeyPrefix+userID,
			bestPayoutKeyPrefix+userID,
			buffKeyPrefix+userID,
		)
	}
	pipe.Del(ctx, balancesKey, jobTotalsKey, namesKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete accounts: %w", err)
	}

	return nil
}
