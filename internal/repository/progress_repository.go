package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mentoraqua/guardianes-api/internal/models"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

const (
	progressKeyPrefix = "progress:"
	sessionLogKey     = "session_log"
)

// ProgressRepository persists team progress records and the shared session
// log in Redis. One key per team plus a single append-only log key.
type ProgressRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewProgressRepository constructs a progress repository.
func NewProgressRepository(client *redis.Client, logger *zap.Logger) *ProgressRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressRepository{client: client, logger: logger}
}

func progressKey(teamID string) string {
	return progressKeyPrefix + teamID
}

// Get loads a team's progress record. A missing key returns ErrNotFound.
// A record that no longer decodes is treated the same as an absent one so a
// corrupt entry cannot wedge a team; the payload stays in Redis for triage.
func (r *ProgressRepository) Get(ctx context.Context, teamID string) (*models.TeamProgress, error) {
	raw, err := r.client.Get(ctx, progressKey(teamID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", progressKey(teamID), err)
	}

	progress, ok := decodeProgress(raw, teamID)
	if !ok {
		r.logger.Warn("undecodable progress record, treating as absent", zap.String("teamId", teamID))
		return nil, appErrors.ErrNotFound
	}
	return progress, nil
}

// decodeProgress parses a stored record. A payload that no longer decodes
// reads as absent rather than wedging the team.
func decodeProgress(raw []byte, teamID string) (*models.TeamProgress, bool) {
	var progress models.TeamProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, false
	}
	if progress.TeamID == "" {
		progress.TeamID = teamID
	}
	return &progress, true
}

// decodeSessionLog parses the stored log array; a corrupt log reads as empty.
func decodeSessionLog(raw []byte) ([]models.SessionLogEntry, bool) {
	var entries []models.SessionLogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// Put stores a team's progress record, replacing any previous value.
func (r *ProgressRepository) Put(ctx context.Context, progress *models.TeamProgress) error {
	payload, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress for %s: %w", progress.TeamID, err)
	}
	if err := r.client.Set(ctx, progressKey(progress.TeamID), payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", progressKey(progress.TeamID), err)
	}
	return nil
}

// Delete removes a team's progress record. Deleting a missing record is not
// an error.
func (r *ProgressRepository) Delete(ctx context.Context, teamID string) error {
	if err := r.client.Del(ctx, progressKey(teamID)).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", progressKey(teamID), err)
	}
	return nil
}

// ListAll scans every stored progress record. Records that fail to decode
// are skipped with a warning so one bad entry cannot blank the review
// dashboard. Results are ordered by team ID for stable output.
func (r *ProgressRepository) ListAll(ctx context.Context) ([]models.TeamProgress, error) {
	var records []models.TeamProgress

	iter := r.client.Scan(ctx, 0, progressKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		raw, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("redis get %s: %w", key, err)
		}

		progress, ok := decodeProgress(raw, strings.TrimPrefix(key, progressKeyPrefix))
		if !ok {
			r.logger.Warn("skipping undecodable progress record", zap.String("key", key))
			continue
		}
		records = append(records, *progress)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan %s*: %w", progressKeyPrefix, err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].TeamID < records[j].TeamID })
	return records, nil
}

// AppendSessionLog appends a session snapshot to the shared log. If the
// stored log no longer decodes it is replaced by a fresh log holding only
// the new entry; losing history is preferable to losing the save.
func (r *ProgressRepository) AppendSessionLog(ctx context.Context, entry models.SessionLogEntry) error {
	var entries []models.SessionLogEntry

	raw, err := r.client.Get(ctx, sessionLogKey).Bytes()
	switch {
	case err == redis.Nil:
	case err != nil:
		return fmt.Errorf("redis get %s: %w", sessionLogKey, err)
	default:
		var ok bool
		if entries, ok = decodeSessionLog(raw); !ok {
			r.logger.Warn("session log undecodable, starting a fresh log")
			entries = nil
		}
	}

	entries = append(entries, entry)
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal session log: %w", err)
	}
	if err := r.client.Set(ctx, sessionLogKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", sessionLogKey, err)
	}
	return nil
}

// ReadSessionLog returns every logged session snapshot in append order.
// An absent or undecodable log reads as empty.
func (r *ProgressRepository) ReadSessionLog(ctx context.Context) ([]models.SessionLogEntry, error) {
	raw, err := r.client.Get(ctx, sessionLogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", sessionLogKey, err)
	}

	entries, ok := decodeSessionLog(raw)
	if !ok {
		r.logger.Warn("session log undecodable, reading as empty")
		return nil, nil
	}
	return entries, nil
}
