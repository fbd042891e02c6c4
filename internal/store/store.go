package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/config"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
)

// ErrNotFound is returned when a document does not exist for the user.
var ErrNotFound = errors.New("document not found")

// Stat names tracked per user.
const (
	StatRoadmapsGenerated = "roadmaps_generated"
	StatResumesOptimized  = "resumes_optimized"
	StatAssessmentsTaken  = "assessments_taken"
	StatJobsMatched       = "jobs_matched"
)

// Store is the persistence layer: JSON documents and counters keyed by user
// id in Redis.
type Store struct {
	client *redis.Client
	logger logging.Logger
}

// New creates a store from configuration. The connection is lazy; call Ping
// to verify reachability.
func New(cfg *config.Config) *Store {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}

	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &Store{
		client: redis.NewClient(opts),
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

func profileKey(userID string) string          { return fmt.Sprintf("user:%s:profile", userID) }
func optimizedProfileKey(userID string) string { return fmt.Sprintf("user:%s:profile:optimized", userID) }
func roadmapKey(userID string) string          { return fmt.Sprintf("user:%s:roadmap", userID) }
func statsKey(userID string) string            { return fmt.Sprintf("user:%s:stats", userID) }

// SaveProfile stores the user's base profile document.
func (s *Store) SaveProfile(ctx context.Context, userID string, profile map[string]interface{}) error {
	return s.setJSON(ctx, profileKey(userID), profile)
}

// GetProfile loads the user's base profile document.
func (s *Store) GetProfile(ctx context.Context, userID string) (map[string]interface{}, error) {
	return s.getJSON(ctx, profileKey(userID))
}

// MergeProfile applies a partial update over the stored profile. Missing
// profile starts from an empty document.
func (s *Store) MergeProfile(ctx context.Context, userID string, updates map[string]interface{}) (map[string]interface{}, error) {
	profile, err := s.GetProfile(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		profile = make(map[string]interface{})
	} else if err != nil {
		return nil, err
	}

	for k, v := range updates {
		profile[k] = v
	}
	profile["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.SaveProfile(ctx, userID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveOptimizedProfile stores the optimized variant alongside the base
// profile.
func (s *Store) SaveOptimizedProfile(ctx context.Context, userID string, profile map[string]interface{}) error {
	return s.setJSON(ctx, optimizedProfileKey(userID), profile)
}

// GetOptimizedProfile loads the optimized profile variant.
func (s *Store) GetOptimizedProfile(ctx context.Context, userID string) (map[string]interface{}, error) {
	return s.getJSON(ctx, optimizedProfileKey(userID))
}

// SaveRoadmap stores a roadmap document. A user keeps exactly one roadmap:
// the previous document is deleted before the new one is written.
func (s *Store) SaveRoadmap(ctx context.Context, userID string, roadmap map[string]interface{}) error {
	key := roadmapKey(userID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear previous roadmap: %w", err)
	}
	return s.setJSON(ctx, key, roadmap)
}

// GetRoadmap loads the user's current roadmap.
func (s *Store) GetRoadmap(ctx context.Context, userID string) (map[string]interface{}, error) {
	return s.getJSON(ctx, roadmapKey(userID))
}

// UpdateTopicStatus flips the completion flag of one topic inside the stored
// roadmap, addressed by phase title and topic name.
func (s *Store) UpdateTopicStatus(ctx context.Context, userID, phaseTitle, topicName string, completed bool) error {
	roadmap, err := s.GetRoadmap(ctx, userID)
	if err != nil {
		return err
	}

	phases, ok := roadmap["detailed_roadmap"].([]interface{})
	if !ok {
		return fmt.Errorf("roadmap has no phases")
	}

	for _, p := range phases {
		phase, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		if title, _ := phase["phase_title"].(string); title != phaseTitle {
			continue
		}
		topics, _ := phase["topics"].([]interface{})
		for _, t := range topics {
			topic, ok := t.(map[string]interface{})
			if !ok {
				continue
			}
			if name, _ := topic["name"].(string); name == topicName {
				topic["is_completed"] = completed
				return s.setJSON(ctx, roadmapKey(userID), roadmap)
			}
		}
		return fmt.Errorf("topic %q not found in phase %q", topicName, phaseTitle)
	}

	return fmt.Errorf("phase %q not found in roadmap", phaseTitle)
}

// IncrementStat atomically bumps one of the per-user counters.
func (s *Store) IncrementStat(ctx context.Context, userID, stat string) error {
	if err := s.client.HIncrBy(ctx, statsKey(userID), stat, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment stat %s: %w", stat, err)
	}
	return nil
}

// GetStats returns all counters for the user. Counters never written read
// as zero.
func (s *Store) GetStats(ctx context.Context, userID string) (map[string]int64, error) {
	raw, err := s.client.HGetAll(ctx, statsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	stats := map[string]int64{
		StatRoadmapsGenerated: 0,
		StatResumesOptimized:  0,
		StatAssessmentsTaken:  0,
		StatJobsMatched:       0,
	}
	for name, value := range raw {
		var n int64
		fmt.Sscanf(value, "%d", &n)
		stats[name] = n
	}
	return stats, nil
}

// DeleteProfile removes the user's base and optimized profiles.
func (s *Store) DeleteProfile(ctx context.Context, userID string) error {
	return s.client.Del(ctx, profileKey(userID), optimizedProfileKey(userID)).Err()
}

func (s *Store) setJSON(ctx context.Context, key string, doc map[string]interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}

func (s *Store) getJSON(ctx context.Context, key string) (map[string]interface{}, error) {
	data, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}
	return doc, nil
}
