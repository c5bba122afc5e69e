package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/toygarage/server/internal/domain"
)

const (
	defaultPromptTemplate = "Take the uploaded miniature car photo, cleanly cut out the car, render it in hyper-realistic detail, then stylize into manga/anime with crisp lines and subtle halftones. Preserve lighting and reflections."
	defaultNoticeMessage  = "生成コンテンツは全ユーザーに公開されます。"

	defaultPerUserDailyQuota   = 1
	defaultGlobalLifetimeQuota = 50
)

// Store is the single in-memory state shared by every request handler. One
// mutex guards all of it, so each read-modify-write runs without
// interleaving; callers receive copies, never interior pointers.
//
// Nothing is ever evicted. Unbounded growth of the gallery and the log is an
// accepted property of the in-memory design, not something to fix here.
type Store struct {
	mu       sync.Mutex
	settings domain.Settings
	gallery  []*domain.Generation // newest first
	byID     map[string]*domain.Generation
	users    map[string]*domain.User
	logs     []domain.LogEntry // newest first
	total    int               // generations ever recorded, seed entries included
}

// New returns an empty store with default settings.
func New() *Store {
	return &Store{
		settings: domain.Settings{
			PromptTemplate:      defaultPromptTemplate,
			PerUserDailyQuota:   defaultPerUserDailyQuota,
			GlobalLifetimeQuota: defaultGlobalLifetimeQuota,
			NoticeMessage:       defaultNoticeMessage,
		},
		byID:  make(map[string]*domain.Generation),
		users: make(map[string]*domain.User),
	}
}

// DayKey reduces a timestamp to the UTC calendar-day key used for daily
// quota accounting. Quotas reset when the key changes, not 24h after the
// last generation.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Settings returns the current settings singleton.
func (s *Store) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings merges the patch into the singleton. Quota fields are
// clamped to a minimum of 1; text fields are accepted unfiltered.
func (s *Store) UpdateSettings(patch domain.SettingsPatch) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.PromptTemplate != nil {
		s.settings.PromptTemplate = *patch.PromptTemplate
	}
	if patch.NoticeMessage != nil {
		s.settings.NoticeMessage = *patch.NoticeMessage
	}
	if patch.PerUserDailyQuota != nil {
		s.settings.PerUserDailyQuota = clampQuota(*patch.PerUserDailyQuota)
	}
	if patch.GlobalLifetimeQuota != nil {
		s.settings.GlobalLifetimeQuota = clampQuota(*patch.GlobalLifetimeQuota)
	}
	return s.settings
}

func clampQuota(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// SaveGeneration creates a new record in processing status and inserts it at
// the front of the gallery. The record becomes visible to concurrent readers
// immediately; they must treat any non-completed status as not displayable.
func (s *Store) SaveGeneration(userID, inputURL, prompt, message string, now time.Time) domain.Generation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveGenerationLocked(userID, inputURL, prompt, message, now)
}

func (s *Store) saveGenerationLocked(userID, inputURL, prompt, message string, now time.Time) domain.Generation {
	if strings.TrimSpace(prompt) == "" {
		prompt = s.settings.PromptTemplate
	}
	gen := &domain.Generation{
		ID:         uuid.NewString(),
		UserID:     userID,
		InputURL:   inputURL,
		PromptUsed: prompt,
		Status:     domain.StatusProcessing,
		CreatedAt:  now,
		Message:    message,
	}
	s.gallery = append([]*domain.Generation{gen}, s.gallery...)
	s.byID[gen.ID] = gen
	return *gen
}

// Reserve is the atomic admission step for one generation attempt: the quota
// check, the record creation and the counter bumps all happen under a single
// lock acquisition. Concurrent callers therefore cannot both pass the check
// before either one consumes a slot. On rejection nothing is created and the
// decision carries the reason; on success the returned record is in
// processing status and the caller's counters are already charged, whatever
// the later provider outcome.
func (s *Store) Reserve(userID, inputURL, prompt, message string, now time.Time) (domain.Generation, Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dec := s.checkRateLimitLocked(userID, now)
	if !dec.Allowed {
		return domain.Generation{}, dec
	}
	gen := s.saveGenerationLocked(userID, inputURL, prompt, message, now)
	s.recordAttemptLocked(userID, now)
	return gen, dec
}

// UpdateInput replaces the input location on a record that is still in
// flight. Terminal records are left untouched.
func (s *Store) UpdateInput(id, inputURL string) (domain.Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen, ok := s.byID[id]
	if !ok {
		return domain.Generation{}, domain.ErrNotFound
	}
	if !gen.Status.Terminal() {
		gen.InputURL = inputURL
	}
	return *gen, nil
}

// UpdateOutput moves a record to its terminal status and sets the output
// location. Safe is true only for completed records. Records already in a
// terminal status are left untouched; transitions are forward-only.
func (s *Store) UpdateOutput(id, outputURL string, status domain.Status, errText string) (domain.Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen, ok := s.byID[id]
	if !ok {
		return domain.Generation{}, domain.ErrNotFound
	}
	if !gen.Status.Terminal() {
		gen.OutputURL = outputURL
		gen.Status = status
		gen.Safe = status == domain.StatusCompleted
		gen.Error = errText
	}
	return *gen, nil
}

// RecordAttempt bumps the caller's daily and lifetime counters plus the
// global total. It is called exactly once per registration that created a
// record, regardless of how the provider call ended.
func (s *Store) RecordAttempt(userID string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordAttemptLocked(userID, now)
}

func (s *Store) recordAttemptLocked(userID string, now time.Time) {
	today := DayKey(now)
	user := s.userLocked(userID)
	if user.LastGenerationDate == today {
		user.DailyCount++
	} else {
		user.DailyCount = 1
	}
	user.LastGenerationDate = today
	user.TotalGenerations++
	s.total++
}

// ToggleLike flips the (generation, user) like membership: one set insertion
// pairs with one increment, one removal with one decrement, floored at zero.
func (s *Store) ToggleLike(generationID, userID string) (domain.Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen, ok := s.byID[generationID]
	if !ok {
		return domain.Generation{}, domain.ErrNotFound
	}
	user := s.userLocked(userID)
	if _, liked := user.LikedGenerations[generationID]; liked {
		delete(user.LikedGenerations, generationID)
		if gen.Likes > 0 {
			gen.Likes--
		}
	} else {
		user.LikedGenerations[generationID] = struct{}{}
		gen.Likes++
	}
	return *gen, nil
}

// Gallery returns up to limit records, newest first.
func (s *Store) Gallery(limit int) []domain.Generation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.gallery) {
		limit = len(s.gallery)
	}
	items := make([]domain.Generation, limit)
	for i := 0; i < limit; i++ {
		items[i] = *s.gallery[i]
	}
	return items
}

// Get returns a single record by id.
func (s *Store) Get(id string) (domain.Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen, ok := s.byID[id]
	if !ok {
		return domain.Generation{}, domain.ErrNotFound
	}
	return *gen, nil
}

// AppendLog prepends one audit entry. The id and timestamp are assigned here
// when the caller leaves them zero.
func (s *Store) AppendLog(entry domain.LogEntry) domain.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.logs = append([]domain.LogEntry{entry}, s.logs...)
	return entry
}

// Logs returns up to limit audit entries, newest first.
func (s *Store) Logs(limit int) []domain.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.logs) {
		limit = len(s.logs)
	}
	items := make([]domain.LogEntry, limit)
	copy(items, s.logs[:limit])
	return items
}

// Total returns the number of generations ever recorded.
func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Summary aggregates counters for the admin dashboard.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Likes     int `json:"likes"`
	Users     int `json:"users"`
	Last24h   int `json:"last_24h"`
}

// Stats walks the gallery under the lock and returns aggregate counters.
func (s *Store) Stats(now time.Time) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{Total: s.total, Users: len(s.users)}
	cutoff := now.Add(-24 * time.Hour)
	for _, gen := range s.gallery {
		switch gen.Status {
		case domain.StatusCompleted:
			sum.Completed++
		case domain.StatusError:
			sum.Failed++
		}
		sum.Likes += gen.Likes
		if gen.CreatedAt.After(cutoff) {
			sum.Last24h++
		}
	}
	return sum
}

// userLocked returns the bookkeeping record for userID, creating it on first
// use. Callers must hold s.mu.
func (s *Store) userLocked(userID string) *domain.User {
	user, ok := s.users[userID]
	if !ok {
		user = &domain.User{
			ID:               userID,
			LikedGenerations: make(map[string]struct{}),
		}
		s.users[userID] = user
	}
	if user.LikedGenerations == nil {
		user.LikedGenerations = make(map[string]struct{})
	}
	return user
}
