package store

import (
	"fmt"
	"time"
)

// RejectReason identifies which quota rejected an attempt.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectGlobalLimit
	RejectDailyLimit
)

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed bool
	Reason  RejectReason
	Limit   int // the quota value that rejected the attempt
}

// Message renders the human-readable rejection text for the given locale.
// Allowed decisions render empty.
func (d Decision) Message(locale string) string {
	switch d.Reason {
	case RejectGlobalLimit:
		if locale == "ja" {
			return fmt.Sprintf("全体の生成上限（%d件）に達しました。管理画面で上限を調整してください。", d.Limit)
		}
		return fmt.Sprintf("The global generation limit (%d) has been reached. Raise it from the admin screen.", d.Limit)
	case RejectDailyLimit:
		if locale == "ja" {
			return fmt.Sprintf("本日はこれ以上生成できません（1日%d回）。", d.Limit)
		}
		return fmt.Sprintf("Daily generation limit reached (%d per day). Try again tomorrow.", d.Limit)
	}
	return ""
}

// CheckRateLimit is a pure decision: it reads the settings and counters but
// mutates nothing. The global lifetime quota is evaluated first, then the
// caller's same-day count. Day comparison is UTC calendar-date equality, not
// a sliding 24h window.
func (s *Store) CheckRateLimit(userID string, now time.Time) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkRateLimitLocked(userID, now)
}

func (s *Store) checkRateLimitLocked(userID string, now time.Time) Decision {
	if s.total >= s.settings.GlobalLifetimeQuota {
		return Decision{Reason: RejectGlobalLimit, Limit: s.settings.GlobalLifetimeQuota}
	}
	user, ok := s.users[userID]
	if ok && user.LastGenerationDate == DayKey(now) && user.DailyCount >= s.settings.PerUserDailyQuota {
		return Decision{Reason: RejectDailyLimit, Limit: s.settings.PerUserDailyQuota}
	}
	return Decision{Allowed: true}
}
