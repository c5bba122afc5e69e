package domain

// User is the per-browser bookkeeping record, keyed by the cookie-carried
// identity token. It backs the daily quota and the like toggle.
type User struct {
	ID                 string
	DailyCount         int
	LastGenerationDate string // UTC day key, YYYY-MM-DD
	TotalGenerations   int
	LikedGenerations   map[string]struct{}
}
