package store

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/toygarage/server/internal/domain"
	"github.com/toygarage/server/internal/placeholder"
)

var sampleTitles = [][2]string{
	{"Neo Turbo Coupe", "Chrome-heavy realism bleeding into manga ink"},
	{"Desert Rally Mini", "Dust trails with cel-shaded highlights"},
	{"Night Runner", "Neon reflections and comic halftones"},
	{"Vintage Skyline", "Film grain realism to bold line art"},
}

// SeedDemo fills an empty gallery with sample completed renders so the
// carousel has content on a fresh boot. Seeded entries count toward the
// global lifetime quota, same as user generations.
func (s *Store) SeedDemo(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.gallery) > 0 {
		return
	}
	for i, sample := range sampleTitles {
		url := placeholder.Image(sample[0], sample[1], i)
		gen := &domain.Generation{
			ID:         uuid.NewString(),
			InputURL:   url,
			OutputURL:  url,
			PromptUsed: sample[1],
			Status:     domain.StatusCompleted,
			Safe:       true,
			Likes:      rand.Intn(20),
			CreatedAt:  now.Add(-time.Duration(i+1) * time.Hour),
			Message:    "サンプル生成（モック）。",
		}
		s.gallery = append(s.gallery, gen)
		s.byID[gen.ID] = gen
		s.total++
	}
}
