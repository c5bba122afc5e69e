package generation

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/toygarage/server/internal/domain"
	"github.com/toygarage/server/internal/infra"
	"github.com/toygarage/server/internal/placeholder"
	"github.com/toygarage/server/internal/providers/image"
	"github.com/toygarage/server/internal/storage"
	"github.com/toygarage/server/internal/store"
)

// BlobStore is the slice of the storage contract the registrar needs.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Registrar orchestrates one generation attempt end to end: validation, rate
// check, the provider call, record updates, counters and the audit entry.
type Registrar struct {
	store    *store.Store
	provider image.Generator
	blobs    BlobStore
	timeout  time.Duration
	logger   infra.Logger
	now      func() time.Time
}

// Request is one user-submitted generation.
type Request struct {
	UserID         string
	Image          string // data URI, or a URL referencing an already-uploaded photo
	PromptOverride string
	Message        string
	Locale         string
	RequestID      string
}

func NewRegistrar(s *store.Store, provider image.Generator, blobs BlobStore, timeout time.Duration, logger infra.Logger) *Registrar {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Registrar{
		store:    s,
		provider: provider,
		blobs:    blobs,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// Register runs one generation attempt. Validation and rate-limit failures
// return before anything is recorded. Admission is a single atomic step in
// the store (quota check, record creation and counter bumps under one lock),
// so concurrent requests cannot overshoot a quota by all passing the check
// before any of them is counted. A provider failure is not an error to the
// caller: the record is finalized with a placeholder output and error
// status, and the failure text lands on the record and in the audit log.
func (r *Registrar) Register(ctx context.Context, req Request) (domain.Generation, error) {
	if strings.TrimSpace(req.Image) == "" {
		return domain.Generation{}, domain.ErrMissingImage
	}

	now := r.now()
	gen, dec := r.store.Reserve(req.UserID, req.Image, strings.TrimSpace(req.PromptOverride), req.Message, now)
	if !dec.Allowed {
		return domain.Generation{}, &domain.RateLimitError{Reason: dec.Message(req.Locale)}
	}

	mime, data, inputURL := r.persistInput(ctx, req)
	if inputURL != req.Image {
		if updated, err := r.store.UpdateInput(gen.ID, inputURL); err == nil {
			gen = updated
		}
	}

	final := r.produceOutput(ctx, gen, gen.PromptUsed, mime, data, req)

	r.store.AppendLog(domain.LogEntry{
		GenerationID: final.ID,
		Status:       final.Status,
		Message:      logMessage(final),
		CreatedAt:    r.now().UTC(),
		CookieID:     req.UserID,
	})
	return final, nil
}

// persistInput decodes a data-URI upload and moves it into blob storage.
// When the upload fails (or the image is already a URL) the original string
// is kept as the input location; losing the copy degrades the gallery, not
// the request.
func (r *Registrar) persistInput(ctx context.Context, req Request) (mime string, data []byte, inputURL string) {
	inputURL = req.Image
	mime, data, ok := parseDataURI(req.Image)
	if !ok {
		return "", nil, inputURL
	}
	key := storage.GenerateKey(req.UserID, "generations", extForMIME(mime))
	url, err := r.blobs.Upload(ctx, key, data, mime)
	if err != nil {
		r.logger.Warn().Err(err).Str("request_id", req.RequestID).Msg("registrar: input upload failed, keeping data URI")
		return mime, data, inputURL
	}
	return mime, data, url
}

// produceOutput calls the provider under a bounded timeout and finalizes the
// record either way. Timeouts count as provider failures.
func (r *Registrar) produceOutput(ctx context.Context, gen domain.Generation, prompt, mime string, data []byte, req Request) domain.Generation {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.provider.Generate(callCtx, image.GenerateRequest{
		Prompt:    prompt,
		ImageData: data,
		MIME:      mime,
		RequestID: req.RequestID,
	})
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("request_id", req.RequestID).
			Str("generation_id", gen.ID).
			Msg("registrar: provider call failed, falling back to placeholder")
		fallback := placeholder.Image("Manga Render", "generation failed", r.store.Total())
		final, uerr := r.store.UpdateOutput(gen.ID, fallback, domain.StatusError, err.Error())
		if uerr != nil {
			return gen
		}
		return final
	}

	outputURL := r.persistOutput(ctx, gen.ID, req.UserID, result)
	final, uerr := r.store.UpdateOutput(gen.ID, outputURL, domain.StatusCompleted, "")
	if uerr != nil {
		return gen
	}
	return final
}

// persistOutput writes the generated bytes to blob storage, degrading to an
// inline data URI when the write fails.
func (r *Registrar) persistOutput(ctx context.Context, genID, userID string, result *image.Result) string {
	key := storage.GenerateKey(userID, "outputs", extForMIME(result.Format))
	url, err := r.blobs.Upload(ctx, key, result.Data, result.Format)
	if err != nil {
		r.logger.Warn().Err(err).Str("generation_id", genID).Msg("registrar: output upload failed, inlining result")
		return fmt.Sprintf("data:%s;base64,%s", result.Format, base64.StdEncoding.EncodeToString(result.Data))
	}
	return url
}

func logMessage(gen domain.Generation) string {
	if gen.Status == domain.StatusError {
		return "generation failed: " + gen.Error
	}
	return "generated via Gemini"
}
