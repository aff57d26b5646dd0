package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/patientd/patientd/internal/domain/patient"
	"github.com/patientd/patientd/internal/platform/translate"
)

// ErrNoDiagnosis is returned when the patient exists but has no diagnosis
// text to translate.
var ErrNoDiagnosis = errors.New("no diagnosis information found for this patient")

// PatientReader is the slice of the patient repository the resolver needs.
type PatientReader interface {
	GetByID(ctx context.Context, id int64) (*patient.Patient, error)
}

// Service resolves translated diagnosis text for a patient, serving from the
// persisted cache when the snapshot still matches the live diagnosis and
// calling the provider otherwise.
type Service struct {
	patients   PatientReader
	cache      Repository
	translator translate.Translator
	sourceLang string
	logger     zerolog.Logger
	now        func() time.Time
}

func NewService(patients PatientReader, cache Repository, translator translate.Translator, sourceLang string, logger zerolog.Logger) *Service {
	return &Service{
		patients:   patients,
		cache:      cache,
		translator: translator,
		sourceLang: sourceLang,
		logger:     logger,
		now:        time.Now,
	}
}

// Resolve produces the translated diagnosis for (patientID, targetLang).
//
// Side effects: at most one cache write, and only after a successful provider
// call. Concurrent resolutions for the same key are not serialized; both may
// translate and both may write, last write wins.
func (s *Service) Resolve(ctx context.Context, patientID int64, targetLang string) (*Result, error) {
	if patientID <= 0 {
		return nil, fmt.Errorf("patient id must be positive, got %d", patientID)
	}
	if targetLang == "" {
		return nil, fmt.Errorf("target language code must not be empty")
	}

	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	diagnosis, ok := p.Diagnosis()
	if !ok {
		return nil, ErrNoDiagnosis
	}

	key := CacheKey(patientID, targetLang)

	entry, err := s.cache.Get(ctx, key)
	switch {
	case err == nil && entry.Fresh(diagnosis):
		s.logger.Debug().Str("cache_key", key).Msg("serving cached translation")
		return &Result{
			PatientID:      patientID,
			SourceLanguage: s.sourceLang,
			TargetLanguage: targetLang,
			OriginalText:   diagnosis,
			TranslatedText: entry.TranslatedText,
			FromCache:      true,
		}, nil
	case err == nil:
		s.logger.Debug().Str("cache_key", key).Msg("diagnosis text changed, translation needs updating")
	case errors.Is(err, ErrEntryNotFound):
		// plain miss
	default:
		return nil, fmt.Errorf("read translation cache: %w", err)
	}

	translated, err := s.translator.Translate(ctx, diagnosis, s.sourceLang, targetLang)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, &CacheEntry{
		ID:             key,
		PatientID:      patientID,
		Language:       targetLang,
		OriginalText:   diagnosis,
		TranslatedText: translated,
		UpdatedAt:      s.now(),
	}); err != nil {
		return nil, fmt.Errorf("write translation cache: %w", err)
	}

	return &Result{
		PatientID:      patientID,
		SourceLanguage: s.sourceLang,
		TargetLanguage: targetLang,
		OriginalText:   diagnosis,
		TranslatedText: translated,
		FromCache:      false,
	}, nil
}
