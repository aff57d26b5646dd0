package translation

import (
	"fmt"
	"time"
)

// CacheEntry maps to the diagnosis_translations table. An entry is a snapshot:
// OriginalText is the diagnosis as it was when the translation was made, not a
// live reference, which is what makes staleness detectable.
type CacheEntry struct {
	ID             string    `db:"id" json:"id"`
	PatientID      int64     `db:"patient_id" json:"patientId"`
	Language       string    `db:"language" json:"language"`
	OriginalText   string    `db:"original_text" json:"originalText"`
	TranslatedText string    `db:"translated_text" json:"translatedText"`
	UpdatedAt      time.Time `db:"updated_at" json:"timestamp"`
}

// CacheKey derives the deterministic entry id for a (patient, language) pair.
func CacheKey(patientID int64, targetLang string) string {
	return fmt.Sprintf("%d_%s", patientID, targetLang)
}

// Fresh reports whether the entry can be served without re-translation:
// it must hold a translation and its snapshot must equal the current
// diagnosis text byte for byte.
func (e *CacheEntry) Fresh(currentText string) bool {
	return e.TranslatedText != "" && e.OriginalText == currentText
}

// Result is the resolver's answer for one (patient, language) request.
type Result struct {
	PatientID      int64  `json:"patientId"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguageCode"`
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	FromCache      bool   `json:"fromCache"`
}
