// Package sandbox provides synthetic patient data for development and demo
// environments. Generation is reproducible: the same seed yields the same
// records.
package sandbox

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/patientd/patientd/internal/domain/patient"
)

// SeedConfig controls the volume and shape of generated data.
type SeedConfig struct {
	// PatientCount is the number of synthetic patients generated on top of
	// the fixed baseline records.
	PatientCount int
	Seed         int64
}

// DefaultSeedConfig returns a SeedConfig with sensible defaults.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{PatientCount: 20}
}

// BaselinePatients returns the fixed demo records every seeded environment
// starts with.
func BaselinePatients() []*patient.Patient {
	diag := func(s string) *string { return &s }
	return []*patient.Patient{
		{
			ID: 1, FirstName: "John", LastName: "Doe",
			DateOfBirth: "1980-05-15", Gender: "Male", LastVisitDate: "2024-02-15",
			DiagnosisDescription: diag("Hypertension, Type 2 Diabetes"),
		},
		{
			ID: 2, FirstName: "Alice", LastName: "Smith",
			DateOfBirth: "1992-11-23", Gender: "Female", LastVisitDate: "2024-03-10",
			DiagnosisDescription: diag("Asthma, Seasonal allergies"),
		},
		{
			ID: 3, FirstName: "James", LastName: "Wilson",
			DateOfBirth: "1965-08-30", Gender: "Male", LastVisitDate: "2024-01-20",
			DiagnosisDescription: diag("Coronary artery disease, Hyperlipidemia"),
		},
	}
}

var (
	firstNames = []string{"Emma", "Liam", "Olivia", "Noah", "Ava", "Lucas", "Mia", "Ethan", "Sofia", "Mason"}
	lastNames  = []string{"Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Martinez", "Lopez", "Taylor"}
	genders    = []string{"Male", "Female"}
	diagnoses  = []string{
		"Hypertension",
		"Type 2 Diabetes",
		"Asthma",
		"Chronic migraine",
		"Osteoarthritis",
		"Hypothyroidism",
		"Gastroesophageal reflux disease",
		"Generalized anxiety disorder",
	}
)

// Seeder writes demo patients through the patient repository.
type Seeder struct {
	repo patient.Repository
}

func NewSeeder(repo patient.Repository) *Seeder {
	return &Seeder{repo: repo}
}

// Seed inserts the baseline records plus cfg.PatientCount synthetic ones.
// Existing records at the same ids are overwritten. Returns the number of
// records written.
func (s *Seeder) Seed(ctx context.Context, cfg SeedConfig) (int, error) {
	count := 0
	for _, p := range BaselinePatients() {
		if err := s.repo.Put(ctx, p); err != nil {
			return count, fmt.Errorf("seed baseline patient %d: %w", p.ID, err)
		}
		count++
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	nextID := int64(len(BaselinePatients()) + 1)
	for i := 0; i < cfg.PatientCount; i++ {
		p := s.syntheticPatient(rng, nextID)
		if err := s.repo.Put(ctx, p); err != nil {
			return count, fmt.Errorf("seed synthetic patient %d: %w", p.ID, err)
		}
		nextID++
		count++
	}
	return count, nil
}

func (s *Seeder) syntheticPatient(rng *rand.Rand, id int64) *patient.Patient {
	p := &patient.Patient{
		ID:        id,
		FirstName: firstNames[rng.Intn(len(firstNames))],
		LastName:  lastNames[rng.Intn(len(lastNames))],
		DateOfBirth: fmt.Sprintf("%d-%02d-%02d",
			1940+rng.Intn(70), 1+rng.Intn(12), 1+rng.Intn(28)),
		Gender: genders[rng.Intn(len(genders))],
		LastVisitDate: fmt.Sprintf("2024-%02d-%02d",
			1+rng.Intn(6), 1+rng.Intn(28)),
	}
	// Roughly one in five synthetic patients has no diagnosis on file, so
	// the no-diagnosis path stays exercised in demo environments.
	if rng.Intn(5) != 0 {
		d := diagnoses[rng.Intn(len(diagnoses))]
		p.DiagnosisDescription = &d
	}
	return p
}
