package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"care-companion/internal/carerecord/repository"
	"care-companion/internal/carerecord/repository/sqlite"
	"care-companion/internal/model"
	pkgLog "care-companion/pkg/log"
)

func newRepo(t *testing.T) *sqlite.Repo {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := sqlite.New(context.Background(), db, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("failed to create repo: %v", err)
	}
	return repo
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	t.Run("Missing Profile", func(t *testing.T) {
		_, err := repo.GetProfile(ctx, "nobody")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Upsert Then Get", func(t *testing.T) {
		p := model.CareProfile{
			UserID:     "user-1",
			Name:       "Maria Lopez",
			Age:        78,
			Conditions: []string{"hypertension"},
			Allergies:  []string{"penicillin"},
			AIMode:     model.AIModeHybrid,
		}
		if err := repo.UpsertProfile(ctx, p); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		got, err := repo.GetProfile(ctx, "user-1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Name != "Maria Lopez" || got.Age != 78 || got.AIMode != model.AIModeHybrid {
			t.Errorf("got %+v", got)
		}
		if len(got.Conditions) != 1 || got.Conditions[0] != "hypertension" {
			t.Errorf("conditions: %v", got.Conditions)
		}
	})

	t.Run("Upsert Replaces", func(t *testing.T) {
		p := model.CareProfile{UserID: "user-1", Name: "Maria L.", Age: 79, AIMode: model.AIModeCloud}
		if err := repo.UpsertProfile(ctx, p); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		got, _ := repo.GetProfile(ctx, "user-1")
		if got.Age != 79 || got.AIMode != model.AIModeCloud {
			t.Errorf("got %+v", got)
		}
	})
}

func TestMedications(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	now := time.Now().UTC().Truncate(time.Second)

	med := model.Medication{
		ID:        "med-1",
		UserID:    "user-1",
		Name:      "Lisinopril",
		Dosage:    "5 mg",
		Times:     []string{"08:00", "20:00"},
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.CreateMedication(ctx, med); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	inactive := med
	inactive.ID = "med-2"
	inactive.Name = "Old med"
	inactive.Active = false
	if err := repo.CreateMedication(ctx, inactive); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("List All", func(t *testing.T) {
		meds, err := repo.ListMedications(ctx, "user-1", repository.MedicationListOptions{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(meds) != 2 {
			t.Errorf("expected 2 medications, got %d", len(meds))
		}
	})

	t.Run("List Active Only", func(t *testing.T) {
		meds, err := repo.ListMedications(ctx, "user-1", repository.MedicationListOptions{ActiveOnly: true})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(meds) != 1 || meds[0].Name != "Lisinopril" {
			t.Errorf("got %+v", meds)
		}
		if len(meds[0].Times) != 2 || meds[0].Times[0] != "08:00" {
			t.Errorf("times: %v", meds[0].Times)
		}
	})

	t.Run("User Scoping", func(t *testing.T) {
		meds, _ := repo.ListMedications(ctx, "someone-else", repository.MedicationListOptions{})
		if len(meds) != 0 {
			t.Errorf("expected no medications for other user, got %d", len(meds))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := repo.DeleteMedication(ctx, "user-1", "med-2"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if err := repo.DeleteMedication(ctx, "user-1", "med-2"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound on double delete, got %v", err)
		}
	})
}

func TestVitals(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	readings := []model.VitalReading{
		{ID: "v-1", UserID: "user-1", Type: model.VitalBloodPressure, Value: 130, Secondary: 85, Unit: "mmHg", RecordedAt: base},
		{ID: "v-2", UserID: "user-1", Type: model.VitalBloodPressure, Value: 128, Secondary: 82, Unit: "mmHg", RecordedAt: base.Add(24 * time.Hour)},
		{ID: "v-3", UserID: "user-1", Type: model.VitalHeartRate, Value: 72, Unit: "bpm", RecordedAt: base.Add(48 * time.Hour)},
	}
	for _, v := range readings {
		if err := repo.CreateVital(ctx, v); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	t.Run("Filter By Type", func(t *testing.T) {
		got, err := repo.ListVitals(ctx, "user-1", repository.VitalListOptions{Type: model.VitalBloodPressure})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 blood pressure readings, got %d", len(got))
		}
	})

	t.Run("Filter By Time Range", func(t *testing.T) {
		got, err := repo.ListVitals(ctx, "user-1", repository.VitalListOptions{
			From: base.Add(12 * time.Hour),
		})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 readings after cutoff, got %d", len(got))
		}
	})

	t.Run("Newest First", func(t *testing.T) {
		got, err := repo.ListVitals(ctx, "user-1", repository.VitalListOptions{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 3 || got[0].ID != "v-3" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("Limit", func(t *testing.T) {
		got, _ := repo.ListVitals(ctx, "user-1", repository.VitalListOptions{Limit: 1})
		if len(got) != 1 {
			t.Errorf("expected 1 reading, got %d", len(got))
		}
	})
}

func TestVitalsMixedOffsets(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	cest := time.FixedZone("CEST", 2*60*60)

	// Same day, both readings around the same morning: the first is
	// recorded at 10:00+02:00 (08:00 UTC), the second at 09:00 UTC. A
	// lexical comparison of the raw offsets would order them wrongly.
	older := model.VitalReading{
		ID: "v-older", UserID: "user-1", Type: model.VitalGlucose, Value: 98, Unit: "mg/dL",
		RecordedAt: time.Date(2026, 7, 1, 10, 0, 0, 0, cest),
	}
	newer := model.VitalReading{
		ID: "v-newer", UserID: "user-1", Type: model.VitalGlucose, Value: 101, Unit: "mg/dL",
		RecordedAt: time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
	}
	for _, v := range []model.VitalReading{older, newer} {
		if err := repo.CreateVital(ctx, v); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	t.Run("Newest First Across Offsets", func(t *testing.T) {
		got, err := repo.ListVitals(ctx, "user-1", repository.VitalListOptions{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != "v-newer" {
			t.Errorf("expected v-newer first, got %+v", got)
		}
	})

	t.Run("From Filter Compares Instants", func(t *testing.T) {
		// 08:30 UTC, expressed in the offset zone to exercise bound
		// normalization too. Only the 09:00 UTC reading is after it.
		got, err := repo.ListVitals(ctx, "user-1", repository.VitalListOptions{
			From: time.Date(2026, 7, 1, 10, 30, 0, 0, cest),
		})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "v-newer" {
			t.Errorf("expected only v-newer, got %+v", got)
		}
	})

	t.Run("To Filter Compares Instants", func(t *testing.T) {
		got, err := repo.ListVitals(ctx, "user-1", repository.VitalListOptions{
			To: time.Date(2026, 7, 1, 8, 30, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "v-older" {
			t.Errorf("expected only v-older, got %+v", got)
		}
	})
}

func TestAppointments(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	now := time.Now().UTC().Truncate(time.Second)

	a := model.Appointment{
		ID:        "appt-1",
		UserID:    "user-1",
		Title:     "Cardiology check-up",
		Location:  "Clinic 4B",
		Doctor:    "Dr. Ruiz",
		StartsAt:  now.Add(48 * time.Hour),
		CreatedAt: now,
	}
	if err := repo.CreateAppointment(ctx, a); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("Get", func(t *testing.T) {
		got, err := repo.GetAppointment(ctx, "user-1", "appt-1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Title != "Cardiology check-up" || !got.StartsAt.Equal(a.StartsAt) {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("List", func(t *testing.T) {
		got, err := repo.ListAppointments(ctx, "user-1")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 appointment, got %d", len(got))
		}
	})

	t.Run("Delete Then Not Found", func(t *testing.T) {
		if err := repo.DeleteAppointment(ctx, "user-1", "appt-1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		_, err := repo.GetAppointment(ctx, "user-1", "appt-1")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
