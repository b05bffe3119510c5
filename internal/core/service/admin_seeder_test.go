package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/saricare/booking-api/internal/core/domain"
)

const seedEmail = "admin@saricare.com"

func TestAdminSeeder_CreatesAdmin(t *testing.T) {
	repo := newStubUserRepo()
	seeder := NewAdminSeeder(repo, seedEmail, "s3cret!", discardLogger)

	if err := seeder.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if !seeder.Seeded() {
		t.Fatal("expected seeded flag to be set")
	}

	u, err := repo.FindByEmail(context.Background(), seedEmail)
	if err != nil {
		t.Fatalf("admin not stored: %v", err)
	}
	if u.Role != domain.RoleAdmin || u.Name != "Admin" || u.Mobile != "0000000000" || u.Gender != domain.GenderOther {
		t.Fatalf("unexpected admin record: %+v", u)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret!")) != nil {
		t.Fatal("admin password not hashed with the configured password")
	}
}

func TestAdminSeeder_ExistingAdminUntouched(t *testing.T) {
	repo := newStubUserRepo()
	existing, _ := repo.Create(context.Background(), &domain.User{Email: seedEmail, Name: "Owner", Role: domain.RoleAdmin})

	seeder := NewAdminSeeder(repo, seedEmail, "pw", discardLogger)
	if err := seeder.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	u, _ := repo.FindByEmail(context.Background(), seedEmail)
	if u.ID != existing.ID || u.Name != "Owner" {
		t.Fatalf("existing admin was modified: %+v", u)
	}
	if n := repo.countByEmail(seedEmail); n != 1 {
		t.Fatalf("expected 1 admin, got %d", n)
	}
}

func TestAdminSeeder_FlagShortCircuits(t *testing.T) {
	repo := newStubUserRepo()
	seeder := NewAdminSeeder(repo, seedEmail, "pw", discardLogger)
	_ = seeder.Ensure(context.Background())

	repo.findErr = errors.New("store must not be called again")
	if err := seeder.Ensure(context.Background()); err != nil {
		t.Fatalf("second Ensure should short-circuit, got %v", err)
	}
}

func TestAdminSeeder_ConcurrentColdStart(t *testing.T) {
	repo := newStubUserRepo()

	// Both seeders pass the existence check before either inserts, which is
	// exactly the race two cold processes run into.
	var ready sync.WaitGroup
	ready.Add(2)
	release := make(chan struct{})
	repo.beforeCreate = func() {
		ready.Done()
		<-release
	}
	go func() {
		ready.Wait()
		close(release)
	}()

	seeders := []*AdminSeeder{
		NewAdminSeeder(repo, seedEmail, "pw", discardLogger),
		NewAdminSeeder(repo, seedEmail, "pw", discardLogger),
	}
	errs := make([]error, len(seeders))
	var wg sync.WaitGroup
	for i, s := range seeders {
		wg.Add(1)
		go func(i int, s *AdminSeeder) {
			defer wg.Done()
			errs[i] = s.Ensure(context.Background())
		}(i, s)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("seeder %d returned error: %v", i, err)
		}
		if !seeders[i].Seeded() {
			t.Fatalf("seeder %d not marked seeded", i)
		}
	}
	if n := repo.countByEmail(seedEmail); n != 1 {
		t.Fatalf("expected exactly 1 admin, got %d", n)
	}
}

func TestAdminSeeder_StoreErrorKeepsFlagUnset(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection refused")
	seeder := NewAdminSeeder(repo, seedEmail, "pw", discardLogger)

	if err := seeder.Ensure(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if seeder.Seeded() {
		t.Fatal("flag must stay unset after a failed attempt")
	}

	repo.findErr = nil
	if err := seeder.Ensure(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !seeder.Seeded() {
		t.Fatal("expected flag after successful retry")
	}
}

func TestAdminSeeder_CreateErrorSurfaces(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New("write concern failed")
	seeder := NewAdminSeeder(repo, seedEmail, "pw", discardLogger)

	if err := seeder.Ensure(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if seeder.Seeded() {
		t.Fatal("flag must stay unset")
	}
}

func TestAdminSeeder_RequiresCredentials(t *testing.T) {
	seeder := NewAdminSeeder(newStubUserRepo(), seedEmail, "", discardLogger)
	if err := seeder.Ensure(context.Background()); err == nil {
		t.Fatal("expected error for missing password")
	}
}
