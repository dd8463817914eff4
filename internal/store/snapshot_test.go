package store

import (
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	sn, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("OpenSnapshot: %v", err)
	}

	// Fresh database: nothing to load yet
	if _, ok, err := sn.Load(); err != nil || ok {
		t.Fatalf("Load on empty db = ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	seed := DefaultSeed()
	if err := sn.Save(New(seed)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := sn.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen and verify everything survived
	sn, err = OpenSnapshot(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = sn.Close() }()

	loaded, ok, err := sn.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load reported no snapshot after Save")
	}

	if loaded.Profile != seed.Profile {
		t.Errorf("profile = %+v, want %+v", loaded.Profile, seed.Profile)
	}
	if len(loaded.Accounts) != len(seed.Accounts) {
		t.Fatalf("accounts len = %d, want %d", len(loaded.Accounts), len(seed.Accounts))
	}
	for i, a := range loaded.Accounts {
		if a != seed.Accounts[i] {
			t.Errorf("accounts[%d] = %+v, want %+v", i, a, seed.Accounts[i])
		}
	}
	if len(loaded.Payments) != len(seed.Payments) {
		t.Fatalf("payments len = %d, want %d", len(loaded.Payments), len(seed.Payments))
	}
	for i, p := range loaded.Payments {
		want := seed.Payments[i]
		if p.AccountName != want.AccountName || p.Amount != want.Amount ||
			p.IsPaid != want.IsPaid || p.IsLate != want.IsLate ||
			!p.DueDate.Equal(want.DueDate) || !p.PaymentDate.Equal(want.PaymentDate) {
			t.Errorf("payments[%d] = %+v, want %+v", i, p, want)
		}
	}
	if len(loaded.Goals) != len(seed.Goals) {
		t.Fatalf("goals len = %d, want %d", len(loaded.Goals), len(seed.Goals))
	}
	for i, g := range loaded.Goals {
		want := seed.Goals[i]
		if g.ID != want.ID || g.Name != want.Name || g.Category != want.Category ||
			g.CurrentAmount != want.CurrentAmount || g.TargetAmount != want.TargetAmount ||
			!g.Deadline.Equal(want.Deadline) {
			t.Errorf("goals[%d] = %+v, want %+v", i, g, want)
		}
	}
	if len(loaded.Reports) != len(seed.Reports) {
		t.Fatalf("reports len = %d, want %d", len(loaded.Reports), len(seed.Reports))
	}
	for i, r := range loaded.Reports {
		if r != seed.Reports[i] {
			t.Errorf("reports[%d] = %+v, want %+v", i, r, seed.Reports[i])
		}
	}
}

func TestSnapshotSaveReplacesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	sn, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("OpenSnapshot: %v", err)
	}
	defer func() { _ = sn.Close() }()

	if err := sn.Save(New(DefaultSeed())); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	s := New(DefaultSeed())
	s.DeleteGoal("1")
	if err := sn.Save(s); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, ok, err := sn.Load()
	if err != nil || !ok {
		t.Fatalf("Load = ok=%v err=%v", ok, err)
	}
	if len(loaded.Goals) != 1 {
		t.Fatalf("goals len after replace = %d, want 1", len(loaded.Goals))
	}
	if loaded.Goals[0].ID != "2" {
		t.Fatalf("remaining goal id = %q, want 2", loaded.Goals[0].ID)
	}
}
