package market

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/pathwise/internal/profile"
)

func TestDefaultDatasetLoads(t *testing.T) {
	src, err := NewDefaultSource()
	if err != nil {
		t.Fatalf("load default dataset: %v", err)
	}

	d, err := src.Snapshot(context.Background(), "Software Developer")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if d.ActiveJobs <= 0 {
		t.Errorf("active jobs = %d, want > 0", d.ActiveJobs)
	}
	if len(d.RequiredSkills) == 0 {
		t.Error("expected required skills")
	}
}

func TestSnapshotCaseInsensitive(t *testing.T) {
	src, err := NewDefaultSource()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"data analyst", "DATA ANALYST", "Data Analyst"} {
		d, err := src.Snapshot(context.Background(), name)
		if err != nil {
			t.Errorf("snapshot(%q): %v", name, err)
			continue
		}
		if d.Role != "Data Analyst" {
			t.Errorf("snapshot(%q).Role = %q", name, d.Role)
		}
	}
}

func TestSnapshotUnknownRole(t *testing.T) {
	src, err := NewDefaultSource()
	if err != nil {
		t.Fatal(err)
	}

	_, err = src.Snapshot(context.Background(), "Lion Tamer")
	if !errors.Is(err, ErrRoleUnknown) {
		t.Errorf("err = %v, want ErrRoleUnknown", err)
	}
}

func TestSnapshotReturnsCopy(t *testing.T) {
	src, err := NewDefaultSource()
	if err != nil {
		t.Fatal(err)
	}

	a, _ := src.Snapshot(context.Background(), "Data Analyst")
	a.ActiveJobs = -1
	a.RequiredSkills[0] = "mutated"

	b, _ := src.Snapshot(context.Background(), "Data Analyst")
	if b.ActiveJobs == -1 {
		t.Error("snapshot mutation leaked into the source")
	}
	if b.RequiredSkills[0] == "mutated" {
		t.Error("skills slice aliased between snapshots")
	}
}

func TestCandidateRolesFiltersForBeginners(t *testing.T) {
	raw := []byte(`{"roles": [
		{"role": "Open Role", "active_jobs": 100, "fresher_friendly": true},
		{"role": "Senior Role", "active_jobs": 100, "fresher_friendly": false}
	]}`)
	src, err := NewStaticSource(raw)
	if err != nil {
		t.Fatal(err)
	}

	beginner := &profile.StudentProfile{ExperienceLevel: profile.LevelBeginner}
	roles, err := src.CandidateRoles(context.Background(), beginner)
	if err != nil {
		t.Fatal(err)
	}
	if len(roles) != 1 || roles[0] != "Open Role" {
		t.Errorf("beginner pool = %v, want [Open Role]", roles)
	}

	advanced := &profile.StudentProfile{ExperienceLevel: profile.LevelAdvanced}
	roles, err = src.CandidateRoles(context.Background(), advanced)
	if err != nil {
		t.Fatal(err)
	}
	if len(roles) != 2 {
		t.Errorf("advanced pool = %v, want both roles", roles)
	}
}

func TestStaticSourceRejectsEmptyDataset(t *testing.T) {
	if _, err := NewStaticSource([]byte(`{"roles": []}`)); err == nil {
		t.Error("expected error for empty dataset")
	}
	if _, err := NewStaticSource([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed dataset")
	}
}
