package storage

import (
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	id, err := st.Save(Report{
		TracePath: "/tmp/run1/trace.csv",
		Agents:    4,
		Ticks:     30,
		Score:     85,
		HasScore:  true,
		Outputs:   []string{"out.png", "out.gif"},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	r, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if r.Agents != 4 || r.Ticks != 30 {
		t.Errorf("bad report: %+v", r)
	}
	if len(r.Outputs) != 2 {
		t.Errorf("expected 2 outputs, got %v", r.Outputs)
	}
}

func TestListNewestFirst(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	older := time.Now().Add(-time.Hour)
	if _, err := st.Save(Report{TracePath: "a.csv", Timestamp: older}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(Report{TracePath: "b.csv"}); err != nil {
		t.Fatal(err)
	}

	reports, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].TracePath != "b.csv" {
		t.Errorf("expected newest first, got %s", reports[0].TracePath)
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	reports, err := st.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reports != nil {
		t.Errorf("expected no reports, got %v", reports)
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing report")
	}
}
