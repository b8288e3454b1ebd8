package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegisterAddsCollectors(t *testing.T) {
	m := New("strex_test_register")
	reg := prometheus.NewRegistry()
	if err := m.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"strex_test_register_compile_total",
		"strex_test_register_matches_total",
		"strex_test_register_match_duration_seconds",
	} {
		if !names[want] {
			t.Errorf("Gather() missing metric family %q, got %v", want, names)
		}
	}
}

func TestRegisterTwiceFails(t *testing.T) {
	m := New("strex_test_double")
	reg := prometheus.NewRegistry()
	if err := m.Register(reg); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := m.Register(reg); err == nil {
		t.Fatal("expected second Register against the same registry to fail")
	}
}

func TestObserveCompileCountsByResult(t *testing.T) {
	m := New("strex_test_compile_counts")
	reg := prometheus.NewRegistry()
	if err := m.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	m.ObserveCompile(nil)
	m.ObserveCompile(nil)
	m.ObserveCompile(errTest{})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	got := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "strex_test_compile_counts_compile_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "result" {
					got[l.GetValue()] = metric.GetCounter().GetValue()
				}
			}
		}
	}
	if got["ok"] != 2 {
		t.Errorf("compile_total{result=ok} = %v, want 2", got["ok"])
	}
	if got["error"] != 1 {
		t.Errorf("compile_total{result=error} = %v, want 1", got["error"])
	}
}

func TestObserveMatchIncrementsCounterAndHistogram(t *testing.T) {
	m := New("strex_test_match")
	reg := prometheus.NewRegistry()
	if err := m.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	m.ObserveMatch(5 * time.Millisecond)
	m.ObserveMatch(10 * time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var total float64
	var histCount uint64
	for _, f := range families {
		switch f.GetName() {
		case "strex_test_match_matches_total":
			total = f.GetMetric()[0].GetCounter().GetValue()
		case "strex_test_match_match_duration_seconds":
			histCount = f.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	if total != 2 {
		t.Errorf("matches_total = %v, want 2", total)
	}
	if histCount != 2 {
		t.Errorf("match_duration_seconds sample count = %v, want 2", histCount)
	}
}

func TestNilMetricsObserveIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveCompile(nil)
	m.ObserveMatch(time.Millisecond)
}

type errTest struct{}

func (errTest) Error() string { return "boom" }
