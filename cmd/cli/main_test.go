package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/splitpot/splitpot/internal/domain"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestMoney(t *testing.T) {
	cases := map[float64]string{
		27.133333333: "27.13",
		-13.266666:   "-13.27",
		0:            "0.00",
		5:            "5.00",
	}
	for in, want := range cases {
		if got := money(in); got != want {
			t.Fatalf("money(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestPrintPlan(t *testing.T) {
	now := time.Now()
	ds := &domain.Dataset{
		SchemaVersion: domain.SchemaVersion,
		CurrencyCode:  "EUR",
		Participants: []*domain.Participant{
			{ID: "p1", Name: "Anna", CreatedAt: now},
			{ID: "p2", Name: "Lena", CreatedAt: now},
		},
		Expenses: []*domain.Expense{
			{ID: "e1", Description: "dinner", Amount: 30, PayerID: "p1", ParticipantIDs: []string{"p1", "p2"}, CreatedAt: now},
		},
	}

	out := captureOutput(t, func() {
		printPlan(ds)
	})

	if !strings.Contains(out, "Balances (EUR):") {
		t.Fatalf("missing balances header in output:\n%s", out)
	}
	if !strings.Contains(out, "Anna") || !strings.Contains(out, "15.00") {
		t.Fatalf("missing creditor line in output:\n%s", out)
	}
	if !strings.Contains(out, "Lena -> Anna: 15.00") {
		t.Fatalf("missing settlement line in output:\n%s", out)
	}
}

func TestPrintPlanSettledUp(t *testing.T) {
	ds := &domain.Dataset{
		SchemaVersion: domain.SchemaVersion,
		CurrencyCode:  "USD",
		Participants:  []*domain.Participant{{ID: "p1", Name: "Anna"}},
		Expenses:      nil,
	}

	out := captureOutput(t, func() {
		printPlan(ds)
	})

	if !strings.Contains(out, "Everyone is settled up.") {
		t.Fatalf("expected settled-up message, got:\n%s", out)
	}
}
