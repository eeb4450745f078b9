package approval

import (
	"testing"

	"conecta_tool/internal/domain/entities"
)

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }

func quotation(id string, material, direct, indirect, price float64) entities.CompanyQuotation {
	return entities.CompanyQuotation{
		ID:           id,
		MaterialCost: floatPtr(material),
		DirectCost:   floatPtr(direct),
		IndirectCost: floatPtr(indirect),
		Price:        floatPtr(price),
	}
}

func TestFromQuotations(t *testing.T) {
	q1 := quotation("q1", 100, 50, 25, 200)
	q1.IsClientApproved = boolPtr(true)
	q2 := quotation("q2", 80, 40, 10, 150)
	q2.IsClientApproved = boolPtr(false)
	q2.NonApprovalReason = "too expensive"
	q3 := quotation("q3", 10, 10, 10, 50)

	s := FromQuotations([]entities.Requirement{
		{ID: "r1", Quotations: []entities.CompanyQuotation{q1, q2, q3}},
	})

	if len(s) != 2 {
		t.Fatalf("expected 2 seeded decisions, got %d", len(s))
	}
	if !s["q1"].IsApproved() {
		t.Fatalf("expected q1 approved")
	}
	if !s["q2"].IsRejected() || s["q2"].RejectionReason != "too expensive" {
		t.Fatalf("expected q2 rejected with reason, got %+v", s["q2"])
	}
	if s["q3"].Decided() {
		t.Fatalf("expected q3 undecided")
	}
}

func TestStateUpdatesAreCopyOnWrite(t *testing.T) {
	original := NewState().SetApproval("q1", true)

	next := original.SetApproval("q1", false)
	if !original["q1"].IsApproved() {
		t.Fatalf("original state mutated by SetApproval")
	}
	if !next["q1"].IsRejected() {
		t.Fatalf("expected q1 rejected in new state")
	}

	withReason := next.SetRejectionReason("q1", "wrong scope")
	if next["q1"].RejectionReason != "" {
		t.Fatalf("original state mutated by SetRejectionReason")
	}
	if withReason["q1"].RejectionReason != "wrong scope" {
		t.Fatalf("expected reason recorded, got %q", withReason["q1"].RejectionReason)
	}
}

func TestReasonSurvivesToggle(t *testing.T) {
	s := NewState().
		SetApproval("q1", false).
		SetRejectionReason("q1", "missing certifications").
		SetApproval("q1", true).
		SetApproval("q1", false)

	if s["q1"].RejectionReason != "missing certifications" {
		t.Fatalf("reason lost across toggles: %q", s["q1"].RejectionReason)
	}
}

func TestSetRejectionReasonDoesNotDecide(t *testing.T) {
	s := NewState().SetRejectionReason("q1", "draft note")
	if s["q1"].Decided() {
		t.Fatalf("reason edit must not decide the quotation")
	}
}

func TestDecisions(t *testing.T) {
	s := NewState().
		SetApproval("q1", true).
		SetRejectionReason("q1", "stale reason").
		SetApproval("q2", false).
		SetRejectionReason("q2", "over budget").
		SetRejectionReason("q3", "undecided note")

	out := s.Decisions()
	if len(out) != 2 {
		t.Fatalf("expected 2 decisions, got %d", len(out))
	}

	byID := make(map[string]entities.ApprovalDecision, len(out))
	for _, d := range out {
		byID[d.QuotationID] = d
	}
	if d := byID["q1"]; !d.Approved || d.Reason != "" {
		t.Fatalf("approved decision must carry empty reason, got %+v", d)
	}
	if d := byID["q2"]; d.Approved || d.Reason != "over budget" {
		t.Fatalf("unexpected rejected decision: %+v", d)
	}
}

func TestFromDecisionsRoundTrip(t *testing.T) {
	s := FromDecisions([]entities.ApprovalDecision{
		{QuotationID: "q1", Approved: true},
		{QuotationID: "q2", Approved: false, Reason: "no file"},
	})

	if !s["q1"].IsApproved() {
		t.Fatalf("expected q1 approved")
	}
	if !s["q2"].IsRejected() || s["q2"].RejectionReason != "no file" {
		t.Fatalf("unexpected q2: %+v", s["q2"])
	}
}
