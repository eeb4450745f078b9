package approval

import "conecta_tool/internal/domain/entities"

// Decision is one operator decision over a company quotation. Approved
// is nil while the quotation is undecided; a typed rejection reason is
// kept even while undecided or approved (it only matters while
// rejected, and is cleared at persistence time).
type Decision struct {
	Approved        *bool
	RejectionReason string
}

func (d Decision) Decided() bool {
	return d.Approved != nil
}

func (d Decision) IsApproved() bool {
	return d.Approved != nil && *d.Approved
}

func (d Decision) IsRejected() bool {
	return d.Approved != nil && !*d.Approved
}

// State maps quotation ID to its decision. Every update returns a fresh
// map so totals recomputation after each toggle is a pure fold over the
// new value and no caller observes a half-applied state.
type State map[string]Decision

func NewState() State {
	return State{}
}

// FromQuotations seeds the state from persisted approval data. Only
// quotations with a stored decision get an entry; the rest start
// undecided and must be decided explicitly before submission.
func FromQuotations(requirements []entities.Requirement) State {
	s := NewState()
	for _, r := range requirements {
		for _, q := range r.Quotations {
			if q.IsClientApproved == nil {
				continue
			}
			v := *q.IsClientApproved
			s[q.ID] = Decision{Approved: &v, RejectionReason: q.NonApprovalReason}
		}
	}
	return s
}

// SetApproval records an approve/reject decision. The rejection reason
// is preserved across toggles; it is ignored while approved.
func (s State) SetApproval(quotationID string, approved bool) State {
	next := s.clone()
	d := next[quotationID]
	d.Approved = &approved
	next[quotationID] = d
	return next
}

// SetRejectionReason updates only the reason text. It does not decide
// the quotation and never affects totals.
func (s State) SetRejectionReason(quotationID, reason string) State {
	next := s.clone()
	d := next[quotationID]
	d.RejectionReason = reason
	next[quotationID] = d
	return next
}

// Decisions flattens the state into the bulk-upsert payload. Approved
// entries carry an empty reason so persistence clears any stale one.
// Undecided entries are skipped; validation guarantees there are none
// by the time this is persisted.
func (s State) Decisions() []entities.ApprovalDecision {
	out := make([]entities.ApprovalDecision, 0, len(s))
	for id, d := range s {
		if !d.Decided() {
			continue
		}
		dec := entities.ApprovalDecision{QuotationID: id, Approved: d.IsApproved()}
		if d.IsRejected() {
			dec.Reason = d.RejectionReason
		}
		out = append(out, dec)
	}
	return out
}

// FromDecisions builds a state from a submitted decision list.
func FromDecisions(decisions []entities.ApprovalDecision) State {
	s := NewState()
	for _, dec := range decisions {
		v := dec.Approved
		s[dec.QuotationID] = Decision{Approved: &v, RejectionReason: dec.Reason}
	}
	return s
}

func (s State) clone() State {
	next := make(State, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	return next
}
