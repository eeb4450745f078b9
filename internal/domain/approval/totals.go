package approval

import "conecta_tool/internal/domain/entities"

// Totals are the four running sums over approved quotations. Material,
// direct and indirect costs are summed independently of price: price is
// the asking price, not the cost sum, and the two are never reconciled.
type Totals struct {
	Material float64 `json:"material_cost"`
	Direct   float64 `json:"direct_cost"`
	Indirect float64 `json:"indirect_cost"`
	Price    float64 `json:"price"`
}

// TotalCost is the combined cost side (material + direct + indirect).
func (t Totals) TotalCost() float64 {
	return t.Material + t.Direct + t.Indirect
}

func (t Totals) add(q entities.CompanyQuotation) Totals {
	t.Material += deref(q.MaterialCost)
	t.Direct += deref(q.DirectCost)
	t.Indirect += deref(q.IndirectCost)
	t.Price += deref(q.Price)
	return t
}

// ComputeTotals folds the approval state over the requirement set,
// returning per-requirement totals keyed by requirement ID plus the
// overall sum. Only quotations whose decision is approved contribute;
// undecided and rejected ones are invisible to every sum.
func ComputeTotals(requirements []entities.Requirement, state State) (map[string]Totals, Totals) {
	perRequirement := make(map[string]Totals, len(requirements))
	var overall Totals
	for _, r := range requirements {
		var rt Totals
		for _, q := range r.Quotations {
			if !state[q.ID].IsApproved() {
				continue
			}
			rt = rt.add(q)
			overall = overall.add(q)
		}
		perRequirement[r.ID] = rt
	}
	return perRequirement, overall
}

// SuggestedClientPrice is the overall approved price total. It is
// recomputed after every approval toggle and always overwrites the
// client price input; operators edit the field after settling their
// decisions.
func SuggestedClientPrice(requirements []entities.Requirement, state State) float64 {
	_, overall := ComputeTotals(requirements, state)
	return overall.Price
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
