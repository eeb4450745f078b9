package request

import "testing"

func TestParseDecisionsJSON(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		got, err := ParseDecisionsJSON(`[{"quotation_id":"q1","is_approved":true,"non_approval_reason":"stale"},{"quotation_id":"q2","is_approved":false,"non_approval_reason":"over budget"}]`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 decisions, got %d", len(got))
		}
		if !got[0].Approved || got[0].Reason != "" {
			t.Fatalf("approved decision must drop the reason: %+v", got[0])
		}
		if got[1].Approved || got[1].Reason != "over budget" {
			t.Fatalf("unexpected rejected decision: %+v", got[1])
		}
	})

	t.Run("invalid payloads", func(t *testing.T) {
		cases := []string{
			"",
			"not json",
			`[{"quotation_id":"","is_approved":true}]`,
			`[{"quotation_id":"q1"}]`,
		}
		for _, raw := range cases {
			if _, err := ParseDecisionsJSON(raw); err != ErrInvalidDecisions {
				t.Fatalf("payload %q: expected ErrInvalidDecisions, got %v", raw, err)
			}
		}
	})
}
