package availability

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func strptr(s string) *string { return &s }

func rule(dow int, start, end string, effective, expiry *string) Rule {
	return Rule{
		ID:            uuid.New(),
		DayOfWeek:     dow,
		StartTime:     start,
		EndTime:       end,
		IsAvailable:   true,
		EffectiveDate: effective,
		ExpiryDate:    expiry,
	}
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", s, err)
	}
	return d
}

func TestResolveInclusiveBounds(t *testing.T) {
	// 2025-06-01 is a Sunday, 2025-06-07 a Saturday. Two rules so that both
	// boundary dates have a matching weekday.
	sun := rule(0, "09:00", "10:00", strptr("2025-06-01"), strptr("2025-06-07"))
	sat := rule(6, "09:00", "10:00", strptr("2025-06-01"), strptr("2025-06-07"))
	rules := []Rule{sun, sat}

	tests := []struct {
		date string
		want int
	}{
		{"2025-06-01", 1}, // effective date itself, inclusive
		{"2025-06-07", 1}, // expiry date itself, inclusive
		{"2025-05-31", 0}, // Saturday before the window
		{"2025-06-08", 0}, // Sunday after the window
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got := Resolve(rules, mustDate(t, tt.date))
			if len(got) != tt.want {
				t.Errorf("Resolve(%s) returned %d rules, want %d", tt.date, len(got), tt.want)
			}
		})
	}
}

func TestResolveOpenEndedRecurrence(t *testing.T) {
	// 2025-01-01 is a Wednesday. No expiry: matches every Wednesday forever.
	r := rule(3, "10:00", "11:00", strptr("2025-01-01"), nil)
	rules := []Rule{r}

	for _, date := range []string{
		"2025-01-01", // first occurrence
		"2025-12-31", // one year out, still a Wednesday
		"2030-01-02", // five years out, a Wednesday
	} {
		if got := Resolve(rules, mustDate(t, date)); len(got) != 1 {
			t.Errorf("Resolve(%s) = %d rules, want 1", date, len(got))
		}
	}

	if got := Resolve(rules, mustDate(t, "2024-12-25")); len(got) != 0 {
		t.Errorf("Wednesday before effective date matched, want no rules")
	}
}

func TestResolveUnconditionalRecurrence(t *testing.T) {
	r := rule(1, "09:00", "17:00", nil, nil)
	rules := []Rule{r}

	// Mondays far in the past and future, including before any plausible
	// creation timestamp of the rule.
	for _, date := range []string{"1999-03-08", "2025-03-10", "2040-04-02"} {
		if got := Resolve(rules, mustDate(t, date)); len(got) != 1 {
			t.Errorf("Resolve(%s) = %d rules, want 1", date, len(got))
		}
	}

	// Wrong weekday never matches.
	if got := Resolve(rules, mustDate(t, "2025-03-11")); len(got) != 0 {
		t.Errorf("Tuesday matched a Monday rule")
	}
}

func TestResolveDisabledRuleExcluded(t *testing.T) {
	enabled := rule(1, "09:00", "10:00", nil, nil)
	disabled := enabled
	disabled.ID = uuid.New()
	disabled.IsAvailable = false

	got := Resolve([]Rule{enabled, disabled}, mustDate(t, "2025-03-10"))
	if len(got) != 1 {
		t.Fatalf("Resolve returned %d rules, want 1", len(got))
	}
	if got[0].ID != enabled.ID {
		t.Errorf("Resolve returned the disabled rule")
	}
}

func TestResolvePurity(t *testing.T) {
	rules := []Rule{
		rule(1, "09:00", "10:00", nil, nil),
		rule(1, "14:00", "15:00", strptr("2025-03-01"), strptr("2025-03-31")),
		rule(2, "09:00", "10:00", nil, nil),
	}
	snapshot := make([]Rule, len(rules))
	copy(snapshot, rules)

	on := mustDate(t, "2025-03-10")
	first := Resolve(rules, on)
	second := Resolve(rules, on)

	if len(first) != len(second) {
		t.Fatalf("repeated calls disagree: %d vs %d rules", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("repeated calls disagree at index %d", i)
		}
	}

	if len(rules) != len(snapshot) {
		t.Fatalf("input slice length changed: %d, want %d", len(rules), len(snapshot))
	}
	// Rule is comparable; its pointer fields compare by identity, which is
	// exactly what the no-mutation check wants.
	for i := range rules {
		if rules[i] != snapshot[i] {
			t.Errorf("input slice mutated at index %d", i)
		}
	}
}

func TestResolveEndToEnd(t *testing.T) {
	recurring := rule(1, "09:00", "10:00", nil, nil)
	bounded := rule(1, "14:00", "15:00", strptr("2025-03-01"), strptr("2025-03-31"))
	rules := []Rule{recurring, bounded}

	// Monday inside March: both rules, input order preserved.
	got := Resolve(rules, mustDate(t, "2025-03-10"))
	if len(got) != 2 {
		t.Fatalf("Resolve(2025-03-10) = %d rules, want 2", len(got))
	}
	if got[0].ID != recurring.ID || got[1].ID != bounded.ID {
		t.Errorf("Resolve did not preserve input order")
	}

	// Monday after March: only the recurring rule survives.
	got = Resolve(rules, mustDate(t, "2025-04-07"))
	if len(got) != 1 {
		t.Fatalf("Resolve(2025-04-07) = %d rules, want 1", len(got))
	}
	if got[0].ID != recurring.ID {
		t.Errorf("Resolve(2025-04-07) returned the expired rule")
	}
}

func TestResolveOverlappingRulesAllReturned(t *testing.T) {
	a := rule(5, "09:00", "12:00", nil, nil)
	b := rule(5, "10:00", "11:00", strptr("2025-03-01"), strptr("2025-03-31"))

	got := Resolve([]Rule{a, b}, mustDate(t, "2025-03-14"))
	if len(got) != 2 {
		t.Errorf("overlapping rules: got %d, want both returned unmerged", len(got))
	}
}

func TestResolveEmptyInput(t *testing.T) {
	if got := Resolve(nil, NewDate(2025, time.March, 10)); len(got) != 0 {
		t.Errorf("Resolve(nil) = %d rules, want 0", len(got))
	}
	if got := Resolve([]Rule{}, NewDate(2025, time.March, 10)); len(got) != 0 {
		t.Errorf("Resolve(empty) = %d rules, want 0", len(got))
	}
}

func TestCovers(t *testing.T) {
	rules := []Rule{
		rule(1, "09:00", "12:00", nil, nil),
		rule(1, "14:00", "16:00", strptr("2025-03-01"), strptr("2025-03-31")),
	}
	monday := mustDate(t, "2025-03-10")

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"inside morning window", "09:30", "10:30", true},
		{"exact morning window", "09:00", "12:00", true},
		{"spills past window end", "11:00", "12:30", false},
		{"inside dated afternoon window", "14:00", "15:00", true},
		{"between windows", "12:30", "13:30", false},
		{"before opening", "08:00", "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Covers(rules, monday, tt.start, tt.end); got != tt.want {
				t.Errorf("Covers(%s-%s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}

	// After the dated rule expires, the afternoon window disappears.
	april := mustDate(t, "2025-04-07")
	if Covers(rules, april, "14:00", "15:00") {
		t.Error("Covers matched an expired rule's window")
	}
}

func TestRuleJSONFieldNames(t *testing.T) {
	r := rule(1, "09:00", "12:00", strptr("2025-06-01"), nil)

	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	// API responses are snake_case everywhere; rules must match.
	for _, key := range []string{"id", "day_of_week", "start_time", "end_time", "is_available", "effective_date"} {
		if _, okKey := m[key]; !okKey {
			t.Errorf("marshaled rule missing %q key, got %s", key, raw)
		}
	}
	if _, okKey := m["expiry_date"]; okKey {
		t.Errorf("nil expiry serialized, got %s", raw)
	}
}
