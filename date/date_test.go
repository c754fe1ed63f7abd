package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// time.Time are usually not comparable (there is a pointer for the timezone), this
		// also checks that the property remains true.
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "2025-07-01", want: New(2025, time.July, 1)},
		{input: "2025-7-1", want: New(2025, time.July, 1)},
		{input: "2025/07/01", want: New(2025, time.July, 1)},
		{input: "2025-07-01T10:00:00Z", want: New(2025, time.July, 1)},
		{input: "01/07/2025", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2025, time.February, 30), New(2025, time.March, 2); got != want {
		t.Errorf("New(2025, 2, 30) = %v, want %v", got, want)
	}
}

func TestBeforeAfter(t *testing.T) {
	d1, d2 := New(2025, 1, 1), New(2025, 1, 2)
	if !d1.Before(d2) || d2.Before(d1) {
		t.Errorf("Before() is wrong for %v and %v", d1, d2)
	}
	if !d2.After(d1) || d1.After(d2) {
		t.Errorf("After() is wrong for %v and %v", d1, d2)
	}
}

func TestJSON(t *testing.T) {
	d := New(2024, time.December, 24)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if got, want := string(b), `"2024-12-24"`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("json.Unmarshal() = %v, want %v", back, d)
	}
}

func TestZero(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if got := d.String(); got != "" {
		t.Errorf("zero Date String() = %q, want empty", got)
	}
}
