package positions

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseSplitRatio(t *testing.T) {
	testCases := []struct {
		input    string
		num, den int64
		wantErr  bool
	}{
		{input: "2:1", num: 2, den: 1},
		{input: "1:10", num: 1, den: 10},
		{input: " 3 : 2 ", num: 3, den: 2},
		{input: "2", wantErr: true},
		{input: "2:1:1", wantErr: true},
		{input: "a:1", wantErr: true},
		{input: "0:1", wantErr: true},
		{input: "2:-1", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseSplitRatio(tc.input)
			if tc.wantErr {
				var invalid *InvalidSplitRatioError
				if !errors.As(err, &invalid) {
					t.Fatalf("ParseSplitRatio(%q) error = %v, want an InvalidSplitRatioError", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSplitRatio(%q) error = %v", tc.input, err)
			}
			if !got.Num.Equal(decimal.NewFromInt(tc.num)) || !got.Den.Equal(decimal.NewFromInt(tc.den)) {
				t.Errorf("ParseSplitRatio(%q) = %v, want %d:%d", tc.input, got, tc.num, tc.den)
			}
		})
	}
}

func TestRecord_Action(t *testing.T) {
	testCases := []struct {
		record Record
		want   ActionType
	}{
		{Buy{}, ActionBuy},
		{Drip{}, ActionDrip},
		{Sell{}, ActionSell},
		{Split{}, ActionSplit},
		{Other{Type: "DIVIDEND"}, "DIVIDEND"},
	}
	for _, tc := range testCases {
		if got := tc.record.Action(); got != tc.want {
			t.Errorf("%T.Action() = %q, want %q", tc.record, got, tc.want)
		}
	}
}
