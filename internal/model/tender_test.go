package model

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{`"5000.00"`, "5000.00"},
		{`"0"`, "0"},
		{`5000`, "5000"},
		{`5000.00`, "5000"},
		{`1250.50`, "1250.5"},
		{`1e3`, "1000"},
		{`0`, ""},
		{`0.00`, ""},
		{`null`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var got struct {
				Amount Amount `json:"debt_amount"`
			}
			if err := json.Unmarshal([]byte(`{"debt_amount":`+tc.in+`}`), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if got.Amount != tc.want {
				t.Fatalf("amount = %q, want %q", got.Amount, tc.want)
			}
		})
	}
}

func TestAmountRejectsNonScalars(t *testing.T) {
	var a Amount
	if err := json.Unmarshal([]byte(`{"value": 1}`), &a); err == nil {
		t.Fatalf("an object is not an amount")
	}
}

func TestAmountUnmarshalParamKeepsText(t *testing.T) {
	var a Amount
	if err := a.UnmarshalParam("5000.00"); err != nil {
		t.Fatalf("UnmarshalParam: %v", err)
	}
	if a != "5000.00" {
		t.Fatalf("amount = %q", a)
	}
}
