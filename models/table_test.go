package models

import (
	"encoding/json"
	"testing"
)

func TestTableNumberUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TableNumber
		wantErr bool
	}{
		{name: "json number", input: `4`, want: 4},
		{name: "numeric string", input: `"4"`, want: 4},
		{name: "padded numeric string", input: `" 12 "`, want: 12},
		{name: "zero", input: `0`, want: 0},
		{name: "float", input: `4.5`, wantErr: true},
		{name: "float string", input: `"4.5"`, wantErr: true},
		{name: "garbage", input: `"four"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n TableNumber
			err := json.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for input %s, got %d", tt.input, n)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for input %s: %v", tt.input, err)
			}
			if n != tt.want {
				t.Errorf("got %d, want %d", n, tt.want)
			}
		})
	}
}

func TestTableNumberInsideStruct(t *testing.T) {
	// the order-create request carries the table as user-entered text
	var req struct {
		Table TableNumber `json:"table"`
	}
	if err := json.Unmarshal([]byte(`{"table": "4"}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Table != 4 {
		t.Errorf("got %d, want 4", req.Table)
	}
}

func TestTableStatusIsValid(t *testing.T) {
	for _, s := range []TableStatus{TableAvailable, TableOccupied, TableReserved} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if TableStatus("vacant").IsValid() {
		t.Error("vacant should not be valid")
	}
	if TableStatus("").IsValid() {
		t.Error("empty status should not be valid")
	}
}
