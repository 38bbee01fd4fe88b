package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Currency *string `binding:"omitempty,currency"`
	Cycle    *string `binding:"omitempty,period"`
}

func str(s string) *string { return &s }

func TestRegister(t *testing.T) {
	if err := Register(); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := Register(); err != nil {
		t.Fatalf("second Register: %v", err)
	}

	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"empty", sample{}, true},
		{"lower currency", sample{Currency: str("eur")}, true},
		{"bad currency", sample{Currency: str("euro")}, false},
		{"cycle", sample{Cycle: str("Quarter")}, true},
		{"bad cycle", sample{Cycle: str("fortnight")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.in)
			if tt.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
