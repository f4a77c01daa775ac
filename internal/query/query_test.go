package query

import (
	"testing"
	"time"
)

func TestPage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty defaults to first page", "", 1},
		{"valid page", "3", 3},
		{"zero floors to one", "0", 1},
		{"negative floors to one", "-5", 1},
		{"garbage defaults to one", "abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Page(tt.raw); got != tt.want {
				t.Errorf("Page(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		def  int
		want int
	}{
		{"empty uses default", "", 20, 20},
		{"valid limit", "50", 20, 50},
		{"zero floors to one", "0", 20, 1},
		{"negative floors to one", "-3", 20, 1},
		{"oversized clamps to max", "9999", 20, 100},
		{"garbage uses default", "lots", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Limit(tt.raw, tt.def); got != tt.want {
				t.Errorf("Limit(%q, %d) = %d, want %d", tt.raw, tt.def, got, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(1, 20); got != 0 {
		t.Errorf("Offset(1, 20) = %d, want 0", got)
	}
	if got := Offset(3, 10); got != 20 {
		t.Errorf("Offset(3, 10) = %d, want 20", got)
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int
		wantTotalPages int
	}{
		{"empty result set", 1, 20, 0, 0},
		{"exact multiple", 1, 10, 30, 3},
		{"partial last page", 2, 10, 31, 4},
		{"single row", 1, 20, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.Page != tt.page || p.Limit != tt.limit || p.Total != tt.total {
				t.Errorf("envelope = %+v, want page=%d limit=%d total=%d", p, tt.page, tt.limit, tt.total)
			}
		})
	}
}

func TestBoolFilter(t *testing.T) {
	if got := BoolFilter("true"); got == nil || !*got {
		t.Errorf("BoolFilter(\"true\") = %v, want true predicate", got)
	}
	for _, raw := range []string{"", "false", "TRUE", "1", "yes"} {
		if got := BoolFilter(raw); got != nil {
			t.Errorf("BoolFilter(%q) = %v, want nil", raw, got)
		}
	}
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"", true},
		{"true", true},
		{"anything", true},
		{"false", false},
	}

	for _, tt := range tests {
		if got := Available(tt.raw); got != tt.want {
			t.Errorf("Available(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantNil bool
		wantErr bool
	}{
		{name: "empty is absent", raw: "", wantNil: true},
		{name: "rfc3339", raw: "2025-06-15T18:30:00Z", want: time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)},
		{name: "datetime-local", raw: "2025-06-15T18:30", want: time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)},
		{name: "date only", raw: "2025-06-15", want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", raw: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Time(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Time(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Time(%q) = %v, want nil", tt.raw, got)
				}
				return
			}
			if got == nil || !got.Equal(tt.want) {
				t.Errorf("Time(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
