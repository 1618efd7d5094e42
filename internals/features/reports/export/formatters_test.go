package export

import (
	"testing"
	"time"
)

func TestFormatCellCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "grouped integer", in: 1234567, want: "1\u00a0234\u00a0567 UZS"},
		{name: "int64", in: int64(500000), want: "500\u00a0000 UZS"},
		{name: "small amount ungrouped", in: 500, want: "500 UZS"},
		{name: "numeric string", in: "150000", want: "150\u00a0000 UZS"},
		{name: "decimals rounded away", in: 1999.6, want: "2\u00a0000 UZS"},
		{name: "non-numeric coerces to zero", in: "abc", want: "0 UZS"},
		{name: "nil is empty", in: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.in, FormatCurrency); got != tt.want {
				t.Errorf("FormatCell(%v, currency) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCellPercentage(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "integer input", in: 87, want: "87.0%"},
		{name: "keeps one decimal", in: 87.25, want: "87.2%"},
		{name: "rounds to one decimal", in: 99.96, want: "100.0%"},
		{name: "numeric string", in: "62.5", want: "62.5%"},
		{name: "non-numeric", in: "abc", want: "0.0%"},
		{name: "nil is empty", in: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.in, FormatPercentage); got != tt.want {
				t.Errorf("FormatCell(%v, percentage) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCellDate(t *testing.T) {
	ts := time.Date(2026, time.February, 15, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "iso date string", in: "2026-02-15", want: "15.02.2026"},
		{name: "rfc3339 string", in: "2026-02-15T09:30:00Z", want: "15.02.2026"},
		{name: "time value", in: ts, want: "15.02.2026"},
		{name: "time pointer", in: &ts, want: "15.02.2026"},
		{name: "unparseable falls back to raw", in: "not-a-date", want: "not-a-date"},
		{name: "nil is empty", in: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.in, FormatDate); got != tt.want {
				t.Errorf("FormatCell(%v, date) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCellNumberAndText(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		format Format
		want   string
	}{
		{name: "int passthrough", in: 42, format: FormatNumber, want: "42"},
		{name: "float keeps fraction", in: 42.5, format: FormatNumber, want: "42.5"},
		{name: "numeric string", in: "17", format: FormatNumber, want: "17"},
		{name: "non-numeric defaults to zero", in: "xyz", format: FormatNumber, want: "0"},
		{name: "text passthrough", in: "Algebra", format: FormatText, want: "Algebra"},
		{name: "unspecified format is text", in: 42, format: "", want: "42"},
		{name: "nil text", in: nil, format: FormatText, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.in, tt.format); got != tt.want {
				t.Errorf("FormatCell(%v, %q) = %q, want %q", tt.in, tt.format, got, tt.want)
			}
		})
	}
}
