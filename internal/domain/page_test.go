package domain

import (
	"errors"
	"math"
	"testing"
)

func TestNewPageRequest_Clamps(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		want       PageRequest
	}{
		{"defaults", 0, 0, PageRequest{Page: 0, Size: DefaultPageSize}},
		{"negative page", -3, 10, PageRequest{Page: 0, Size: 10}},
		{"too large", 1, 5000, PageRequest{Page: 1, Size: MaxPageSize}},
		{"as given", 4, 25, PageRequest{Page: 4, Size: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPageRequest(tt.page, tt.size); got != tt.want {
				t.Fatalf("want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestNewPage_TotalPages(t *testing.T) {
	if p := NewPage([]int{}, NewPageRequest(0, 10), 0); p.TotalPages != 0 {
		t.Fatalf("empty store should have 0 pages, got %d", p.TotalPages)
	}
	if p := NewPage([]int{1}, NewPageRequest(0, 10), 1); p.TotalPages != 1 {
		t.Fatalf("want 1 page, got %d", p.TotalPages)
	}
	if p := NewPage([]int{1}, NewPageRequest(2, 10), 21); p.TotalPages != 3 || p.PageNumber != 2 {
		t.Fatalf("want 3 pages at index 2, got %+v", p)
	}
	if off := NewPageRequest(3, 20).Offset(); off != 60 {
		t.Fatalf("offset want 60, got %d", off)
	}
}

func TestPageRequest_OffsetSaturates(t *testing.T) {
	req := NewPageRequest(4611686018427387904, 2)
	if req.Page != 4611686018427387904 {
		t.Fatalf("page must be kept, got %d", req.Page)
	}
	off := req.Offset()
	if off < 0 {
		t.Fatalf("offset overflowed: %d", off)
	}
	if off != math.MaxInt-2 {
		t.Fatalf("offset want %d, got %d", math.MaxInt-2, off)
	}
	if off+req.Size < off {
		t.Fatalf("offset+size overflowed")
	}
	if got := NewPageRequest(math.MaxInt, MaxPageSize).Offset(); got != math.MaxInt-MaxPageSize {
		t.Fatalf("unexpected offset %d", got)
	}
}

func TestIsValidID(t *testing.T) {
	for _, n := range []int{-1, 0} {
		if IsValidID(n) {
			t.Fatalf("%d should be invalid", n)
		}
	}
	if !IsValidID(1) {
		t.Fatalf("1 should be valid")
	}
}

func TestErrorKinds(t *testing.T) {
	err := NotFoundf("no species with id %d", 4)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("kind lost")
	}
	if errors.Is(err, ErrInvalidField) {
		t.Fatalf("wrong kind matched")
	}
	if err.Error() != "no species with id 4" {
		t.Fatalf("message mismatch: %q", err.Error())
	}
	var de *Error
	if !errors.As(FieldMismatchf("x"), &de) || de.Kind != ErrFieldMismatch {
		t.Fatalf("errors.As failed")
	}
}

func TestUnknownSpecies(t *testing.T) {
	u := UnknownSpecies()
	if u.ID != 0 || u.Name != "Desconhecida" || u.Icon == nil || *u.Icon != "Desconhecido" {
		t.Fatalf("sentinel mismatch: %+v", u)
	}
	*u.Icon = "changed"
	if *UnknownSpecies().Icon != "Desconhecido" {
		t.Fatalf("sentinel must not be shared")
	}
	if !UnknownSpecies().IsUnknown() || (Species{ID: 1, Name: "Desconhecida"}).IsUnknown() {
		t.Fatalf("IsUnknown mismatch")
	}
}
