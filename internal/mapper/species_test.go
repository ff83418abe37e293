package mapper

import (
	"testing"
	"time"

	"github.com/roguepikachu/petshop/internal/domain"
)

func TestToSpeciesResponse_NullableTimestamps(t *testing.T) {
	icon := "felino.png"
	created := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	resp := ToSpeciesResponse(ToSpeciesDTO(domain.Species{ID: 3, Name: "Felino", Icon: &icon, CreatedAt: created}))
	if resp.CreatedAt == nil || *resp.CreatedAt != "2025-05-10T08:00:00Z" {
		t.Fatalf("createdAt mismatch: %v", resp.CreatedAt)
	}
	if resp.ModifiedAt != nil {
		t.Fatalf("modifiedAt should be nil, got %v", *resp.ModifiedAt)
	}
	if resp.Icon == nil || *resp.Icon != icon {
		t.Fatalf("icon lost")
	}

	modified := created.Add(time.Hour)
	resp = ToSpeciesResponse(domain.SpeciesDTO{ID: 3, Name: "Felino", CreatedAt: created, ModifiedAt: &modified})
	if resp.ModifiedAt == nil || *resp.ModifiedAt != "2025-05-10T09:00:00Z" {
		t.Fatalf("modifiedAt mismatch: %v", resp.ModifiedAt)
	}
}

func TestSpeciesDTORoundtrip(t *testing.T) {
	s := domain.Species{ID: 1, Name: "Canino", CreatedAt: time.Now().UTC()}
	if got := SpeciesFromDTO(ToSpeciesDTO(s)); got != s {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", got, s)
	}
}

func TestToBreedResume(t *testing.T) {
	icon := "canino.png"
	d := ToBreedDTO(domain.Breed{ID: 9, Name: "Labrador", SpeciesID: 1, Species: domain.Species{ID: 1, Name: "Canino", Icon: &icon}})
	r := ToBreedResume(d)
	if r.Name != "Labrador" || r.Species.Name != "Canino" || r.Species.Icon == nil || *r.Species.Icon != icon {
		t.Fatalf("resume mismatch: %+v", r)
	}
	if resp := ToBreedResponse(d); resp.CreatedAt != nil {
		t.Fatalf("zero createdAt should render as null")
	}
}
