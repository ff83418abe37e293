package mapper

import (
	"testing"

	"github.com/roguepikachu/petshop/internal/domain"
)

func TestToPageEnvelope_SingleItem(t *testing.T) {
	p := domain.NewPage([]string{"Labrador"}, domain.NewPageRequest(0, 10), 1)
	env := ToPageEnvelope(p)
	if env.TotalElements != 1 || env.TotalPages != 1 || env.CurrentPage != 0 || len(env.Content) != 1 {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestToPageEnvelope_EmptyContentIsNotNil(t *testing.T) {
	env := ToPageEnvelope(domain.Page[int]{})
	if env.Content == nil {
		t.Fatalf("content should be an empty slice")
	}
}

func TestMapPage_KeepsMetadata(t *testing.T) {
	p := domain.NewPage([]int{1, 2}, domain.NewPageRequest(2, 2), 7)
	got := MapPage(p, func(i int) string { return string(rune('a' + i)) })
	if got.PageNumber != 2 || got.TotalPages != 4 || got.TotalElements != 7 || got.PageSize != 2 {
		t.Fatalf("metadata lost: %+v", got)
	}
	if len(got.Items) != 2 || got.Items[0] != "b" || got.Items[1] != "c" {
		t.Fatalf("items not mapped: %v", got.Items)
	}
}
