// Package mapper converts between entities, transfer objects and wire shapes.
package mapper

import "github.com/roguepikachu/petshop/internal/domain"

// ToPageEnvelope projects a store-level page into the wire envelope.
func ToPageEnvelope[T any](p domain.Page[T]) domain.PageEnvelope[T] {
	content := p.Items
	if content == nil {
		content = []T{}
	}
	return domain.PageEnvelope[T]{
		Content:       content,
		CurrentPage:   p.PageNumber,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
	}
}

// MapPage converts every item of p with fn, keeping the page metadata.
func MapPage[T, U any](p domain.Page[T], fn func(T) U) domain.Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return domain.Page[U]{
		Items:         items,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
	}
}
