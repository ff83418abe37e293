package mapper

import (
	"time"

	"github.com/roguepikachu/petshop/internal/domain"
)

// ToSpeciesDTO converts a stored species into its transfer object.
func ToSpeciesDTO(s domain.Species) domain.SpeciesDTO {
	return domain.SpeciesDTO{
		ID:         s.ID,
		Name:       s.Name,
		Icon:       s.Icon,
		CreatedAt:  s.CreatedAt,
		ModifiedAt: s.ModifiedAt,
	}
}

// SpeciesFromDTO converts a transfer object back into an entity value.
func SpeciesFromDTO(d domain.SpeciesDTO) domain.Species {
	return domain.Species{
		ID:         d.ID,
		Name:       d.Name,
		Icon:       d.Icon,
		CreatedAt:  d.CreatedAt,
		ModifiedAt: d.ModifiedAt,
	}
}

// ToSpeciesResponse renders a species for the wire.
func ToSpeciesResponse(d domain.SpeciesDTO) domain.SpeciesResponse {
	return domain.SpeciesResponse{
		ID:         d.ID,
		Name:       d.Name,
		Icon:       d.Icon,
		CreatedAt:  formatTime(d.CreatedAt),
		ModifiedAt: formatTimePtr(d.ModifiedAt),
	}
}

// ToSpeciesResume keeps only the name and the icon.
func ToSpeciesResume(d domain.SpeciesDTO) domain.SpeciesResumeResponse {
	return domain.SpeciesResumeResponse{Name: d.Name, Icon: d.Icon}
}

// SpeciesFromCreate builds an unsaved species stamped with now.
func SpeciesFromCreate(req domain.CreateSpeciesRequest, now time.Time) domain.Species {
	return domain.Species{
		ID:        0,
		Name:      req.Name,
		Icon:      req.Icon,
		CreatedAt: now,
	}
}

// SpeciesFromUpdate builds the candidate validated before an update.
func SpeciesFromUpdate(req domain.UpdateSpeciesRequest) domain.Species {
	return domain.Species{ID: req.ID, Name: req.Name, Icon: req.Icon}
}
