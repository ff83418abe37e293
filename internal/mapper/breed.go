package mapper

import "github.com/roguepikachu/petshop/internal/domain"

// ToBreedDTO converts a stored breed into its transfer object.
func ToBreedDTO(b domain.Breed) domain.BreedDTO {
	return domain.BreedDTO{
		ID:         b.ID,
		Name:       b.Name,
		Species:    ToSpeciesDTO(b.Species),
		CreatedAt:  b.CreatedAt,
		ModifiedAt: b.ModifiedAt,
	}
}

// ToBreedResponse renders a breed for the wire.
func ToBreedResponse(d domain.BreedDTO) domain.BreedResponse {
	return domain.BreedResponse{
		ID:         d.ID,
		Name:       d.Name,
		Species:    ToSpeciesResponse(d.Species),
		CreatedAt:  formatTime(d.CreatedAt),
		ModifiedAt: formatTimePtr(d.ModifiedAt),
	}
}

// ToBreedResume keeps the breed name and its species summary.
func ToBreedResume(d domain.BreedDTO) domain.BreedResumeResponse {
	return domain.BreedResumeResponse{Name: d.Name, Species: ToSpeciesResume(d.Species)}
}
