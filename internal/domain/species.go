// Package domain contains the taxonomy entities and their transfer shapes.
package domain

import "time"

const (
	unknownSpeciesName = "Desconhecida"
	unknownSpeciesIcon = "Desconhecido"
)

// Species is a top-level taxonomy entity identified by a unique name.
type Species struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Icon       *string    `json:"icon"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt"`
}

// UnknownSpecies returns the fallback species used when a breed references a
// species that does not resolve. It is never persisted.
func UnknownSpecies() Species {
	icon := unknownSpeciesIcon
	return Species{ID: 0, Name: unknownSpeciesName, Icon: &icon}
}

// IsUnknown reports whether s is the fallback species.
func (s Species) IsUnknown() bool {
	return s.ID == 0 && s.Name == unknownSpeciesName
}

// SpeciesDTO carries a species between the service and mapping layers.
type SpeciesDTO struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Icon       *string    `json:"icon"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt"`
}

// SpeciesResponse is the wire projection of a species.
type SpeciesResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Icon       *string `json:"icon"`
	CreatedAt  *string `json:"createdAt"`
	ModifiedAt *string `json:"modifiedAt"`
}

// SpeciesResumeResponse is the name-and-icon projection of a species.
type SpeciesResumeResponse struct {
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

// CreateSpeciesRequest is the body accepted by POST /species.
type CreateSpeciesRequest struct {
	Name string  `json:"name" binding:"required,max=255"`
	Icon *string `json:"icon" binding:"omitempty,max=1024"`
}

// UpdateSpeciesRequest is the body accepted by PATCH /species/{id}.
// A nil Icon leaves the stored icon untouched.
type UpdateSpeciesRequest struct {
	ID   int     `json:"id"`
	Name string  `json:"name" binding:"required,max=255"`
	Icon *string `json:"icon" binding:"omitempty,max=1024"`
}

// SpeciesRef references a species by id inside a breed request.
type SpeciesRef struct {
	ID int `json:"id"`
}
