package domain

import "time"

// Breed belongs to exactly one species.
type Breed struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// SpeciesID is the referenced species as requested by the caller.
	SpeciesID int `json:"speciesId"`
	// Species is the resolved value of SpeciesID, or UnknownSpecies when it
	// did not resolve.
	Species    Species    `json:"species"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt"`
}

// BreedDTO carries a breed between the service and mapping layers.
type BreedDTO struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Species    SpeciesDTO `json:"species"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt"`
}

// BreedResponse is the wire projection of a breed.
type BreedResponse struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Species    SpeciesResponse `json:"species"`
	CreatedAt  *string         `json:"createdAt"`
	ModifiedAt *string         `json:"modifiedAt"`
}

// BreedResumeResponse is the summarised projection of a breed.
type BreedResumeResponse struct {
	Name    string                `json:"name"`
	Species SpeciesResumeResponse `json:"species"`
}

// CreateBreedRequest is the body accepted by POST /breeds.
type CreateBreedRequest struct {
	Name    string     `json:"name" binding:"required,max=255"`
	Species SpeciesRef `json:"species"`
}

// UpdateBreedRequest is the body accepted by PATCH /breeds/{id}.
type UpdateBreedRequest struct {
	ID      int        `json:"id"`
	Name    string     `json:"name" binding:"required,max=255"`
	Species SpeciesRef `json:"species"`
}
