// Package model contains the persistence representations of domain entities.
package model

import (
	"time"

	"lifeline/internal/domain/entity"
)

// DonorModel is the Firestore document shape of a donor record. The field
// names match the legacy collection schema, so records written by earlier
// clients round-trip unchanged (including free-text blood groups).
type DonorModel struct {
	Name       string    `firestore:"name"`
	Address    string    `firestore:"address"`
	Mobile     string    `firestore:"mobile"`
	Age        string    `firestore:"age"`
	BloodGroup string    `firestore:"bloodGroup"`
	CreatedAt  time.Time `firestore:"timestamp"`
	OwnerID    string    `firestore:"userId"`
}

// FromDonorEntity converts a domain entity to its document shape.
func FromDonorEntity(donor *entity.Donor) *DonorModel {
	return &DonorModel{
		Name:       donor.Name,
		Address:    donor.Address,
		Mobile:     donor.Mobile,
		Age:        donor.Age,
		BloodGroup: donor.BloodGroup,
		CreatedAt:  donor.CreatedAt,
		OwnerID:    donor.OwnerID,
	}
}

// ToEntity converts a document back to the domain entity. The document ID is
// not stored inside the document, so the caller supplies it.
func (m *DonorModel) ToEntity(id string) *entity.Donor {
	return &entity.Donor{
		ID:         id,
		Name:       m.Name,
		Address:    m.Address,
		Mobile:     m.Mobile,
		Age:        m.Age,
		BloodGroup: m.BloodGroup,
		CreatedAt:  m.CreatedAt,
		OwnerID:    m.OwnerID,
	}
}
