// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// BloodGroups is the canonical set of ABO/Rh labels used for registration
// input and display aggregation. The storage boundary does not enforce it:
// legacy records may carry arbitrary labels and must round-trip verbatim.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

// Donor is one registered person's blood-donation contact record,
// owned by the account that registered them.
type Donor struct {
	ID         string    `json:"id"`          // Document ID assigned by the record store on creation.
	Name       string    `json:"name"`        // Free text; letters/spaces only by registration policy.
	Address    string    `json:"address"`     // Free text, optional.
	Mobile     string    `json:"mobile"`      // 10-digit numeric string; treated as opaque text past validation.
	Age        string    `json:"age"`         // String-encoded integer, policy range 18-60; opaque past validation.
	BloodGroup string    `json:"blood_group"` // Free text at the data layer; canonically one of BloodGroups.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp assigned by the record store on creation.
	OwnerID    string    `json:"owner_id"`    // UID of the account that created the record. Immutable.
}
