// Package entity contains the core business objects of the project.
package entity

// Specialty represents a doctor's medical specialty.
type Specialty string

const (
	// SpecialtyOrthopedics indicates the orthopedics specialty.
	SpecialtyOrthopedics Specialty = "orthopedics"
	// SpecialtyCardiology indicates the cardiology specialty.
	SpecialtyCardiology Specialty = "cardiology"
	// SpecialtyGeneralMedicine indicates the general medicine specialty.
	SpecialtyGeneralMedicine Specialty = "general_medicine"
	// SpecialtyDermatology indicates the dermatology specialty.
	SpecialtyDermatology Specialty = "dermatology"
)

// String returns the string representation of the Specialty.
func (s Specialty) String() string {
	return string(s)
}

// IsValid checks if the Specialty is a valid value.
func (s Specialty) IsValid() bool {
	switch s {
	case SpecialtyOrthopedics, SpecialtyCardiology, SpecialtyGeneralMedicine, SpecialtyDermatology:
		return true
	default:
		return false
	}
}
