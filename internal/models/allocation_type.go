package models

// AllocationTypeID identifies an employee's allocation state.
type AllocationTypeID int

const (
	// AllocationTypeBench marks an employee that is not assigned to any project or training.
	AllocationTypeBench AllocationTypeID = 1
	// AllocationTypeAllocated marks an employee assigned to an internal project or training.
	AllocationTypeAllocated AllocationTypeID = 2
)

// IsValid reports whether the id is one of the known allocation types.
func (t AllocationTypeID) IsValid() bool {
	return t == AllocationTypeBench || t == AllocationTypeAllocated
}

// String returns the display name used by the lookup table.
func (t AllocationTypeID) String() string {
	switch t {
	case AllocationTypeBench:
		return "Bench"
	case AllocationTypeAllocated:
		return "Allocated"
	default:
		return "Unknown"
	}
}
