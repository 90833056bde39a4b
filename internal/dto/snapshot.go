package dto

import "time"

// SnapshotVersion is the current snapshot file format version
const SnapshotVersion = "1"

// Snapshot is a complete booking graph in boundary form
type Snapshot struct {
	Version    string        `json:"version" yaml:"version"`
	ExportedAt time.Time     `json:"exported_at" yaml:"exported_at"`
	Users      []UserDTO     `json:"users,omitempty" yaml:"users,omitempty"`
	Stations   []StationDTO  `json:"stations,omitempty" yaml:"stations,omitempty"`
	Trains     []TrainDTO    `json:"trains,omitempty" yaml:"trains,omitempty"`
	Economies  []EconomyDTO  `json:"economies,omitempty" yaml:"economies,omitempty"`
	AgeGroups  []AgeGroupDTO `json:"age_groups,omitempty" yaml:"age_groups,omitempty"`
	Discounts  []DiscountDTO `json:"discounts,omitempty" yaml:"discounts,omitempty"`
	Tickets    []TicketDTO   `json:"tickets,omitempty" yaml:"tickets,omitempty"`
}

// NewSnapshot creates an empty snapshot stamped with the current version
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UTC(),
	}
}

// Len returns the total number of entities in the snapshot
func (s *Snapshot) Len() int {
	return len(s.Users) + len(s.Stations) + len(s.Trains) + len(s.Economies) +
		len(s.AgeGroups) + len(s.Discounts) + len(s.Tickets)
}
