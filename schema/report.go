package schema

import "github.com/google/uuid"

// PendingImage is a drone image which has no damage report yet
type PendingImage struct {
	ID                  uuid.UUID `json:"id"`
	EarthquakeID        uuid.UUID `json:"earthquakeId"`
	DroneID             uuid.UUID `json:"droneId"`
	Neighborhood        string    `json:"neighborhood"`
	FileName            string    `json:"fileName"`
	FilePath            string    `json:"filePath"`
	ImageURL            *string   `json:"imageUrl"`
	EarthquakeName      string    `json:"earthquakeName,omitempty"`
	EarthquakeLocation  string    `json:"earthquakeLocation,omitempty"`
	EarthquakeMagnitude float64   `json:"earthquakeMagnitude,omitempty"`
	DroneName           string    `json:"droneName,omitempty"`
}

// Report is a damage assessment of a single drone image.
// DamagedStructures is never less than CollapsedBuildings and
// SeverityScore is within [0, 10] with one decimal digit.
type Report struct {
	ID                 *uuid.UUID `json:"id,omitempty"`
	DroneImageID       uuid.UUID  `json:"droneImageId"`
	Title              string     `json:"title"`
	Location           string     `json:"location"`
	Report             string     `json:"report"`
	CollapsedBuildings int        `json:"collapsedBuildings"`
	DamagedStructures  int        `json:"damagedStructures"`
	BlockedRoads       int        `json:"blockedRoads"`
	SeverityScore      float64    `json:"severityScore"`
}
