package schema

import "github.com/google/uuid"

// DroneStatusActive is the only status returned by the active drones listing
const DroneStatusActive = "ACTIVE"

// Drone is a registered field drone as listed by the server
type Drone struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Model  string    `json:"model"`
	Status string    `json:"status,omitempty"`
}

// DroneUpload is a single image upload performed on behalf of a drone
type DroneUpload struct {
	FilePath     string
	ContentType  string
	EarthquakeID uuid.UUID
	DroneID      uuid.UUID
	Neighborhood string
}

// DroneImage is an image accepted by the drone upload endpoint
type DroneImage struct {
	ID           uuid.UUID `json:"id"`
	EarthquakeID uuid.UUID `json:"earthquakeId"`
	DroneID      uuid.UUID `json:"droneId"`
	Neighborhood string    `json:"neighborhood"`
	FileName     string    `json:"fileName"`
	FilePath     string    `json:"filePath"`
}
