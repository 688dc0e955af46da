// Package simulator drives the drone upload and report generation runs.
package simulator

//go:generate mockgen -package mocks -destination mocks/simulator.go github.com/hades-platform/field-simulators/simulator DroneClient,ReportClient

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/hades-platform/field-simulators/external/hades"
	"github.com/hades-platform/field-simulators/schema"
	"github.com/hades-platform/field-simulators/utils"
)

const (
	droneLogPrefix = "drone"

	DefaultNeighborhood = "Unknown"
)

var ErrNoActiveDrones = fmt.Errorf("no active drones found in the system")

// DroneClient is the part of the server api used by drone simulations
type DroneClient interface {
	ListActiveDrones(ctx context.Context) ([]schema.Drone, error)
	UploadDroneImage(ctx context.Context, upload schema.DroneUpload) ([]schema.DroneImage, error)
}

type DroneConfig struct {
	EarthquakeID uuid.UUID
	ImagesDir    string
	Interval     time.Duration
	Neighborhood string
}

// DroneSimulation uploads every local image as if a random active drone had taken it
type DroneSimulation struct {
	client DroneClient
	rand   utils.Rand
	scope  tally.Scope
	config DroneConfig
	wait   func(context.Context, time.Duration) error
}

func NewDroneSimulation(client DroneClient, r utils.Rand, scope tally.Scope, cfg DroneConfig) *DroneSimulation {
	if cfg.Neighborhood == "" {
		cfg.Neighborhood = DefaultNeighborhood
	}

	return &DroneSimulation{
		client: client,
		rand:   r,
		scope:  scope,
		config: cfg,
		wait:   sleep,
	}
}

// Run fails before uploading anything when there is no active drone or no image.
// An empty drone listing is a discovery error wrapping ErrNoActiveDrones.
// Failed uploads are counted and do not stop the run.
func (s *DroneSimulation) Run(ctx context.Context) (Summary, error) {
	drones, err := s.client.ListActiveDrones(ctx)
	if err != nil {
		return Summary{}, err
	}

	if len(drones) == 0 {
		return Summary{}, &hades.DiscoveryError{Resource: "active drones", Err: ErrNoActiveDrones}
	}

	log.WithFields(log.Fields{"prefix": droneLogPrefix, "count": len(drones)}).Info("found active drones")
	for _, d := range drones {
		log.WithFields(log.Fields{
			"prefix": droneLogPrefix,
			"id":     d.ID,
			"name":   d.Name,
			"model":  d.Model,
		}).Info("active drone")
	}

	images, err := ImageFiles(s.config.ImagesDir)
	if err != nil {
		return Summary{}, err
	}

	log.WithFields(log.Fields{"prefix": droneLogPrefix, "count": len(images)}).Info("found images to upload")

	rec := newRecorder(s.scope, len(images))
	for i, path := range images {
		drone := drones[s.rand.Intn(len(drones))]
		fields := log.Fields{
			"prefix":   droneLogPrefix,
			"progress": fmt.Sprintf("%d/%d", i+1, len(images)),
			"file":     filepath.Base(path),
			"drone":    drone.Name,
			"model":    drone.Model,
		}

		uploaded, err := s.client.UploadDroneImage(ctx, schema.DroneUpload{
			FilePath:     path,
			ContentType:  ContentType(path),
			EarthquakeID: s.config.EarthquakeID,
			DroneID:      drone.ID,
			Neighborhood: s.config.Neighborhood,
		})
		if err != nil {
			rec.fail()
			fields["error"] = err
			log.WithFields(fields).Error("upload failed")
		} else {
			rec.succeed()
			fields["image_id"] = "unknown"
			if len(uploaded) > 0 {
				fields["image_id"] = uploaded[0].ID
			}
			log.WithFields(fields).Info("upload succeeded")
		}

		if i < len(images)-1 {
			log.WithFields(log.Fields{"prefix": droneLogPrefix, "interval": s.config.Interval}).Debug("waiting before next upload")
			if err := s.wait(ctx, s.config.Interval); err != nil {
				return rec.summary, err
			}
		}
	}

	return rec.summary, nil
}
