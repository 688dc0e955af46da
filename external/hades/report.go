package hades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/hades-platform/field-simulators/schema"
)

const (
	pendingImagesPath = "/reports/pending-images"
	reportsPath       = "/reports"
)

// ReportError is returned when a single report cannot be created
type ReportError struct {
	DroneImageID uuid.UUID
	Err          error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("Failed to create report for image %s: %s", e.DroneImageID, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// ListPendingImages returns the drone images without a report. An empty list is not an error.
func (c *Client) ListPendingImages(ctx context.Context) ([]schema.PendingImage, error) {
	var images []schema.PendingImage
	if err := c.list(ctx, "pending images", pendingImagesPath, &images); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("list pending images")
		return nil, err
	}
	return images, nil
}

// CreateReport posts report as JSON and returns the report stored by the server
func (c *Client) CreateReport(ctx context.Context, report schema.Report) (*schema.Report, error) {
	body, err := json.Marshal(report)
	if err != nil {
		return nil, &ReportError{DroneImageID: report.DroneImageID, Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, reportsPath, bytes.NewReader(body))
	if err != nil {
		return nil, &ReportError{DroneImageID: report.DroneImageID, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var created schema.Report
	if err := c.do(req, &created); err != nil {
		return nil, &ReportError{DroneImageID: report.DroneImageID, Err: err}
	}

	return &created, nil
}
