package hades

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hades-platform/field-simulators/schema"
)

const (
	activeDronesPath = "/images/active-drones"
	droneUploadPath  = "/images/drone-upload"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadError is returned when a single image upload fails
type UploadError struct {
	FileName string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("Failed to upload %s: %s", e.FileName, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// ListActiveDrones returns the drones currently in ACTIVE status. An empty list is not an error.
func (c *Client) ListActiveDrones(ctx context.Context) ([]schema.Drone, error) {
	var drones []schema.Drone
	if err := c.list(ctx, "active drones", activeDronesPath, &drones); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("list active drones")
		return nil, err
	}
	return drones, nil
}

// UploadDroneImage posts one image file as a multipart form on behalf of a drone
func (c *Client) UploadDroneImage(ctx context.Context, upload schema.DroneUpload) ([]schema.DroneImage, error) {
	fileName := filepath.Base(upload.FilePath)

	body, contentType, err := droneUploadForm(upload)
	if err != nil {
		return nil, &UploadError{FileName: fileName, Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, droneUploadPath, body)
	if err != nil {
		return nil, &UploadError{FileName: fileName, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	var images []schema.DroneImage
	if err := c.do(req, &images); err != nil {
		return nil, &UploadError{FileName: fileName, Err: err}
	}

	return images, nil
}

func droneUploadForm(upload schema.DroneUpload) (io.Reader, string, error) {
	f, err := os.Open(upload.FilePath)
	if err != nil {
		return nil, "", errors.Wrap(err, "open image")
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`,
		quoteEscaper.Replace(filepath.Base(upload.FilePath))))
	h.Set("Content-Type", upload.ContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", errors.Wrap(err, "create file part")
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", errors.Wrap(err, "read image")
	}

	fields := []struct {
		name  string
		value string
	}{
		{"earthquakeId", upload.EarthquakeID.String()},
		{"droneId", upload.DroneID.String()},
		{"neighborhood", upload.Neighborhood},
	}
	for _, field := range fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", errors.Wrap(err, "write "+field.name)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart form")
	}

	return &buf, w.FormDataContentType(), nil
}
