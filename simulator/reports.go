package simulator

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/hades-platform/field-simulators/schema"
)

const (
	reportLogPrefix = "report"

	DefaultReportDelay = 200 * time.Millisecond
)

// ReportClient is the part of the server api used by report generation
type ReportClient interface {
	ListPendingImages(ctx context.Context) ([]schema.PendingImage, error)
	CreateReport(ctx context.Context, report schema.Report) (*schema.Report, error)
}

// Synthesizer builds the report of a pending image
type Synthesizer interface {
	Synthesize(image schema.PendingImage) (schema.Report, error)
}

// ReportGeneration creates a synthesized report for every image which has none
type ReportGeneration struct {
	client      ReportClient
	synthesizer Synthesizer
	scope       tally.Scope
	delay       time.Duration
	wait        func(context.Context, time.Duration) error
}

func NewReportGeneration(client ReportClient, synthesizer Synthesizer, scope tally.Scope, delay time.Duration) *ReportGeneration {
	return &ReportGeneration{
		client:      client,
		synthesizer: synthesizer,
		scope:       scope,
		delay:       delay,
		wait:        sleep,
	}
}

// Run returns an empty summary and no error when nothing is pending.
// Failed reports are counted and do not stop the run.
func (g *ReportGeneration) Run(ctx context.Context) (Summary, error) {
	images, err := g.client.ListPendingImages(ctx)
	if err != nil {
		return Summary{}, err
	}

	if len(images) == 0 {
		log.WithField("prefix", reportLogPrefix).Info("No pending images found. All images already have reports.")
		return Summary{}, nil
	}

	log.WithFields(log.Fields{"prefix": reportLogPrefix, "count": len(images)}).Info("found images without reports")

	rec := newRecorder(g.scope, len(images))
	for i, image := range images {
		fields := log.Fields{
			"prefix":     reportLogPrefix,
			"progress":   fmt.Sprintf("%d/%d", i+1, len(images)),
			"file":       image.FileName,
			"earthquake": valueOrUnknown(image.EarthquakeName),
			"drone":      valueOrUnknown(image.DroneName),
		}

		created, err := g.submit(ctx, image)
		if err != nil {
			rec.fail()
			fields["error"] = err
			log.WithFields(fields).Error("report failed")
		} else {
			rec.succeed()
			fields["severity"] = created.SeverityScore
			fields["collapsed"] = created.CollapsedBuildings
			fields["damaged"] = created.DamagedStructures
			fields["blocked"] = created.BlockedRoads
			log.WithFields(fields).Info("report created")
		}

		if i < len(images)-1 {
			if err := g.wait(ctx, g.delay); err != nil {
				return rec.summary, err
			}
		}
	}

	return rec.summary, nil
}

func (g *ReportGeneration) submit(ctx context.Context, image schema.PendingImage) (*schema.Report, error) {
	report, err := g.synthesizer.Synthesize(image)
	if err != nil {
		return nil, err
	}
	return g.client.CreateReport(ctx, report)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
