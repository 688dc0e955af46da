package simulator

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"

	"github.com/hades-platform/field-simulators/report"
	"github.com/hades-platform/field-simulators/schema"
	"github.com/hades-platform/field-simulators/simulator/mocks"
	"github.com/hades-platform/field-simulators/utils"
)

func pendingImages(n int) []schema.PendingImage {
	images := make([]schema.PendingImage, 0, n)
	for i := 0; i < n; i++ {
		images = append(images, schema.PendingImage{
			ID:             uuid.New(),
			FileName:       fmt.Sprintf("img-%03d.jpg", i+1),
			EarthquakeName: "Kahramanmaraş",
			DroneName:      "Kartal-1",
		})
	}
	return images
}

func TestReportGenerationRun(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	images := pendingImages(5)
	failing := map[uuid.UUID]bool{images[1].ID: true, images[3].ID: true}

	c := mocks.NewMockReportClient(ctl)
	c.EXPECT().ListPendingImages(gomock.Any()).Return(images, nil).Times(1)

	var submitted []schema.Report
	c.EXPECT().CreateReport(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r schema.Report) (*schema.Report, error) {
			submitted = append(submitted, r)
			if failing[r.DroneImageID] {
				return nil, fmt.Errorf("HTTP 400: report already exists")
			}
			id := uuid.New()
			r.ID = &id
			return &r, nil
		}).Times(5)

	scope := tally.NewTestScope("report", nil)
	g := NewReportGeneration(c, report.NewSynthesizer(utils.NewRand(42), "tr"), scope, DefaultReportDelay)

	var waits []time.Duration
	g.wait = recordWaits(&waits)

	summary, err := g.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Summary{Succeeded: 3, Failed: 2, Total: 5}, summary)
	assert.Len(t, waits, 4)

	for i, r := range submitted {
		assert.Equal(t, images[i].ID, r.DroneImageID, "reports are submitted in listing order")
		assert.Equal(t, fmt.Sprintf("Kahramanmaraş Hasar Raporu - %s", images[i].FileName), r.Title)
		assert.True(t, r.DamagedStructures >= r.CollapsedBuildings)
	}

	assert.Equal(t, map[string]int64{"report.success": 3, "report.failure": 2}, counterValues(scope))
}

func TestReportGenerationNothingPending(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockReportClient(ctl)
	c.EXPECT().ListPendingImages(gomock.Any()).Return([]schema.PendingImage{}, nil).Times(1)
	c.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	g := NewReportGeneration(c, report.NewSynthesizer(utils.NewRand(1), "tr"), nil, DefaultReportDelay)

	summary, err := g.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}

func TestReportGenerationDiscoveryError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	discoveryErr := fmt.Errorf("HTTP 401: unauthorized")

	c := mocks.NewMockReportClient(ctl)
	c.EXPECT().ListPendingImages(gomock.Any()).Return(nil, discoveryErr).Times(1)

	g := NewReportGeneration(c, report.NewSynthesizer(utils.NewRand(1), "tr"), nil, DefaultReportDelay)

	_, err := g.Run(context.Background())
	assert.Equal(t, discoveryErr, err)
}

func TestSleep(t *testing.T) {
	assert.NoError(t, sleep(context.Background(), time.Millisecond))
	assert.NoError(t, sleep(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, sleep(ctx, time.Hour))
}
