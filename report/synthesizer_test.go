package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hades-platform/field-simulators/schema"
	"github.com/hades-platform/field-simulators/utils"
)

// scriptedRand replays fixed draws so the sampled report is known in advance
type scriptedRand struct {
	t     *testing.T
	ints  []int
	float float64
}

func (r *scriptedRand) Intn(n int) int {
	require.NotEmpty(r.t, r.ints, "unexpected Intn draw")
	v := r.ints[0]
	r.ints = r.ints[1:]
	require.True(r.t, v < n, "scripted value %d out of range %d", v, n)
	return v
}

func (r *scriptedRand) Float64() float64 {
	return r.float
}

func TestSynthesize(t *testing.T) {
	imageID := uuid.New()
	r := &scriptedRand{
		t: t,
		// collapsed, extra damaged, blocked, location, template
		ints:  []int{2, 5, 1, 0, 1},
		float: 0.185,
	}

	s := NewSynthesizer(r, "tr")
	report, err := s.Synthesize(schema.PendingImage{
		ID:             imageID,
		FileName:       "img-001.jpg",
		EarthquakeName: "Kahramanmaraş",
	})
	require.NoError(t, err)

	assert.Equal(t, schema.Report{
		DroneImageID:       imageID,
		Title:              "Kahramanmaraş Hasar Raporu - img-001.jpg",
		Location:           "Merkez",
		Report:             "Merkez alanında deprem sonrası değerlendirme tamamlanmıştır. Tespit edilen hasarlar: 2 çökmüş yapı, 7 hasarlı bina, 1 tıkalı yol. Kontrollü giriş yapılabilir.",
		CollapsedBuildings: 2,
		DamagedStructures:  7,
		BlockedRoads:       1,
		SeverityScore:      6,
	}, report)
	assert.Empty(t, r.ints, "all scripted draws must be used")
}

func TestSynthesizeInvariants(t *testing.T) {
	s := NewSynthesizer(utils.NewRand(2023), "tr")

	for i := 0; i < 500; i++ {
		report, err := s.Synthesize(schema.PendingImage{ID: uuid.New(), FileName: "img.png"})
		require.NoError(t, err)

		assert.True(t, report.DamagedStructures >= report.CollapsedBuildings)
		assert.True(t, report.SeverityScore >= 0 && report.SeverityScore <= MaxSeverityScore)
		assert.Contains(t, Locations, report.Location)
		assert.Contains(t, report.Report, report.Location)
		assert.Equal(t, "Deprem Hasar Raporu - img.png", report.Title)
	}
}
