package report

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/hades-platform/field-simulators/schema"
	"github.com/hades-platform/field-simulators/utils"
)

// Synthesizer builds damage reports for pending images. It performs no I/O;
// given the same random sequence it produces the same reports.
type Synthesizer struct {
	rand      utils.Rand
	localizer *i18n.Localizer
}

func NewSynthesizer(r utils.Rand, lang string) *Synthesizer {
	return &Synthesizer{
		rand:      r,
		localizer: utils.NewLocalizer(lang),
	}
}

// Synthesize samples an analysis, a location and a narrative template for image
func (s *Synthesizer) Synthesize(image schema.PendingImage) (schema.Report, error) {
	a := Analyze(s.rand)
	location := Locations[s.rand.Intn(len(Locations))]

	text, err := Narrative(s.localizer, s.rand.Intn(NarrativeCount), a, location)
	if err != nil {
		return schema.Report{}, err
	}

	title, err := Title(s.localizer, image.EarthquakeName, image.FileName)
	if err != nil {
		return schema.Report{}, err
	}

	return schema.Report{
		DroneImageID:       image.ID,
		Title:              title,
		Location:           location,
		Report:             text,
		CollapsedBuildings: a.Collapsed,
		DamagedStructures:  a.Damaged,
		BlockedRoads:       a.Blocked,
		SeverityScore:      a.SeverityScore,
	}, nil
}
