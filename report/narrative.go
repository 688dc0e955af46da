package report

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// NarrativeCount is the number of narrative templates available in every language
const NarrativeCount = 3

// Locations are the districts a report can be attributed to
var Locations = []string{
	"Merkez", "Sahil Bölgesi", "Konut Alanı", "Sanayi Bölgesi",
	"Liman Alanı", "Ticaret Merkezi", "Tarihi Bölge", "Hastane Çevresi",
	"Üniversite Kampüsü", "Toplu Konut Alanı", "Kıyı Şeridi", "Yerleşim Alanı",
}

// Narrative renders template number variant (0 based) for the analysis at location.
// The wording depends only on its arguments.
func Narrative(loc *i18n.Localizer, variant int, a Analysis, location string) (string, error) {
	if variant < 0 || variant >= NarrativeCount {
		return "", fmt.Errorf("narrative template %d does not exist", variant)
	}

	return loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("report.narrative.%d", variant+1),
		TemplateData: map[string]interface{}{
			"Location":  location,
			"Collapsed": a.Collapsed,
			"Damaged":   a.Damaged,
			"Blocked":   a.Blocked,
			"Affected":  a.Collapsed + a.Damaged,
		},
	})
}

// Title is "<earthquake> Hasar Raporu - <file>" in Turkish, with a generic
// earthquake name when the image has none
func Title(loc *i18n.Localizer, earthquakeName, fileName string) (string, error) {
	if earthquakeName == "" {
		name, err := loc.Localize(&i18n.LocalizeConfig{MessageID: "report.default_earthquake"})
		if err != nil {
			return "", err
		}
		earthquakeName = name
	}

	return loc.Localize(&i18n.LocalizeConfig{
		MessageID: "report.title",
		TemplateData: map[string]interface{}{
			"EarthquakeName": earthquakeName,
			"FileName":       fileName,
		},
	})
}
