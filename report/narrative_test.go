package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hades-platform/field-simulators/utils"
)

func TestNarrativeNoDamage(t *testing.T) {
	loc := utils.NewLocalizer("tr")
	a := Analysis{}

	// wording of the "no collapse, roads open" branch of every template
	expected := [NarrativeCount][]string{
		{"orta düzeyde", "Yollar geçişe açıktır."},
		{"0 çökmüş yapı", "Kontrollü giriş yapılabilir."},
		{"Tam yıkım gözlemlenmemiştir.", "Ulaşım ağı sağlamdır."},
	}

	for variant := 0; variant < NarrativeCount; variant++ {
		text, err := Narrative(loc, variant, a, "Merkez")
		require.NoError(t, err)
		assert.NotEmpty(t, text)
		assert.Contains(t, text, "Merkez")
		for _, phrase := range expected[variant] {
			assert.Contains(t, text, phrase, "template %d", variant+1)
		}
	}
}

func TestNarrativeSevereDamage(t *testing.T) {
	loc := utils.NewLocalizer("tr")
	a := Analysis{Collapsed: 3, Damaged: 9, Blocked: 2}

	expected := [NarrativeCount][]string{
		{"ciddi hasar", "3 bina tamamen çökmüş", "9 yapıda", "2 yol enkaz nedeniyle kapalıdır.", "acil olarak başlatılmalıdır."},
		{"3 çökmüş yapı, 9 hasarlı bina, 2 tıkalı yol.", "acil tahliye önerilir."},
		{"12 yapıda hasar", "Bunlardan 3 tanesi tamamen yıkılmıştır.", "Ulaşım 2 noktada engellenmiştir."},
	}

	for variant := 0; variant < NarrativeCount; variant++ {
		text, err := Narrative(loc, variant, a, "Liman Alanı")
		require.NoError(t, err)
		assert.Contains(t, text, "Liman Alanı")
		for _, phrase := range expected[variant] {
			assert.Contains(t, text, phrase, "template %d", variant+1)
		}
	}
}

func TestNarrativeEvacuationThreshold(t *testing.T) {
	loc := utils.NewLocalizer("tr")

	text, err := Narrative(loc, 1, Analysis{Collapsed: 2, Damaged: 4}, "Merkez")
	require.NoError(t, err)
	assert.Equal(t, "Merkez alanında deprem sonrası değerlendirme tamamlanmıştır. Tespit edilen hasarlar: 2 çökmüş yapı, 4 hasarlı bina, 0 tıkalı yol. Kontrollü giriş yapılabilir.", text)
}

func TestNarrativeEnglish(t *testing.T) {
	loc := utils.NewLocalizer("en")

	text, err := Narrative(loc, 0, Analysis{}, "Merkez")
	require.NoError(t, err)
	assert.Contains(t, text, "Merkez")
	assert.Contains(t, text, "Roads are open to traffic.")
}

func TestNarrativeUnknownVariant(t *testing.T) {
	_, err := Narrative(utils.NewLocalizer("tr"), NarrativeCount, Analysis{}, "Merkez")
	assert.Error(t, err)
}

func TestTitle(t *testing.T) {
	loc := utils.NewLocalizer("tr")

	title, err := Title(loc, "Kahramanmaraş", "img-001.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Kahramanmaraş Hasar Raporu - img-001.jpg", title)

	title, err = Title(loc, "", "img-002.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Deprem Hasar Raporu - img-002.jpg", title)
}
