package dtformat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupLocaleDataMergesParents(t *testing.T) {
	data, err := LookupLocaleData("en-GB")
	require.NoError(t, err)

	assert.Equal(t, "dd/MM/y", data.DateFormats["short"])
	assert.Equal(t, "{1} 'at' {0}", data.DateTimeFormats["full"], "glue inherited from en")
	assert.Equal(t, HourCycle23, data.HourCycle)
	assert.Equal(t, "mon", data.FirstDayOfWeek)
	assert.Equal(t, "dd/MM/y", data.AvailableFormats["yMd"])
	assert.Equal(t, "h:mm a", data.AvailableFormats["hm"])
	assert.Equal(t, []string{"am", "pm"}, data.DayPeriods.Abbreviated)
	assert.Equal(t, []string{"BC", "AD"}, data.Eras.Abbreviated)
	assert.Equal(t, "d–d MMM y", data.IntervalFormats["yMMMd"]["d"])
	assert.Equal(t, "HH:mm – HH:mm", data.IntervalFormats["Hm"]["H"])
}

func TestLookupLocaleDataRegionFallsBackToLanguage(t *testing.T) {
	data, err := LookupLocaleData("es-MX")
	require.NoError(t, err)
	assert.Equal(t, "d/M/yy", data.DateFormats["short"])

	_, err = LookupLocaleData("tlh")
	assert.ErrorIs(t, err, ErrNoLocaleData)
}

func TestLookupLocaleDataReturnsCopy(t *testing.T) {
	first, err := LookupLocaleData("en")
	require.NoError(t, err)
	first.DateFormats["short"] = "changed"

	second, err := LookupLocaleData("en")
	require.NoError(t, err)
	assert.Equal(t, "M/d/yy", second.DateFormats["short"])
}

func TestSupportedLocales(t *testing.T) {
	locales := SupportedLocales()
	for _, locale := range []string{"en", "en-GB", "de", "es", "fr", "ja", "zh"} {
		assert.Contains(t, locales, locale)
	}
}

func TestLoadLocaleStoreOverlay(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "10-en.yaml"), `
locales:
  en:
    dateFormats:
      short: "MM/dd/yy"
  pt:
    hourCycle: h23
    dateFormats:
      short: "dd/MM/y"
`)
	writeFile(t, filepath.Join(dir, "20-pt_BR.json"), `{
  "locales": {
    "pt_BR": {
      "parent": "pt",
      "dateFormats": {"medium": "d 'de' MMM 'de' y"}
    }
  }
}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	store, err := loadLocaleStore(dir)
	require.NoError(t, err)

	en, err := store.resolve("en-US")
	require.NoError(t, err)
	assert.Equal(t, "MM/dd/yy", en.DateFormats["short"])
	assert.Equal(t, "MMM d, y", en.DateFormats["medium"], "untouched keys keep embedded values")

	locale, err := store.resolveLocale("pt-BR")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", locale.BaseName)
	assert.Equal(t, "dd/MM/y", locale.Data().DateFormats["short"])
	assert.Equal(t, "d 'de' MMM 'de' y", locale.Data().DateFormats["medium"])
	assert.Equal(t, HourCycle23, locale.Data().HourCycle)
}

func TestLoadLocaleStoreErrors(t *testing.T) {
	_, err := loadLocaleStore(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), "locales: [unclosed")
	_, err = loadLocaleStore(dir)
	assert.Error(t, err)
}

func TestResolveLocaleRejectsUnsupported(t *testing.T) {
	for _, tag := range []string{"", "  ", "not a tag!", "tlh-KL"} {
		_, err := ResolveLocale(tag)
		assert.ErrorIs(t, err, ErrUnsupportedLocale, "tag %q", tag)
	}
}

func TestResolveLocaleNormalizesTag(t *testing.T) {
	locale, err := ResolveLocale("fr_CA")
	require.NoError(t, err)

	assert.Equal(t, "fr-CA", locale.BaseName)
	assert.Equal(t, "fr-CA", locale.ID)
	assert.Equal(t, "gregorian", locale.Calendar)
	assert.Equal(t, "latn", locale.NumberingSystem)
	assert.Equal(t, "", locale.HourCycle)
	assert.NotNil(t, locale.Data())
}

func TestResolveLocaleCalendarExtension(t *testing.T) {
	tests := []struct {
		tag       string
		requested string
		applied   bool
	}{
		{"en-US", "", true},
		{"de-DE-u-ca-gregory", "gregory", true},
		{"en-US-u-ca-buddhist", "buddhist", false},
		{"ja-JP-u-ca-japanese", "japanese", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			locale, err := ResolveLocale(tt.tag)
			require.NoError(t, err)

			assert.Equal(t, "gregorian", locale.Calendar)
			assert.Equal(t, tt.requested, locale.RequestedCalendar())
			assert.Equal(t, tt.applied, locale.calendarApplied())
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
