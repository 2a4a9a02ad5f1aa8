package host

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"codeberg.org/tslocum/gotext"
	"golang.org/x/text/language"
)

//go:embed locales
var assetFS embed.FS

var englishIdentifier = []byte("en")

var (
	languageTags  []language.Tag
	languageNames [][]byte
	localesOnce   sync.Once
	localesErr    error
)

func init() {
	gotext.SetDomain("halfgammon-en")
}

// loadLocales registers every embedded translation. It only does work the
// first time it is called.
func loadLocales() error {
	localesOnce.Do(func() {
		entries, err := assetFS.ReadDir("locales")
		if err != nil {
			localesErr = fmt.Errorf("failed to list files in locales directory: %w", err)
			return
		}

		var availableTags = []language.Tag{
			language.MustParse("en_US"),
		}
		var availableNames = [][]byte{
			[]byte("en"),
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			availableTags = append(availableTags, language.MustParse(entry.Name()))
			availableNames = append(availableNames, []byte(entry.Name()))

			b, err := assetFS.ReadFile(fmt.Sprintf("locales/%s/%s.po", entry.Name(), entry.Name()))
			if err != nil {
				localesErr = fmt.Errorf("failed to read locale %s: %w", entry.Name(), err)
				return
			}

			po := gotext.NewPo()
			po.Parse(b)
			gotext.GetStorage().AddTranslator(fmt.Sprintf("halfgammon-%s", entry.Name()), po)
		}
		languageTags = availableTags
		languageNames = availableNames
	})
	return localesErr
}

// matchLanguage returns the name of the closest available locale.
func matchLanguage(identifier []byte) []byte {
	if len(identifier) == 0 || len(languageTags) == 0 {
		return englishIdentifier
	}

	tag, err := language.Parse(string(identifier))
	if err != nil {
		return englishIdentifier
	}
	var preferred = []language.Tag{tag}

	useLanguage, index, _ := language.NewMatcher(languageTags).Match(preferred...)
	useLanguageCode := useLanguage.String()
	if index < 0 || useLanguageCode == "" || strings.HasPrefix(useLanguageCode, "en") {
		return englishIdentifier
	}
	return languageNames[index]
}

func (h *Host) translate(message string, vars ...interface{}) string {
	return gotext.GetD(h.language, message, vars...)
}
