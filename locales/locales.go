package locales

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Languages lists the translations shipped in this directory.
var Languages = []language.Tag{language.English, language.Arabic}

func GetBundle(baseDir string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, tag := range Languages {
		name := fmt.Sprintf("active.%s.json", tag)
		if _, err := bundle.LoadMessageFile(filepath.Join(baseDir, "locales", name)); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}

	return bundle, nil
}

func MustGetBundle(baseDir string) *i18n.Bundle {
	bundle, err := GetBundle(baseDir)
	if err != nil {
		panic(err)
	}

	return bundle
}
