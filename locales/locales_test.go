package locales_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"

	"bullion/locales"
	"bullion/testing/suite"
)

func Test_GetBundle(t *testing.T) {
	_, st := suite.New(t)

	bundle, err := locales.GetBundle(st.BaseDir)
	require.NoError(t, err)

	t.Run("should translate every english message to arabic", func(t *testing.T) {
		en := i18n.NewLocalizer(bundle, "en")
		ar := i18n.NewLocalizer(bundle, "ar")

		for _, id := range []string{"boardTitle", "regionError", "gold", "helpMessage"} {
			english, err := en.Localize(&i18n.LocalizeConfig{MessageID: id})
			require.NoError(t, err)

			arabic, err := ar.Localize(&i18n.LocalizeConfig{MessageID: id})
			require.NoError(t, err)
			require.NotEqual(t, english, arabic, id)
		}
	})

	t.Run("should fill template data", func(t *testing.T) {
		text, err := i18n.NewLocalizer(bundle, "en").Localize(&i18n.LocalizeConfig{
			MessageID:    "gram24k",
			TemplateData: map[string]any{"Currency": "EGP"},
		})
		require.NoError(t, err)
		require.Equal(t, "24K / gram (EGP)", text)
	})

	t.Run("should fail for a missing directory", func(t *testing.T) {
		_, err := locales.GetBundle(t.TempDir())
		require.Error(t, err)
	})
}

func Test_MessageFilesMatch(t *testing.T) {
	_, st := suite.New(t)

	read := func(name string) []string {
		raw, err := os.ReadFile(filepath.Join(st.BaseDir, "locales", name))
		require.NoError(t, err)

		messages := map[string]string{}
		require.NoError(t, json.Unmarshal(raw, &messages))

		ids := make([]string, 0, len(messages))
		for id := range messages {
			ids = append(ids, id)
		}
		return ids
	}

	en := read("active.en.json")

	// Then: Both languages carry the same messages and no unused ones
	require.ElementsMatch(t, en, read("active.ar.json"))
	require.NotContains(t, en, "refreshDoneMessage")
}
