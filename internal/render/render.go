// Package render turns board snapshots into localized cards and chat text.
package render

import (
	"html"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"bullion/internal/board"
	"bullion/internal/config"
	"bullion/internal/display"
	"bullion/internal/model"
)

var (
	currencies = []model.Currency{model.USD, model.AED, model.EGP}
	purities   = []model.Purity{model.Purity24k, model.Purity21k}
	crossRates = []struct {
		from, to  model.Currency
		messageID string
	}{
		{model.USD, model.EGP, "usdToEgp"},
		{model.AED, model.EGP, "aedToEgp"},
	}
	regionTitles = map[model.Region]string{
		model.RegionPrimary:   "regionPrimaryTitle",
		model.RegionSecondary: "regionSecondaryTitle",
	}
)

// Line is one labelled value of a card. Class carries the change direction.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Extra string `json:"extra,omitempty"`
	Class string `json:"class,omitempty"`
}

// Card is the rendered form of one board region.
type Card struct {
	Region  model.Region `json:"region"`
	Title   string       `json:"title"`
	Status  board.Status `json:"status"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	AsOf    string       `json:"as_of,omitempty"`
	Lines   []Line       `json:"lines,omitempty"`
}

type Renderer struct {
	logger *slog.Logger
	bundle *i18n.Bundle
}

func New(logger *slog.Logger, bundle *i18n.Bundle) *Renderer {
	return &Renderer{logger: logger.With("component", "render"), bundle: bundle}
}

// Localize renders a message in lang, falling back to English and then to the message id.
func (that *Renderer) Localize(lang, messageID string, data map[string]any) string {
	if lang == "" {
		lang = config.DefaultLanguageCode
	}

	localizer := i18n.NewLocalizer(that.bundle, lang, config.DefaultLanguageCode)
	text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
	if text != "" {
		return text
	}

	that.logger.With("method", "Localize").Warn("message not found", "message_id", messageID, "language", lang, "error", err)
	return messageID
}

// Cards renders every region of the snapshot in board order.
func (that *Renderer) Cards(lang string, snapshot board.Snapshot) []Card {
	cards := make([]Card, 0, len(snapshot.Regions))
	for _, state := range snapshot.Regions {
		cards = append(cards, that.card(lang, state))
	}

	return cards
}

// Text renders the snapshot as Telegram HTML.
func (that *Renderer) Text(lang string, snapshot board.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("<b>" + html.EscapeString(that.Localize(lang, "boardTitle", nil)) + "</b>\n")

	for _, card := range that.Cards(lang, snapshot) {
		sb.WriteString("\n<b>" + html.EscapeString(card.Title) + "</b>\n")

		if card.Message != "" {
			sb.WriteString("<i>" + html.EscapeString(card.Message) + "</i>\n")
			continue
		}

		for _, line := range card.Lines {
			sb.WriteString(html.EscapeString(line.Label) + ": <b>" + html.EscapeString(line.Value) + "</b>")
			if line.Extra != "" {
				sb.WriteString(" " + html.EscapeString(line.Extra))
			}
			sb.WriteString("\n")
		}

		if card.AsOf != "" {
			sb.WriteString("<i>" + html.EscapeString(card.AsOf) + "</i>\n")
		}
	}

	return sb.String()
}

func (that *Renderer) card(lang string, state board.RegionState) Card {
	card := Card{Region: state.Region, Title: state.Title, Status: state.Status}
	if id, ok := regionTitles[state.Region]; ok {
		card.Title = that.Localize(lang, id, nil)
	}

	switch {
	case state.Status == board.StatusError:
		card.Message = that.Localize(lang, "regionError", nil)
		card.Error = state.Error
		return card
	case state.Report == nil:
		card.Message = that.Localize(lang, "regionLoading", nil)
		return card
	}

	report := state.Report
	card.Lines = append(card.Lines, that.quoteLines(lang, "gold", report.Gold)...)
	card.Lines = append(card.Lines, that.quoteLines(lang, "silver", report.Silver)...)

	for _, purity := range purities {
		for _, currency := range currencies {
			amount, ok := report.Prices.Gram(currency, purity)
			if !ok {
				continue
			}

			card.Lines = append(card.Lines, Line{
				Label: that.Localize(lang, "gram"+string(purity), map[string]any{"Currency": currency}),
				Value: display.Money(amount, currency),
			})
		}
	}

	for _, cr := range crossRates {
		rate, ok := report.Prices.Rate(cr.from, cr.to)
		if !ok {
			continue
		}

		line := Line{Label: that.Localize(lang, cr.messageID, nil), Value: display.Rate(rate)}
		if report.FXSource == model.FXFallback {
			line.Extra = that.Localize(lang, "fxFallback", nil)
		}
		card.Lines = append(card.Lines, line)
	}

	if report.Gold.AsOf != "" {
		card.AsOf = that.Localize(lang, "asOf", map[string]any{"AsOf": report.Gold.AsOf})
	}

	return card
}

func (that *Renderer) quoteLines(lang, messageID string, quote model.SpotQuote) []Line {
	line := Line{Label: that.Localize(lang, messageID, nil), Value: display.Money(quote.PricePerTroyOunce, model.USD)}

	if quote.ChangeAbsolute != nil {
		line.Extra = display.Change(*quote.ChangeAbsolute, model.USD)
		line.Class = display.Direction(*quote.ChangeAbsolute)
		if quote.ChangePercent != nil {
			line.Extra += " " + display.Percent(*quote.ChangePercent)
		}
	}

	lines := []Line{line}
	if quote.PriorClose != nil {
		lines = append(lines, Line{Label: that.Localize(lang, "priorClose", nil), Value: display.Money(*quote.PriorClose, model.USD)})
	}

	return lines
}
