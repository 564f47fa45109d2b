package model

import (
	"time"

	"github.com/google/uuid"
)

// PriceSnapshot is the archived, flattened form of a Report.
// Optional prices stay NULL when the report did not carry them.
type PriceSnapshot struct {
	ID                uint      `gorm:"column:id;primaryKey"`
	CycleID           uuid.UUID `gorm:"column:cycle_id;type:uuid;index"`
	Source            string    `gorm:"column:source;index:source_fetched_at"`
	FetchedAt         time.Time `gorm:"column:fetched_at;index:source_fetched_at"`
	AsOf              string    `gorm:"column:as_of"`
	GoldOunceUSD      float64   `gorm:"column:gold_ounce_usd"`
	SilverOunceUSD    float64   `gorm:"column:silver_ounce_usd"`
	GoldChange        *float64  `gorm:"column:gold_change"`
	GoldChangePercent *float64  `gorm:"column:gold_change_percent"`
	FXSource          FXSource  `gorm:"column:fx_source"`
	USDToEGP          *float64  `gorm:"column:usd_to_egp"`
	USDGram24k        float64   `gorm:"column:usd_gram_24k"`
	USDGram21k        float64   `gorm:"column:usd_gram_21k"`
	AEDGram24k        float64   `gorm:"column:aed_gram_24k"`
	AEDGram21k        float64   `gorm:"column:aed_gram_21k"`
	EGPGram24k        *float64  `gorm:"column:egp_gram_24k"`
	EGPGram21k        *float64  `gorm:"column:egp_gram_21k"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (*PriceSnapshot) TableName() string {
	return "price_snapshots"
}

func NewPriceSnapshot(report *Report) *PriceSnapshot {
	snapshot := &PriceSnapshot{
		CycleID:           report.CycleID,
		Source:            report.Source,
		FetchedAt:         report.FetchedAt,
		AsOf:              report.Gold.AsOf,
		GoldOunceUSD:      report.Gold.PricePerTroyOunce,
		SilverOunceUSD:    report.Silver.PricePerTroyOunce,
		GoldChange:        report.Gold.ChangeAbsolute,
		GoldChangePercent: report.Gold.ChangePercent,
		FXSource:          report.FXSource,
	}

	snapshot.USDGram24k, _ = report.Prices.Gram(USD, Purity24k)
	snapshot.USDGram21k, _ = report.Prices.Gram(USD, Purity21k)
	snapshot.AEDGram24k, _ = report.Prices.Gram(AED, Purity24k)
	snapshot.AEDGram21k, _ = report.Prices.Gram(AED, Purity21k)

	if v, ok := report.Prices.Gram(EGP, Purity24k); ok {
		snapshot.EGPGram24k = &v
	}
	if v, ok := report.Prices.Gram(EGP, Purity21k); ok {
		snapshot.EGPGram21k = &v
	}
	if v, ok := report.Prices.Rate(USD, EGP); ok {
		snapshot.USDToEGP = &v
	}

	return snapshot
}
