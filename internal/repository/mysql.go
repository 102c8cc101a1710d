package repository

import (
	"fmt"
	"time"

	model "coin-market/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// lotRow is the lots table schema
type lotRow struct {
	ID          int `gorm:"primaryKey"`
	Title       string
	Description string
	StartingBid decimal.Decimal `gorm:"type:decimal(20,2)"`
	CurrentBid  decimal.Decimal `gorm:"type:decimal(20,2)"`
	EndTime     time.Time
	Image       string
	Bids        []bidRow `gorm:"foreignKey:LotID"`
}

func (lotRow) TableName() string { return "auction_lots" }

// bidRow is the bids table schema; the primary key is (lot_id, seq) because
// bid ids are sequence numbers local to their lot.
type bidRow struct {
	LotID     int             `gorm:"primaryKey;autoIncrement:false"`
	Seq       int             `gorm:"primaryKey;autoIncrement:false"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2)"`
	Bidder    string
	Timestamp time.Time
}

func (bidRow) TableName() string { return "auction_bids" }

// coinRow is the coins table schema
type coinRow struct {
	ID              int `gorm:"primaryKey"`
	Title           string
	Price           string
	Weight          string
	Year            string
	Description     string
	Image           string
	HistoricalValue string
}

func (coinRow) TableName() string { return "coins" }

// OpenMySQL connects to MySQL and migrates the marketplace schema.
func OpenMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.AutoMigrate(&lotRow{}, &bidRow{}, &coinRow{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

func lotRowToModel(row lotRow) model.AuctionLot {
	bids := make([]model.Bid, 0, len(row.Bids))
	for _, b := range row.Bids {
		bids = append(bids, model.Bid{
			ID:        b.Seq,
			Amount:    b.Amount,
			Bidder:    b.Bidder,
			Timestamp: b.Timestamp,
		})
	}
	return model.AuctionLot{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		StartingBid: row.StartingBid,
		CurrentBid:  row.CurrentBid,
		BidCount:    len(bids),
		EndTime:     row.EndTime,
		Image:       row.Image,
		Bids:        bids,
	}
}

func coinRowToModel(row coinRow) model.Coin {
	return model.Coin(row)
}

func coinModelToRow(coin model.Coin) coinRow {
	return coinRow(coin)
}
