package cmd

import "time"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost             string
	KafkaStatusEventTopic string

	// OfferTTL is how long an order may sit in the writer pool before the
	// expiry job restamps its offer.
	OfferTTL time.Duration

	// ReworkLimit is the number of QC rejections after which an order
	// escalates instead of going back to the writer.
	ReworkLimit int

	// Writer pay parameters, all in cents.
	BasePayCents       int64
	PerUnitBonusCents  int64
	ReworkPenaltyCents int64
}
