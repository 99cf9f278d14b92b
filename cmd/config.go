package cmd

import (
	"errors"
	"fmt"
	"time"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost                string
	KafkaOrderSubmittedTopic string

	// Freight is the fixed delivery fee added to delivery orders.
	Freight kernel.Money

	SessionTTL            time.Duration
	SessionExpirySchedule string
	OrderRelaySchedule    string
	RelayBatchSize        int

	// WhatsAppNumbers is the operator number of every store.
	WhatsAppNumbers map[kernel.Location]string
}

// DSN builds the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Validate reports every missing setting at once.
func (c Config) Validate() error {
	var errList []error
	required := map[string]string{
		"HTTP_PORT":                   c.HTTPPort,
		"DB_HOST":                     c.DBHost,
		"DB_NAME":                     c.DBName,
		"KAFKA_HOST":                  c.KafkaHost,
		"KAFKA_ORDER_SUBMITTED_TOPIC": c.KafkaOrderSubmittedTopic,
	}
	for key, value := range required {
		if value == "" {
			errList = append(errList, errs.NewValueIsRequiredError(key))
		}
	}
	for _, location := range kernel.Locations() {
		if c.WhatsAppNumbers[location] == "" {
			errList = append(errList, errs.NewValueIsRequiredError("whatsapp number for "+location.Code()))
		}
	}
	if c.SessionTTL <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("SESSION_TTL", c.SessionTTL, "1s", "max"))
	}
	return errors.Join(errList...)
}
