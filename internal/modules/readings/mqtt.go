package readings

import (
	"log/slog"
	"time"

	"tempdash-server/internal/modules/readings/repository"
	"tempdash-server/internal/mqtt"
)

// RegisterMQTTHandler routes telemetry messages from the broker through the
// same repository as HTTP ingestion, applying the same defaults.
func RegisterMQTTHandler(subscriber mqtt.MQTTSubscriber, repo repository.ReadingsRepository, defaultLocation string, logger *slog.Logger) {
	subscriber.SetMessageHandler(func(telemetry mqtt.Telemetry) error {
		ts := time.Now().UnixMilli()
		if telemetry.Timestamp != nil {
			ts = *telemetry.Timestamp
		}
		location := telemetry.Location
		if location == "" {
			location = defaultLocation
		}

		id, err := repo.Insert(*telemetry.Temperature, telemetry.Humidity, location, ts)
		if err != nil {
			logger.Error("failed to insert reading",
				"location", location,
				"error", err,
			)
			return err
		}

		logger.Debug("stored telemetry reading",
			"id", id,
			"location", location,
			"timestamp", ts,
		)
		return nil
	})
}
