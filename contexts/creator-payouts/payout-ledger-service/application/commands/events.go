package commands

import (
	"encoding/json"
	"time"

	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

const EventTypeCreatorRankPromoted = "creator.rank.promoted"

func newPayoutEnvelope(
	eventID string,
	eventType string,
	creatorName string,
	occurredAt time.Time,
	data any,
) (ports.EventEnvelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       occurredAt.UTC(),
		SourceService:    "payout-ledger-service",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "creator_name",
		PartitionKey:     creatorName,
		Data:             payload,
	}, nil
}
