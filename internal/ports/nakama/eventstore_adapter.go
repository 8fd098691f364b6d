package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"liaptui/internal/ports"
)

// eventCollection stores the ordered event history, one object per event,
// keyed so lexicographic listing follows sequence order.
const eventCollection = "liaptui_match_events"

type storageEventSink struct {
	nk runtime.NakamaModule
}

// NewStorageEventSink persists match events into Nakama storage.
func NewStorageEventSink(nk runtime.NakamaModule) ports.EventSink {
	return &storageEventSink{nk: nk}
}

func (s *storageEventSink) Append(ctx context.Context, matchID string, records []ports.EventRecord) error {
	if len(records) == 0 {
		return nil
	}

	writes := make([]*runtime.StorageWrite, 0, len(records))
	for _, rec := range records {
		value, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal event %d: %w", rec.Sequence, err)
		}
		writes = append(writes, &runtime.StorageWrite{
			Collection:      eventCollection,
			Key:             fmt.Sprintf("%s:%010d", matchID, rec.Sequence),
			Value:           string(value),
			PermissionRead:  2,
			PermissionWrite: 0,
		})
	}

	_, err := s.nk.StorageWrite(ctx, writes)
	return err
}
