package events

import (
	"context"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
)

// Unsubscribe stops delivery to a listener. Calling it more than once is a no-op.
type Unsubscribe func()

// Listener receives change notifications. It must not block for long.
type Listener func(domain.ChangeEvent)

// ChangeFeed fans out shift change notifications. Delivery order relative to the
// caller's own writes is not guaranteed, so listeners reload state instead of patching it.
type ChangeFeed interface {
	Publish(ctx context.Context, event domain.ChangeEvent)

	// SubscribeShifts delivers every shift-level change.
	SubscribeShifts(listener Listener) Unsubscribe

	// SubscribeShift delivers changes to one shift record and its incidents.
	SubscribeShift(shiftID string, listener Listener) Unsubscribe

	// SubscribeMovements delivers changes to the movements of one shift.
	SubscribeMovements(shiftID string, listener Listener) Unsubscribe
}
