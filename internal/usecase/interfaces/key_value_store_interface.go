package interfaces

import "context"

// Slot names of the persisted state layout. Each slot holds a JSON array.
const (
	SlotClients       = "clients"
	SlotCars          = "cars"
	SlotEmployees     = "employees"
	SlotServices      = "services"
	SlotServiceOrders = "service_orders"
)

// AllSlots lists every collection the shop persists.
var AllSlots = []string{SlotClients, SlotCars, SlotEmployees, SlotServices, SlotServiceOrders}

// IKeyValueStore abstracts the durable backing store.
//
// Set is a full replace of the named slot and must be atomic: a later Get
// sees either the previous payload or the new one, never a mix. Get on a slot
// never written reports found=false without error.
type IKeyValueStore interface {
	Get(ctx context.Context, name string) (payload []byte, found bool, err error)
	Set(ctx context.Context, name string, payload []byte) error
}
