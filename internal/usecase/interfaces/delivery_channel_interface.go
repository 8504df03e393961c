package interfaces

import (
	"context"
	"encoding/json"
)

// IDeliveryChannel posts a JSON record to the outbound automation channel.
//
// Implementations enforce their own timeout and never retry.
type IDeliveryChannel interface {
	Deliver(ctx context.Context, record json.RawMessage) (status int, body []byte, err error)
}
