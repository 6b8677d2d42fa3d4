package engine

import (
	"context"

	"github.com/enersim/usage-alert-service/pkg/models"
)

// Transport delivers one composed message to one phone number. Callers bound
// every call with the supplied context; implementations must return, not
// hang, when the context expires.
type Transport interface {
	SendMessage(ctx context.Context, to string, message string) (*models.SendResult, error)
	Ready(ctx context.Context) bool
}
