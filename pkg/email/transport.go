package email

import (
	"context"
	"fmt"

	"portfolio-backend/config"
)

// NewTransport builds the transport selected by cfg.Driver
func NewTransport(ctx context.Context, cfg config.MailConfig) (Transport, error) {
	switch cfg.Driver {
	case config.MailDriverSES:
		return NewSESTransportForRegion(ctx, cfg.AWSRegion)
	case config.MailDriverSMTP, "":
		return NewSMTPTransport(cfg), nil
	default:
		return nil, fmt.Errorf("unknown MAIL_DRIVER %q", cfg.Driver)
	}
}
