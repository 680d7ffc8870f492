package notify

import "go.uber.org/zap"

// Dispatcher delivers mail off the request path. Delivery is best-effort by
// design: a failed or dropped email must never fail the operation that
// triggered it.
type Dispatcher struct {
	sender Sender
	queue  chan Email
	log    *zap.Logger
}

func NewDispatcher(sender Sender, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Email, 100),
		log:    log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for e := range d.queue {
		if err := d.sender.Send(e); err != nil {
			d.log.Warn("email delivery failed",
				zap.String("to", e.To),
				zap.String("subject", e.Subject),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(e Email) {
	select {
	case d.queue <- e:
	default:
		// queue full: drop rather than block the API
		d.log.Warn("notify queue full, dropping email", zap.String("to", e.To))
	}
}
