package handlers

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
)

func writeAudit(
	d *audit.Dispatcher,
	action string,
	entity string,
	entityID string,
	meta any,
) {
	d.Dispatch(audit.Event{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}
