package assignment

import "pickup-service/internal/entities"

// driverTransitions единственные переходы, которые водитель делает через AdvanceStatus.
// Взятие в работу (self assign), отказ и отмена идут отдельными операциями.
var driverTransitions = map[entities.PickupStatusType]entities.PickupStatusType{
	entities.PickupAssigned:   entities.PickupInProgress,
	entities.PickupInProgress: entities.PickupCompleted,
}

func canAdvance(from, to entities.PickupStatusType) bool {
	next, ok := driverTransitions[from]
	return ok && next == to
}

// initialStatus заявка с назначенным временем сразу попадает в scheduled.
func initialStatus(create entities.PickupCreate) entities.PickupStatusType {
	if create.ScheduledAt != nil {
		return entities.PickupScheduled
	}
	return entities.PickupPending
}
