package driver

import (
	"pickup-service/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:         d.ID,
		TenantID:   d.TenantID,
		Name:       d.Name,
		Phone:      d.Phone,
		Status:     entities.DriverStatusType(d.Status),
		LastSeenAt: d.LastSeenAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{
		ID:       driverModify.ID,
		TenantID: driverModify.TenantID,
		Name:     driverModify.Name,
		Phone:    driverModify.Phone,
	}

	if driverModify.Status != nil {
		status := driverModify.Status.String()
		driverDB.Status = &status
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}

func EventToDomain(e *DriverStatusEventDB) *entities.DriverStatusEvent {
	if e == nil {
		return nil
	}
	return &entities.DriverStatusEvent{
		ID:        e.ID,
		DriverID:  e.DriverID,
		OldStatus: entities.DriverStatusType(e.OldStatus),
		NewStatus: entities.DriverStatusType(e.NewStatus),
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt,
	}
}

func statusStrings(statuses []entities.DriverStatusType) []string {
	result := make([]string, len(statuses))
	for i, status := range statuses {
		result[i] = status.String()
	}
	return result
}
