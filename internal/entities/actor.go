package entities

type ActorType string

const (
	ActorDriver ActorType = "driver"
	ActorAdmin  ActorType = "admin"
	ActorSystem ActorType = "system"
)

func (t ActorType) String() string {
	return string(t)
}

// Actor явная пара (кто, в каком тенанте), передается в каждый вызов сервиса вместо сессии.
// DriverID заполнен только для ActorDriver, TenantID == 0 у админа означает доступ ко всем тенантам.
type Actor struct {
	Type     ActorType
	DriverID int64
	TenantID int64
}

func DriverActor(driverID, tenantID int64) Actor {
	return Actor{Type: ActorDriver, DriverID: driverID, TenantID: tenantID}
}

func AdminActor(tenantID int64) Actor {
	return Actor{Type: ActorAdmin, TenantID: tenantID}
}

func SystemActor(tenantID int64) Actor {
	return Actor{Type: ActorSystem, TenantID: tenantID}
}

func (a Actor) IsDriver() bool {
	return a.Type == ActorDriver
}

func (a Actor) IsPrivileged() bool {
	return a.Type == ActorAdmin || a.Type == ActorSystem
}

// CanAccessTenant admin/system без тенанта видят все тенанты, остальные только свой.
func (a Actor) CanAccessTenant(tenantID int64) bool {
	if a.IsPrivileged() && a.TenantID == 0 {
		return true
	}
	return a.TenantID == tenantID
}

// DriverIDPtr id водителя для записи аудита, nil для admin/system.
func (a Actor) DriverIDPtr() *int64 {
	if !a.IsDriver() {
		return nil
	}
	id := a.DriverID
	return &id
}
