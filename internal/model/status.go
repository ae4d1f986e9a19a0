package model

const (
	StatusIDInProcess int64 = 1
	StatusIDPaid      int64 = 2
	StatusIDCancelled int64 = 3
)

const (
	StatusNameInProcess = "en proceso"
	StatusNamePaid      = "pagado"
	StatusNameCancelled = "cancelado"

	// StatusNameUnknown is returned for status ids missing from the catalog.
	StatusNameUnknown = "desconocido"
)

type Status struct {
	ID         int64  `gorm:"primaryKey;<-:create"`
	StatusName string `gorm:"type:varchar(255);not null;column:status_name"`
}

func (Status) TableName() string {
	return "statuses"
}

// DefaultStatuses is the fixed catalog written once when the table is empty.
func DefaultStatuses() []Status {
	return []Status{
		{ID: StatusIDInProcess, StatusName: StatusNameInProcess},
		{ID: StatusIDPaid, StatusName: StatusNamePaid},
		{ID: StatusIDCancelled, StatusName: StatusNameCancelled},
	}
}
