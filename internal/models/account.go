package models

// Account represents a financial account row.
type Account struct {
	AccountID      int64  `db:"account_id"`
	ContainerID    int64  `db:"container_id"`
	Name           string `db:"name"`
	Classification string `db:"classification"`
	OpeningBalance int64  `db:"opening_balance"`
	AuditFields
}
