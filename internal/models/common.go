// Package models holds the persistence representation of the budget
// document: the exact JSON shape written to the blob store. Services only
// ever see the domain types; conversion lives in internal/utils/mapping.
package models

import "time"

// AuditFields holds standard audit information for persisted records.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
