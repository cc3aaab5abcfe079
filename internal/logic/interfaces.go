package logic

import "weighbridge/internal/domain"

// RecordStore provides keyed access to the records of one entity kind
type RecordStore interface {
	GetRecord(id string) (domain.Record, bool)
	GetAllRecords() []domain.Record
	PutRecord(r domain.Record)
	RemoveRecord(id string)
	Version() uint64
}
