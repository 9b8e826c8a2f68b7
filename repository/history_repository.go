package repository

import "fxba/domain"

type HistoryRepository interface {
	// Save stores record, filling ID and CreatedAt when unset, and returns
	// the stored copy.
	Save(record domain.HistoryRecord) (domain.HistoryRecord, error)
	// List returns up to limit records, newest first. limit <= 0 means all.
	List(limit int) ([]domain.HistoryRecord, error)
}
