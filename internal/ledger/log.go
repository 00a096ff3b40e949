package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PraloyG18/Banking-Application/internal/model"
)

// TransactionLog is the append-only record of balance-affecting events.
// Records are immutable once appended; there is no update or delete.
type TransactionLog struct {
	mu        sync.Mutex
	records   []model.Transaction
	byAccount map[string][]int // account number -> indexes into records
	ids       map[string]struct{}
	lastStamp time.Time
	now       func() time.Time
	newID     func() string
}

// NewTransactionLog returns an empty log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{
		byAccount: make(map[string][]int),
		ids:       make(map[string]struct{}),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Append assigns each record a unique id and a timestamp no earlier than any
// record already in the log, then appends them all. Multi-record appends are
// all-or-nothing: either every record lands or none does, which is what makes
// a transfer's out/in pair atomic in the log. Returns the stamped records.
func (l *TransactionLog) Append(recs ...model.Transaction) ([]model.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now()
	if ts.Before(l.lastStamp) {
		ts = l.lastStamp
	}

	stamped := make([]model.Transaction, len(recs))
	batch := make(map[string]struct{}, len(recs))
	for i, rec := range recs {
		rec.ID = l.newID()
		if _, dup := l.ids[rec.ID]; dup {
			return nil, &model.FatalError{Op: "append transaction", Err: fmt.Errorf("duplicate transaction id %s", rec.ID)}
		}
		if _, dup := batch[rec.ID]; dup {
			return nil, &model.FatalError{Op: "append transaction", Err: fmt.Errorf("duplicate transaction id %s", rec.ID)}
		}
		batch[rec.ID] = struct{}{}
		rec.Timestamp = ts
		stamped[i] = rec
	}

	l.lastStamp = ts
	for _, rec := range stamped {
		l.ids[rec.ID] = struct{}{}
		l.byAccount[rec.AccountNumber] = append(l.byAccount[rec.AccountNumber], len(l.records))
		l.records = append(l.records, rec)
	}
	return stamped, nil
}

// FindByAccount returns the account's records ordered by timestamp ascending.
// Timestamps are non-decreasing in append order, so insertion order is the
// tie-break for free.
func (l *TransactionLog) FindByAccount(number string) []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	idxs := l.byAccount[number]
	out := make([]model.Transaction, len(idxs))
	for i, idx := range idxs {
		out[i] = l.records[idx]
	}
	return out
}

// All returns every record in append order.
func (l *TransactionLog) All() []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.Transaction(nil), l.records...)
}

// Load replays previously exported records, keeping their ids and
// timestamps. Used when restoring a snapshot into a fresh log.
func (l *TransactionLog) Load(recs []model.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, rec := range recs {
		if _, dup := l.ids[rec.ID]; dup {
			return &model.FatalError{Op: "load transactions", Err: fmt.Errorf("duplicate transaction id %s", rec.ID)}
		}
		if rec.Timestamp.After(l.lastStamp) {
			l.lastStamp = rec.Timestamp
		}
		l.ids[rec.ID] = struct{}{}
		l.byAccount[rec.AccountNumber] = append(l.byAccount[rec.AccountNumber], len(l.records))
		l.records = append(l.records, rec)
	}
	return nil
}
