// Package ledger owns the in-memory ledger document. It loads and migrates
// the document once, applies mutations, persists the whole document after
// each one, and answers queries against the current state.
package ledger

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/roro-dev/roro/internal/id"
	rlog "github.com/roro-dev/roro/internal/log"
	"github.com/roro-dev/roro/internal/migrate"
	"github.com/roro-dev/roro/internal/model"
	"github.com/roro-dev/roro/internal/store"
)

// Validation errors returned by mutations. Storage failures are never
// returned; they are logged and the in-memory state stays authoritative.
var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidKind   = errors.New("invalid kind")
	ErrInvalidMonth  = errors.New("invalid month")
)

// Storage loads and saves the whole ledger document.
type Storage interface {
	Load() (*model.RawDocument, error)
	Save(doc *model.Document) error
}

// Ledger is the single owner of a ledger document. It is not safe for
// concurrent use.
type Ledger struct {
	store Storage
	doc   *model.Document
	ids   *id.Generator
	now   func() time.Time
	log   *slog.Logger
}

// Open loads the document from st, falling back to an empty ledger when it
// is missing or unreadable, and migrates it to the current schema. A
// migrated document is written back immediately.
func Open(st Storage, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = rlog.Discard()
	}
	logger = logger.With(rlog.FieldComponent, rlog.ComponentLedger)

	raw, err := st.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no ledger file, starting empty", rlog.FieldOperation, rlog.OpLoad)
		} else {
			logger.Warn("ledger unreadable, starting empty", rlog.FieldOperation, rlog.OpLoad, rlog.FieldError, err)
		}
		raw = nil
	}

	doc, changes := migrate.Fix(raw)
	l := &Ledger{
		store: st,
		doc:   doc,
		ids:   id.NewGenerator(id.MaxID(doc.Records)),
		now:   time.Now,
		log:   logger,
	}

	if raw != nil && len(changes) > 0 {
		logger.Info("migrated ledger", rlog.FieldOperation, rlog.OpMigrate, rlog.FieldChanges, changes)
		l.persist(rlog.OpMigrate)
	}
	return l
}

// persist writes the whole document. Failures are logged and dropped.
func (l *Ledger) persist(op string) {
	if err := l.store.Save(l.doc); err != nil {
		l.log.Warn("saving ledger failed", rlog.FieldOperation, op, rlog.FieldError, err)
	}
}

// Export returns the serialized document, byte-for-byte what is persisted.
func (l *Ledger) Export() ([]byte, error) {
	return store.Encode(l.doc)
}

// Settings returns the stored settings.
func (l *Ledger) Settings() model.Settings {
	return l.doc.Settings
}

// Categories returns a copy of the category list for kind.
func (l *Ledger) Categories(kind model.Kind) []model.Category {
	return append([]model.Category(nil), l.doc.Categories[kind]...)
}

// Records returns a copy of every record in insertion order.
func (l *Ledger) Records() []model.Record {
	return append([]model.Record(nil), l.doc.Records...)
}
