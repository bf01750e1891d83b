package repositories

import (
	"sync"

	"gorm.io/gorm"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/models"
)

// HistoryRepository serves the service records of the currently bound
// motorcycle. Binding to a different motorcycle discards the previous
// mirror and re-fetches; an empty identifier short-circuits to an empty
// result with no query.
type HistoryRepository struct {
	db *gorm.DB

	mu      sync.Mutex
	boundID string
	mirror  []models.ServiceRecord
	loaded  bool
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// List returns the bound motorcycle's records ordered by service date, most
// recent first.
func (r *HistoryRepository) List(motorcycleID string) ([]models.ServiceRecord, error) {
	if motorcycleID == "" {
		return []models.ServiceRecord{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded && r.boundID == motorcycleID {
		return r.snapshot(), nil
	}

	// Rebind: the previous motorcycle's mirror is discarded wholesale.
	r.boundID = motorcycleID
	r.mirror = nil
	r.loaded = false

	var records []models.ServiceRecord
	if err := r.db.Where("motorcycle_id = ?", motorcycleID).
		Order("service_date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	r.mirror = records
	r.loaded = true
	return r.snapshot(), nil
}

// Create inserts the record and prepends it to the mirror when the record
// belongs to the bound motorcycle.
func (r *HistoryRepository) Create(record *models.ServiceRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded && r.boundID == record.MotorcycleID {
		r.mirror = append([]models.ServiceRecord{*record}, r.mirror...)
	}
	return nil
}

// Delete removes the record and drops exactly the matching mirror entry.
func (r *HistoryRepository) Delete(id string) error {
	if err := r.db.Delete(&models.ServiceRecord{}, "id = ?", id).Error; err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.mirror {
		if r.mirror[i].ID == id {
			r.mirror = append(r.mirror[:i], r.mirror[i+1:]...)
			break
		}
	}
	return nil
}

func (r *HistoryRepository) snapshot() []models.ServiceRecord {
	out := make([]models.ServiceRecord, len(r.mirror))
	copy(out, r.mirror)
	return out
}
