package repositories

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/models"
)

// ErrNotAuthenticated is returned before any store access when an operation
// requires a session and none is present.
var ErrNotAuthenticated = errors.New("not authenticated")

// GarageRepository serves the motorcycle collection of one owner at a time
// and keeps an in-memory mirror of the last fetched result set. The mirror
// is patched directly on successful mutations and discarded wholesale when
// the owner changes. Known staleness window: writes from other processes are
// not visible until the mirror is rebuilt.
type GarageRepository struct {
	db *gorm.DB

	mu      sync.Mutex
	ownerID string
	mirror  []models.Motorcycle
	loaded  bool
}

func NewGarageRepository(db *gorm.DB) *GarageRepository {
	return &GarageRepository{db: db}
}

// List returns the owner's motorcycles newest-created first. An empty owner
// means no active session and yields an empty collection without touching
// the store.
func (r *GarageRepository) List(ownerID string) ([]models.Motorcycle, error) {
	if ownerID == "" {
		return []models.Motorcycle{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded && r.ownerID == ownerID {
		return r.snapshot(), nil
	}

	var motorcycles []models.Motorcycle
	if err := r.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&motorcycles).Error; err != nil {
		return nil, err
	}

	r.ownerID = ownerID
	r.mirror = motorcycles
	r.loaded = true
	return r.snapshot(), nil
}

// Create inserts the motorcycle and prepends it to the mirror.
func (r *GarageRepository) Create(ownerID string, motorcycle *models.Motorcycle) error {
	if ownerID == "" {
		return ErrNotAuthenticated
	}

	motorcycle.UserID = ownerID
	if err := r.db.Create(motorcycle).Error; err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded && r.ownerID == ownerID {
		r.mirror = append([]models.Motorcycle{*motorcycle}, r.mirror...)
	}
	return nil
}

// Update applies a partial set of the mutable fields to the owner's
// motorcycle and replaces the mirror entry in place.
func (r *GarageRepository) Update(ownerID, id string, updates map[string]interface{}) (*models.Motorcycle, error) {
	if ownerID == "" {
		return nil, ErrNotAuthenticated
	}

	var motorcycle models.Motorcycle
	if err := r.db.First(&motorcycle, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&motorcycle).Updates(updates).Error; err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded && r.ownerID == ownerID {
		for i := range r.mirror {
			if r.mirror[i].ID == id {
				r.mirror[i] = motorcycle
				break
			}
		}
	}
	return &motorcycle, nil
}

// Delete removes the owner's motorcycle and its service records, then drops
// exactly the matching mirror entry. The cascade is explicit: the original
// schema left record cleanup to the store's referential policy.
func (r *GarageRepository) Delete(ownerID, id string) error {
	if ownerID == "" {
		return ErrNotAuthenticated
	}

	var motorcycle models.Motorcycle
	if err := r.db.First(&motorcycle, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
		return err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("motorcycle_id = ?", id).Delete(&models.ServiceRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&motorcycle).Error
	})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded && r.ownerID == ownerID {
		for i := range r.mirror {
			if r.mirror[i].ID == id {
				r.mirror = append(r.mirror[:i], r.mirror[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Invalidate drops the mirror, forcing the next List to re-fetch. Called on
// sign-out and session change.
func (r *GarageRepository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ownerID = ""
	r.mirror = nil
	r.loaded = false
}

func (r *GarageRepository) snapshot() []models.Motorcycle {
	out := make([]models.Motorcycle, len(r.mirror))
	copy(out, r.mirror)
	return out
}
