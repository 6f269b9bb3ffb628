package pets

import "context"

// Repository es la persistencia de mascotas. Todas las implementaciones
// devuelven ErrNotFound cuando el id no existe.
type Repository interface {
	// Create persiste p y devuelve la mascota con el ID asignado por el store.
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	UpdateName(ctx context.Context, id int64, name string) error
}
