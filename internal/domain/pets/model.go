package pets

import "strings"

// Pet es una mascota registrada. El nombre lo genera el servicio de naming.
type Pet struct {
	ID int64

	Animal      string // especie: dog, cat, axolotl...
	Personality string
	Coloration  string

	Name string
}

// NewPet construye la entidad a partir de los campos ya validados + el nombre generado.
// Si falta alguno devuelve MissingFieldError con ErrInvalidData.
func NewPet(animal, personality, coloration, name string) (Pet, error) {
	p := Pet{
		Animal:      strings.TrimSpace(animal),
		Personality: strings.TrimSpace(personality),
		Coloration:  strings.TrimSpace(coloration),
		Name:        strings.TrimSpace(name),
	}

	switch {
	case p.Animal == "":
		return Pet{}, &MissingFieldError{Kind: ErrInvalidData, Field: "animal"}
	case p.Personality == "":
		return Pet{}, &MissingFieldError{Kind: ErrInvalidData, Field: "personality"}
	case p.Coloration == "":
		return Pet{}, &MissingFieldError{Kind: ErrInvalidData, Field: "coloration"}
	case p.Name == "":
		return Pet{}, &MissingFieldError{Kind: ErrInvalidData, Field: "name"}
	}

	return p, nil
}
