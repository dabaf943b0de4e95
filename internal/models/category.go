package models

import (
	"fmt"
	"strings"
)

// Category representa una de las seis etapas fijas de fabricación
type Category string

const (
	CategoryPreProduction Category = "Pre-Production"
	CategoryStitching     Category = "Stitching"
	CategoryLasting       Category = "Lasting"
	CategoryBottoming     Category = "Bottoming"
	CategoryFinishing     Category = "Finishing"
	CategoryPackaging     Category = "Packaging"
)

// CategoryAll es el selector que desactiva el filtro por categoría
const CategoryAll = "All"

// AllCategories mantiene el orden canónico de las etapas
var AllCategories = []Category{
	CategoryPreProduction,
	CategoryStitching,
	CategoryLasting,
	CategoryBottoming,
	CategoryFinishing,
	CategoryPackaging,
}

// Slug retorna la categoría en minúsculas con el primer espacio reemplazado por '-'
func (c Category) Slug() string {
	return strings.Replace(strings.ToLower(string(c)), " ", "-", 1)
}

// Prefix retorna las dos primeras letras usadas en los IDs de máquina
func (c Category) Prefix() string {
	s := string(c)
	if len(s) < 2 {
		return s
	}
	return s[:2]
}

// Valid indica si la categoría pertenece al conjunto fijo
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory convierte un texto en Category (coincidencia exacta)
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("categoría desconocida: %q", s)
	}
	return c, nil
}
