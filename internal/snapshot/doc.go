// Package snapshot guarda en memoria la foto de la planta para toda la sesión.
//
// La única mutación programada es el tick de KPIs: el store calcula el nuevo
// valor con views.Tick y reemplaza el anterior bajo lock, de modo que ningún
// lector observa una modificación en sitio.
package snapshot
