package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"api-footwear/internal/generator"
	"api-footwear/internal/views"
)

// Imprime una foto generada y sus vistas derivadas, útil para revisar datos de prueba
func main() {
	format := flag.String("format", "json", "formato de salida: json o yaml")
	seed := flag.Int64("seed", -1, "semilla del generador (-1 = aleatoria)")
	flag.Parse()

	var seedPtr *uint64
	if *seed >= 0 {
		s := uint64(*seed)
		seedPtr = &s
	}

	snap := generator.Generate(generator.NewRand(seedPtr))
	out := map[string]any{
		"snapshot":  snap,
		"analytics": views.BuildAnalytics(snap.Processes),
		"worst":     views.WorstByQuality(snap.Processes, views.DefaultWorstN),
		"inventory": views.InventoryViews(snap.Inventory),
		"materials": views.MaterialViews(snap.Materials),
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("❌ Error serializando JSON: %v", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			log.Fatalf("❌ Error serializando YAML: %v", err)
		}
		enc.Close()
	default:
		fmt.Fprintf(os.Stderr, "formato desconocido: %s\n", *format)
		os.Exit(2)
	}
}
