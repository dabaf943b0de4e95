package generator

import "api-footwear/internal/models"

// ProcessesPerCategory es la cantidad fija de nombres canónicos por categoría
const ProcessesPerCategory = 10

// CategoryNames asocia una categoría con sus nombres canónicos en orden
type CategoryNames struct {
	Category models.Category
	Names    [ProcessesPerCategory]string
}

// CanonicalProcessNames es la lista semilla de procesos (6 x 10 = 60)
var CanonicalProcessNames = []CategoryNames{
	{models.CategoryPreProduction, [ProcessesPerCategory]string{
		"Upper Cutting", "Lining Preparation", "Toe Puff Attachment", "Heel Counter Fixing", "Skiving",
		"Pattern Labeling", "Perforating", "Embroidery", "Edge Dyeing", "Backer Fusing",
	}},
	{models.CategoryStitching, [ProcessesPerCategory]string{
		"Vamp Stitching", "Quarter Stitching", "Backstay Stitching", "Tongue Attachment", "Collar Padding",
		"Topline Finishing", "Eyeletting", "Lockstitching", "Zigzag Reinforcement", "Decorative Stitching",
	}},
	{models.CategoryLasting, [ProcessesPerCategory]string{
		"Toe Lasting", "Side Lasting", "Heel Lasting", "Insole Tacking", "Heat Setting",
		"Roughing", "Pound Out", "Last Removal", "Upper Conditioning", "Shank Insertion",
	}},
	{models.CategoryBottoming, [ProcessesPerCategory]string{
		"Sole Molding", "Sole Buffing", "Sole Priming", "Cementing", "Sole Pressing",
		"Heel Attaching", "Edge Trimming", "Edge Scouring", "Insole Padding", "Bottom Filling",
	}},
	{models.CategoryFinishing, [ProcessesPerCategory]string{
		"Cleaning", "Waxing", "Polishing", "Burnishing", "Spray Finishing",
		"Logo Stamping", "Lacing", "Final Inspection", "Ironing", "De-lasting",
	}},
	{models.CategoryPackaging, [ProcessesPerCategory]string{
		"Box Assembly", "Tissue Wrapping", "Tagging", "Bagging", "Outer Carton Packing",
		"Labeling", "Weight Verification", "Palletizing", "Shrink Wrapping", "Dispatch Sorting",
	}},
}

// NamesFor retorna los nombres canónicos de una categoría (nil si no existe)
func NamesFor(c models.Category) []string {
	for _, entry := range CanonicalProcessNames {
		if entry.Category == c {
			names := entry.Names
			return names[:]
		}
	}
	return nil
}
