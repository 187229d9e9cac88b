package models

// BrowseUIState est le dernier état de navigation du client (catégorie,
// sous-catégorie médicale, tri, dernière recherche), persisté tel quel en
// JSON sous une clé fixe. Le moteur de recherche n'y touche jamais.
type BrowseUIState struct {
	SelectedCategory string `json:"selectedCategory"`
	MedicalSub       string `json:"medicalSub"`
	SortKey          string `json:"sortKey"`
	LastSearch       string `json:"lastSearch"`
}
