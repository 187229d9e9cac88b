package catalog

import (
	"sort"
	"strings"

	"ecartx_back_end/internal/models"
)

// Clés de tri supportées. "newest" est volontairement un comparateur neutre :
// le modèle de données n'a pas de champ createdAt, l'ordre du filtrage est
// conservé tel quel.
const (
	SortPopular     = "popular"
	SortPriceLow    = "price_low_high"
	SortPriceHigh   = "price_high_low"
	SortDiscount    = "discount"
	SortNewest      = "newest"
	CategoryAll     = "all"
	CategoryMedical = "medical" // macro-catégorie : tout tag préfixé "medical_"
)

const medicalPrefix = "medical_"

// Query est construit à chaque interaction utilisateur puis jeté.
// Tous les filtres sont optionnels ; un pointeur nil = filtre non appliqué.
type Query struct {
	Term        string
	Category    string
	MedicalSub  string
	OnlyOffers  bool
	InStockOnly bool
	RatingMin   *float64
	PriceMin    *float64
	PriceMax    *float64
	Brands      []string
	SortKey     string
}

// NormalizeSortKey replie les alias ("price_low", "price_high") et toute clé
// inconnue sur une valeur sûre. Jamais d'erreur : l'appelant est une couche
// UI interne de confiance.
func NormalizeSortKey(key string) string {
	switch key {
	case SortPopular, SortPriceLow, SortPriceHigh, SortDiscount, SortNewest:
		return key
	case "price_low":
		return SortPriceLow
	case "price_high":
		return SortPriceHigh
	default:
		return SortPopular
	}
}

// NormalizeCategory replie toute catégorie hors vocabulaire sur "all".
func NormalizeCategory(cat string) string {
	switch cat {
	case CategoryAll, CategoryMedical, "fashion", "electronics", "home",
		"medical_medicine", "medical_sanitary", "medical_device":
		return cat
	case "":
		return CategoryAll
	default:
		return CategoryAll
	}
}

// Search est l'unique source de vérité des listes produits : chaque surface
// (browse, recherche, feuille de filtres, menu de tri) construit une Query
// et affiche le résultat tel quel. Le pipeline est strictement ordonné :
// recherche texte → catégorie → filtres d'attributs → tri stable.
// Ne modifie ni le catalogue d'entrée ni la query ; une query sans
// correspondance retourne une liste vide, jamais une erreur.
func Search(products []models.Product, q Query) []models.Product {
	data := make([]models.Product, len(products))
	copy(data, products)

	// 1. Recherche texte : sous-chaîne du titre, de la marque ou d'un tag
	term := strings.ToLower(strings.TrimSpace(q.Term))
	if term != "" {
		data = keep(data, func(p models.Product) bool {
			if strings.Contains(strings.ToLower(p.Title), term) {
				return true
			}
			if p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), term) {
				return true
			}
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), term) {
					return true
				}
			}
			return false
		})
	}

	// 2. Catégorie
	switch cat := NormalizeCategory(q.Category); cat {
	case CategoryAll:
		// pas de filtrage
	case CategoryMedical:
		if q.MedicalSub != "" && q.MedicalSub != CategoryAll {
			sub := q.MedicalSub
			data = keep(data, func(p models.Product) bool { return hasCategory(p, sub) })
		} else {
			data = keep(data, func(p models.Product) bool {
				for _, c := range p.Categories {
					if strings.HasPrefix(c, medicalPrefix) {
						return true
					}
				}
				return false
			})
		}
	default:
		data = keep(data, func(p models.Product) bool { return hasCategory(p, cat) })
	}

	// 3. Filtres d'attributs, chacun indépendant
	if q.OnlyOffers {
		data = keep(data, func(p models.Product) bool { return p.Offer != nil })
	}
	if q.RatingMin != nil {
		minR := *q.RatingMin
		data = keep(data, func(p models.Product) bool { return p.Rating >= minR })
	}
	if q.PriceMin != nil {
		minP := *q.PriceMin
		data = keep(data, func(p models.Product) bool { return FinalPrice(p) >= minP })
	}
	if q.PriceMax != nil {
		maxP := *q.PriceMax
		data = keep(data, func(p models.Product) bool { return FinalPrice(p) <= maxP })
	}
	if q.InStockOnly {
		data = keep(data, InStock)
	}
	if len(q.Brands) > 0 {
		allowed := make(map[string]bool, len(q.Brands))
		for _, b := range q.Brands {
			allowed[b] = true
		}
		data = keep(data, func(p models.Product) bool { return p.Brand != "" && allowed[p.Brand] })
	}

	// 4. Tri stable : à clé égale, l'ordre d'entrée est conservé
	switch NormalizeSortKey(q.SortKey) {
	case SortPopular:
		sort.SliceStable(data, func(i, j int) bool { return data[i].Rating > data[j].Rating })
	case SortPriceLow:
		sort.SliceStable(data, func(i, j int) bool { return FinalPrice(data[i]) < FinalPrice(data[j]) })
	case SortPriceHigh:
		sort.SliceStable(data, func(i, j int) bool { return FinalPrice(data[i]) > FinalPrice(data[j]) })
	case SortDiscount:
		sort.SliceStable(data, func(i, j int) bool { return DiscountPercent(data[i]) > DiscountPercent(data[j]) })
	case SortNewest:
		// comparateur neutre : ordre du filtrage conservé
	}

	return data
}

func hasCategory(p models.Product, cat string) bool {
	for _, c := range p.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
