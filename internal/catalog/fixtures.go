package catalog

import "ecartx_back_end/internal/models"

// demoProducts retourne le jeu de données de démonstration EcartX.
// Les images pointent vers picsum pour les rendus de test.
func demoProducts() []models.Product {
	return []models.Product{
		{
			ID: "p1", Title: "Classic T-Shirt", Brand: "EcartX", Price: 19.99,
			Rating: 4.5, Reviews: 321, Stock: 42,
			Categories: []string{"fashion"},
			Tags:       []string{"tshirt", "cotton", "casual"},
			Image:      "https://picsum.photos/seed/tshirt/400/400",
			Offer:      &models.Offer{Type: "percent", Value: 15, Label: "-15%"},
		},
		{
			ID: "p2", Title: "Sneakers", Brand: "Runner", Price: 59.0,
			Rating: 4.2, Reviews: 154, Stock: 12,
			Categories: []string{"fashion"},
			Tags:       []string{"shoes", "sport"},
			Image:      "https://picsum.photos/seed/shoes/400/400",
		},
		{
			ID: "p3", Title: "Backpack", Brand: "EcartX", Price: 29.5,
			Rating: 4.7, Reviews: 89, Stock: 0,
			Categories: []string{"fashion", "home"},
			Tags:       []string{"bag", "travel"},
			Image:      "https://picsum.photos/seed/bag/400/400",
			Offer:      &models.Offer{Type: "flat", Value: 5, Label: "-5$"},
		},
		{
			ID: "p4", Title: "Headphones", Brand: "SoundMax", Price: 89.0,
			Rating: 4.1, Reviews: 412, Stock: 25,
			Categories: []string{"electronics"},
			Tags:       []string{"audio", "wireless", "music"},
			Image:      "https://picsum.photos/seed/phones/400/400",
			Offer:      &models.Offer{Type: "percent", Value: 25, Label: "Hot deal"},
		},
		{
			ID: "p5", Title: "Smart Watch", Brand: "SoundMax", Price: 120.0,
			Rating: 4.8, Reviews: 276, Stock: 7,
			Categories: []string{"electronics"},
			Tags:       []string{"watch", "fitness"},
			Image:      "https://picsum.photos/seed/watch/400/400",
		},
		{
			ID: "p6", Title: "Sunglasses", Brand: "Runner", Price: 25.0,
			Rating: 4.0, Reviews: 64, Stock: 31,
			Categories: []string{"fashion"},
			Tags:       []string{"summer", "uv"},
			Image:      "https://picsum.photos/seed/glasses/400/400",
		},
		{
			ID: "p7", Title: "Hoodie", Brand: "EcartX", Price: 39.0,
			Rating: 4.4, Reviews: 198, Stock: 18,
			Categories: []string{"fashion"},
			Tags:       []string{"hoodie", "winter", "casual"},
			Image:      "https://picsum.photos/seed/hoodie/400/400",
		},
		{
			ID: "p8", Title: "Cap", Brand: "Runner", Price: 14.0,
			Rating: 3.9, Reviews: 41, Stock: 55,
			Categories: []string{"fashion"},
			Tags:       []string{"cap", "summer"},
			Image:      "https://picsum.photos/seed/cap/400/400",
		},
		{
			ID: "p9", Title: "Table Lamp", Brand: "HomeLite", Price: 34.0,
			Rating: 4.3, Reviews: 77, Stock: 9,
			Categories: []string{"home"},
			Tags:       []string{"lamp", "decor", "light"},
			Image:      "https://picsum.photos/seed/lamp/400/400",
			Offer:      &models.Offer{Type: "flat", Value: 8, Label: "-8$"},
		},
		{
			ID: "p10", Title: "Paracetamol 500mg", Brand: "MediCare", Price: 4.5,
			Rating: 4.6, Reviews: 530, Stock: 120,
			Categories: []string{"medical_medicine"},
			Tags:       []string{"pain", "fever", "tablet"},
			Image:      "https://picsum.photos/seed/paracetamol/400/400",
		},
		{
			ID: "p11", Title: "Hand Sanitizer 250ml", Brand: "MediCare", Price: 6.0,
			Rating: 4.2, Reviews: 208, Stock: 64,
			Categories: []string{"medical_sanitary"},
			Tags:       []string{"sanitary", "hygiene", "gel"},
			Image:      "https://picsum.photos/seed/sanitizer/400/400",
			Offer:      &models.Offer{Type: "percent", Value: 20, Label: "-20%"},
		},
		{
			ID: "p12", Title: "Digital Thermometer", Brand: "VitalCheck", Price: 18.0,
			Rating: 4.5, Reviews: 96, Stock: 0,
			Categories: []string{"medical_device"},
			Tags:       []string{"thermometer", "fever", "device"},
			Image:      "https://picsum.photos/seed/thermo/400/400",
		},
		{
			ID: "p13", Title: "Blood Pressure Monitor", Brand: "VitalCheck", Price: 49.0,
			Rating: 4.7, Reviews: 143, Stock: 6,
			Categories: []string{"medical_device"},
			Tags:       []string{"pressure", "monitor", "device"},
			Image:      "https://picsum.photos/seed/bpmonitor/400/400",
			Offer:      &models.Offer{Type: "flat", Value: 10, Label: "-10$"},
		},
		{
			ID: "p14", Title: "Sanitary Face Masks x50", Brand: "MediCare", Price: 12.0,
			Rating: 4.1, Reviews: 312, Stock: 200,
			Categories: []string{"medical_sanitary"},
			Tags:       []string{"mask", "sanitary", "protection"},
			Image:      "https://picsum.photos/seed/masks/400/400",
		},
	}
}
