package product

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecartx_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog.Load()

	r := gin.New()
	r.GET("/api/products", ListProducts)
	r.GET("/api/products/deals", GetDeals)
	r.GET("/api/products/filters", GetProductFilters)
	r.GET("/api/products/:id", GetProduct)
	return r
}

func do(t *testing.T, r *gin.Engine, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("réponse non-JSON (%d): %s", w.Code, w.Body.String())
	}
	return w.Code, body
}

func TestListProducts(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name      string
		path      string
		wantCount int
	}{
		{"catalogue complet", "/api/products?limit=100", len(catalog.Products())},
		{"catégorie electronics", "/api/products?category=electronics", 2},
		{"macro medical", "/api/products?category=medical&medical_sub=all&limit=100", 5},
		{"sous-catégorie sanitaire", "/api/products?category=medical&medical_sub=medical_sanitary", 2},
		{"recherche par tag", "/api/products?q=thermometer", 1},
		{"aucun résultat", "/api/products?q=zzz-introuvable", 0},
		{"catégorie inconnue = all", "/api/products?category=banana&limit=100", len(catalog.Products())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, r, tt.path)
			if code != http.StatusOK {
				t.Fatalf("code %d, attendu 200", code)
			}
			products, _ := body["products"].([]interface{})
			if len(products) != tt.wantCount {
				t.Errorf("%d produits, attendu %d", len(products), tt.wantCount)
			}
			pagination, _ := body["pagination"].(map[string]interface{})
			if int(pagination["total"].(float64)) != tt.wantCount {
				t.Errorf("total %v, attendu %d", pagination["total"], tt.wantCount)
			}
		})
	}
}

func TestListProductsSortedByDiscount(t *testing.T) {
	r := newRouter()
	code, body := do(t, r, "/api/products?sort=discount&only_offers=true&limit=100")
	if code != http.StatusOK {
		t.Fatalf("code %d", code)
	}

	products := body["products"].([]interface{})
	if len(products) == 0 {
		t.Fatal("aucune offre dans le catalogue de démo")
	}
	prev := 101.0
	for _, raw := range products {
		entry := raw.(map[string]interface{})
		pct := entry["discount_percent"].(float64)
		if pct > prev {
			t.Fatalf("tri discount violé : %v après %v", pct, prev)
		}
		prev = pct
	}
}

func TestListProductsPagination(t *testing.T) {
	r := newRouter()
	code, body := do(t, r, "/api/products?limit=5&page=2")
	if code != http.StatusOK {
		t.Fatalf("code %d", code)
	}
	products := body["products"].([]interface{})
	if len(products) != 5 {
		t.Errorf("page 2 avec limit 5 : %d produits", len(products))
	}
	pagination := body["pagination"].(map[string]interface{})
	if int(pagination["page"].(float64)) != 2 {
		t.Errorf("page = %v", pagination["page"])
	}
}

func TestGetProduct(t *testing.T) {
	r := newRouter()

	// p1 : 19.99 avec -15% → 16.99
	code, body := do(t, r, "/api/products/p1")
	if code != http.StatusOK {
		t.Fatalf("code %d", code)
	}
	if fp := body["final_price"].(float64); fp != 16.99 {
		t.Errorf("final_price = %v, attendu 16.99", fp)
	}
	if dp := body["discount_percent"].(float64); dp != 15 {
		t.Errorf("discount_percent = %v, attendu 15", dp)
	}

	code, body = do(t, r, "/api/products/inexistant")
	if code != http.StatusNotFound {
		t.Errorf("produit inconnu : code %d, attendu 404", code)
	}
	if body["error"] == nil {
		t.Error("message d'erreur absent")
	}
}

func TestGetDeals(t *testing.T) {
	r := newRouter()
	code, body := do(t, r, "/api/products/deals")
	if code != http.StatusOK {
		t.Fatalf("code %d", code)
	}
	deals := body["deals"].([]interface{})
	if len(deals) == 0 || len(deals) > 10 {
		t.Fatalf("%d deals, attendu entre 1 et 10", len(deals))
	}
	for _, raw := range deals {
		entry := raw.(map[string]interface{})
		if entry["discount_percent"].(float64) < 15 {
			t.Errorf("deal avec remise < 15%% : %v", entry["discount_percent"])
		}
	}
}

func TestGetProductFilters(t *testing.T) {
	r := newRouter()
	code, body := do(t, r, "/api/products/filters")
	if code != http.StatusOK {
		t.Fatalf("code %d", code)
	}

	brands := body["brands"].([]interface{})
	if len(brands) == 0 {
		t.Error("liste de marques vide")
	}

	pr := body["price_range"].(map[string]interface{})
	if pr["min"].(float64) > pr["max"].(float64) {
		t.Errorf("bornes de prix incohérentes : %v > %v", pr["min"], pr["max"])
	}
}
