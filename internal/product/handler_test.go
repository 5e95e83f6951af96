package product

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/shopping-backend/internal/pagination"
)

func makeAppWithProductHandler(seed []Product) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(seed))).RegisterPublicRoutes(app)
	return app
}

func TestProductRoutes_Registered(t *testing.T) {
	app := makeAppWithProductHandler(nil)

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	for _, p := range []string{"/products", "/products/page"} {
		if !routes[p] {
			t.Fatalf("expected route %q to be registered", p)
		}
	}
}

func TestGetProducts(t *testing.T) {
	app := makeAppWithProductHandler(seedProducts(2))

	res, err := app.Test(httptest.NewRequest("GET", "/products", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var body []Response
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body) != 2 || body[0].Name != "치킨" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetProductPage(t *testing.T) {
	app := makeAppWithProductHandler(seedProducts(12))

	cases := []struct {
		query string
		page  int
		items int
	}{
		{"?page=1", 1, 12},
		{"?page=2", 2, 0},
		{"?page=0", 1, 12},
		{"?page=abc", 1, 12},
		{"", 1, 12},
	}
	for _, tc := range cases {
		res, err := app.Test(httptest.NewRequest("GET", "/products/page"+tc.query, nil))
		if err != nil {
			t.Fatalf("%q: request failed: %v", tc.query, err)
		}
		var body pagination.Page[Response]
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("%q: decode failed: %v", tc.query, err)
		}
		if body.Page != tc.page || len(body.Items) != tc.items {
			t.Fatalf("%q: expected page %d with %d items, got page %d with %d", tc.query, tc.page, tc.items, body.Page, len(body.Items))
		}
	}
}
