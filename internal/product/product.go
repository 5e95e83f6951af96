package product

// Product is a catalog entry. It is read-only for the cart and order flows.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`
}

// Response is the API shape of a product.
type Response struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`
}

func ToResponse(p Product) Response {
	return Response{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL}
}
