package product

func seedProducts(n int) []Product {
	names := []string{"치킨", "피자", "햄버거", "떡볶이", "김밥", "라면", "짜장면", "짬뽕", "탕수육", "족발", "보쌈", "초밥"}
	out := make([]Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Product{
			ID:       int64(i + 1),
			Name:     names[i%len(names)],
			Price:    int64(10000 + i*1000),
			ImageURL: "/images/product.png",
		})
	}
	return out
}
