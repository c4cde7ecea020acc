package sim

// Product identifies one of the product categories the store trades in.
type Product string

const (
	Proteins      Product = "proteins"
	Carbohydrates Product = "carbohydrates"
	Fruits        Product = "fruits"
	Vegetables    Product = "vegetables"
	Sweets        Product = "sweets"
)

// ProductTypes is the canonical ordering of the product categories. All
// per-product iteration walks this slice rather than ranging over maps,
// so runs with the same seed visit products in the same order.
var ProductTypes = []Product{Proteins, Carbohydrates, Fruits, Vegetables, Sweets}
