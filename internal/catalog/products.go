package catalog

import "github.com/kailas-cloud/shopassist/internal/domain/product"

const storeURL = "https://bazaar-market-place.netlify.app/products/"

// defaultProducts is the fixed marketplace inventory, in display order.
var defaultProducts = []product.Product{
	product.MustNew("1", "Travel Fjallraven - Foldsack No. 1 Backpack", 109.95, "travel_bag", storeURL+"1"),
	product.MustNew("2", "Men's T-Shirt", 22.3, "t_shirts_men", storeURL+"2"),
	product.MustNew("3", "Men's Jacket", 55.99, "jackets_men", storeURL+"3"),
	product.MustNew("4", "Another Men's T-Shirt", 15.99, "t_shirts_men", storeURL+"4"),
	product.MustNew("5", "Bracelet", 695, "jewellery_bracelet", storeURL+"5"),
	product.MustNew("6", "Another Bracelet", 168.0, "jewellery_bracelet", storeURL+"6"),
	product.MustNew("7", "Ring", 9.99, "jewellery_ring", storeURL+"7"),
	product.MustNew("8", "Earrings", 10.99, "jewellery_earrings", storeURL+"8"),
	product.MustNew("9", "WD Hard Drive", 64.0, "electronics_hard_drive", storeURL+"9"),
	product.MustNew("10", "SanDisk Secondary Storage", 109.0, "electronics_secondary_storage", storeURL+"10"),
	product.MustNew("11", "SP A55 Secondary Storage", 109.0, "electronics_secondary_storage", storeURL+"11"),
	product.MustNew("12", "WD Gaming Hard Drive", 114.0, "electronics_hard_drive", storeURL+"12"),
	product.MustNew("13", "Acer 21.5 inch Ultra thin Screen", 599.0, "electronics_screen", storeURL+"13"),
	product.MustNew("14", "Samsung 49 inch Curved QLED", 999.99, "electronics_screen", storeURL+"14"),
	product.MustNew("15", "BIYLACLESEN Women's 3-in-1 Winter Jacket", 56.99, "jacket_women", storeURL+"15"),
	product.MustNew("16", "Lock and Love Women's Removable Hooded Faux Leather Moto Biker Jacket", 29.95,
		"jacket_women", storeURL+"16"),
	product.MustNew("17", "Rain Jacket Women Windbreaker Striped Climbing Raincoats", 39.99,
		"jacket_women", storeURL+"17"),
	product.MustNew("18", "MBJ Women Solid Short Sleeve Boat Neck V", 9.85, "top_women", storeURL+"18"),
	product.MustNew("19", "Opna Women's Short Sleeve Moisture", 7.95, "top_women", storeURL+"19"),
	product.MustNew("20", "DANVOUY Womens T Shirt Casual Cotton Short", 12.99, "top_women", storeURL+"20"),
}
