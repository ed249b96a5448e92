package menu

import "restobot/internal/core/domain/model/kernel"

// DefaultCatalog returns the built-in menu used to seed an empty menu table
// at start-up. The data is static; the seed is skipped when the table
// already holds rows.
func DefaultCatalog() []Item {
	return []Item{
		mustItem("1", "Margherita Pizza", "Main", 12.99, "Classic pizza with tomato, mozzarella, and basil"),
		mustItem("2", "Caesar Salad", "Salad", 8.99, "Fresh romaine, croutons, and Caesar dressing"),
		mustItem("3", "Spaghetti Carbonara", "Main", 14.99, "Pasta with creamy egg sauce and pancetta"),
		mustItem("4", "Tiramisu", "Dessert", 6.99, "Coffee-flavored Italian dessert"),
		mustItem("5", "Porotta Roll (Chicken)", "Rolls", 7.50, "Flaky porotta bread rolled with spiced chicken filling"),
		mustItem("6", "Karak Chai", "Beverage", 2.50, "Strong, spiced tea with milk, a popular classic"),
		mustItem("7", "Fresh Milk Tea", "Beverage", 2.00, "Traditional tea made with fresh milk"),
		mustItem("8", "Butter Chicken", "Main", 15.99, "Creamy and tangy grilled chicken in a rich tomato sauce"),
		mustItem("9", "Vegetable Biryani", "Main", 13.50, "Aromatic basmati rice cooked with mixed vegetables and spices"),
		mustItem("10", "Chicken Shawarma Plate", "Main", 11.99, "Sliced marinated chicken served with pita and garlic sauce"),
		mustItem("11", "Falafel Wrap", "Rolls", 8.00, "Crispy falafel balls with tahini sauce and veggies in a wrap"),
		mustItem("12", "Mango Lassi", "Beverage", 4.50, "Cooling yogurt-based mango smoothie"),
		mustItem("13", "Beef Burger", "Main", 10.50, "Grilled beef patty with lettuce, tomato, and cheese"),
		mustItem("14", "Fries", "Side", 3.50, "Crispy golden french fries"),
		mustItem("15", "Coke", "Beverage", 1.50, "Classic Coca-Cola"),
	}
}

// mustItem builds a seed item; the seed data is static and known-good, so a
// construction failure here is a programming error.
func mustItem(id, name, category string, price float64, description string) Item {
	money, err := kernel.MoneyFromFloat(price)
	if err != nil {
		panic(err)
	}
	item, err := NewItem(id, name, category, money, description)
	if err != nil {
		panic(err)
	}
	return item
}
