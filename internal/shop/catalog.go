package shop

import "strings"

// Product is a catalog entry: one SKU, not a physical unit. Serial
// numbers identify units once they leave store stock.
type Product struct {
	ID    string
	Name  string
	Price float64
}

// Category is the first three characters of a product ID, upper-cased.
// Every pricing and restriction rule keys off this prefix.
func Category(productID string) string {
	if len(productID) < 3 {
		return ""
	}
	return strings.ToUpper(productID[:3])
}

// initialStock is the seeded per-SKU count for a fresh store.
const initialStock = 999

// catalogSeed lists every SKU stocked across both floors. The IDs,
// names and prices are the shelf-display values the checkout charges;
// tilecatalog.go maps them onto grid coordinates.
var catalogSeed = []Product{
	// Ground floor, chilled counter.
	{"CHK00001", "Chicken Thigh Fillet", 280.00},
	{"CHK00002", "Chicken Breast Fillet", 320.00},
	{"CHK00003", "Ground Chicken", 250.00},
	{"BEF00001", "Beef Rib", 450.00},
	{"BEF00002", "Beef Shank", 380.00},
	{"BEF00003", "Ground Beef", 420.00},
	{"SEA00001", "Tilapia", 320.00},
	{"SEA00002", "Sugpo", 580.00},
	{"SEA00003", "Squid", 420.00},

	// Ground floor, shelf aisle 1.
	{"ALC00001", "Beer", 50.00},
	{"ALC00002", "Wine", 450.00},
	{"ALC00003", "Whiskey", 850.00},
	{"ALC00004", "Vodka", 750.00},
	{"ALC00005", "Brandy", 650.00},
	{"ALC00006", "Champagne", 1200.00},
	{"ALC00007", "Rum", 580.00},
	{"ALC00008", "Gin", 520.00},
	{"CON00001", "Salt", 25.00},
	{"CON00002", "Pepper", 35.00},
	{"CON00003", "Soy Sauce", 65.00},
	{"CON00004", "Vinegar", 48.00},
	{"CON00005", "Butter", 185.00},
	{"CON00006", "Cooking Oil", 95.00},
	{"CON00007", "Honey", 125.00},
	{"CON00008", "Corn Syrup", 75.00},

	// Ground floor, shelf aisle 2.
	{"SFT00001", "Sparkling Water", 55.00},
	{"SFT00002", "Coke", 45.00},
	{"SFT00003", "Sprite", 45.00},
	{"SFT00004", "Mountain Dew", 50.00},
	{"SFT00005", "Royal", 40.00},
	{"SFT00006", "7-Up", 45.00},
	{"SFT00007", "Gatorade", 65.00},
	{"SFT00008", "Lemonade", 35.00},
	{"JUC00001", "Orange Juice", 65.00},
	{"JUC00002", "Pineapple Juice", 55.00},
	{"JUC00003", "Mango Juice", 60.00},
	{"JUC00004", "Apple Juice", 58.00},
	{"JUC00005", "Grape Juice", 62.00},
	{"JUC00006", "Tomato Juice", 48.00},
	{"JUC00007", "Carrot Juice", 52.00},
	{"JUC00008", "Mixed Fruit Juice", 75.00},

	// Ground floor, shelf aisle 3.
	{"CER00001", "Oatmeal", 95.00},
	{"CER00002", "Corn Flakes", 125.00},
	{"CER00003", "Honey Bunches", 115.00},
	{"CER00004", "Wheat Bran", 85.00},
	{"CER00005", "Rice Krispies", 105.00},
	{"CER00006", "Frosted Flakes", 110.00},
	{"CER00007", "Granola", 145.00},
	{"CER00008", "Bran Flakes", 95.00},
	{"NDL00001", "Instant Noodles", 8.50},
	{"NDL00002", "Ramen", 25.00},
	{"NDL00003", "Lomi", 12.00},
	{"NDL00004", "Pancit Canton", 15.00},
	{"NDL00005", "Spaghetti", 35.00},
	{"NDL00006", "Pasta", 42.00},
	{"NDL00007", "Udon", 48.00},
	{"NDL00008", "Glass Noodles", 38.00},

	// Ground floor, shelf aisle 4.
	{"CAN00001", "Canned Tuna", 42.00},
	{"CAN00002", "Canned Sardines", 28.00},
	{"CAN00003", "Canned Beans", 35.00},
	{"CAN00004", "Canned Corn", 32.00},
	{"CAN00005", "Canned Peas", 30.00},
	{"CAN00006", "Canned Mushroom", 45.00},
	{"CAN00007", "Canned Coconut Milk", 55.00},
	{"CAN00008", "Canned Tomato", 38.00},
	{"SNK00001", "Candies", 45.00},
	{"SNK00002", "Cookies", 65.00},
	{"SNK00003", "Crackers", 55.00},
	{"SNK00004", "Chips", 48.00},
	{"SNK00005", "Peanuts", 75.00},
	{"SNK00006", "Chocolate", 85.00},
	{"SNK00007", "Wafers", 62.00},
	{"SNK00008", "Pretzels", 58.00},

	// Ground floor, produce tables.
	{"FRU00001", "Apples", 65.00},
	{"FRU00002", "Bananas", 45.00},
	{"FRU00003", "Oranges", 55.00},
	{"FRU00004", "Grapes", 125.00},

	// Upper floor, fridge units.
	{"MLK00001", "Fresh Milk", 68.00},
	{"MLK00002", "Soy Milk", 65.00},
	{"MLK00003", "Almond Milk", 95.00},
	{"FRZ00001", "Hotdog", 85.00},
	{"FRZ00002", "Chicken Nuggets", 125.00},
	{"FRZ00003", "Tocino", 155.00},
	{"CHS00001", "Sliced Cheese", 145.00},
	{"CHS00002", "Keso de Bola", 175.00},
	{"CHS00003", "Mozzarella", 185.00},

	// Upper floor, shelf aisle 1.
	{"PET00001", "Cat Food", 125.00},
	{"PET00002", "Dog Food", 145.00},
	{"PET00003", "Fish Food", 65.00},
	{"PET00004", "Bird Food", 85.00},
	{"PET00005", "Cat Treats", 95.00},
	{"PET00006", "Dog Treats", 105.00},
	{"PET00007", "Hamster Food", 55.00},
	{"PET00008", "Reptile Food", 125.00},
	{"STN00001", "Paper", 65.00},
	{"STN00002", "Pencil", 25.00},
	{"STN00003", "Ballpoint Pen", 8.00},
	{"STN00004", "Marker", 15.00},
	{"STN00005", "Pushpins", 12.00},
	{"STN00006", "Paper Clip", 10.00},
	{"STN00007", "Scissors", 45.00},
	{"STN00008", "Ruler", 20.00},

	// Upper floor, shelf aisle 2.
	{"CLO00001", "Shirts", 299.00},
	{"CLO00002", "Jeans", 599.00},
	{"CLO00003", "Dresses", 449.00},
	{"CLO00004", "Polo", 349.00},
	{"CLO00005", "T-Shirts", 199.00},
	{"CLO00006", "Jackets", 799.00},
	{"CLO00007", "Skirts", 399.00},
	{"CLO00008", "Blouse", 349.00},
	{"DEN00001", "Toothpaste", 68.00},
	{"DEN00002", "Toothbrush", 45.00},
	{"DEN00003", "Dental Floss", 55.00},
	{"DEN00004", "Mouthwash", 85.00},
	{"DEN00005", "Whitening Strip", 125.00},
	{"DEN00006", "Sensitive Toothpaste", 95.00},
	{"DEN00007", "Electric Toothbrush", 599.00},
	{"DEN00008", "Natural Mouthwash", 95.00},

	// Upper floor, shelf aisle 3.
	{"CLE00001", "Detergent", 85.00},
	{"CLE00002", "Bleach", 75.00},
	{"CLE00003", "Sponge", 25.00},
	{"CLE00004", "Brush", 35.00},
	{"CLE00005", "Bucket", 95.00},
	{"CLE00006", "Tissue Paper", 45.00},
	{"CLE00007", "Liquid Soap", 65.00},
	{"CLE00008", "Broom", 125.00},
	{"HAR00001", "Shampoo", 120.00},
	{"HAR00002", "Conditioner", 130.00},
	{"HAR00003", "Hair Oil", 95.00},
	{"HAR00004", "Hair Cream", 110.00},
	{"HAR00005", "Gel", 85.00},
	{"HAR00006", "Hair Spray", 75.00},
	{"HAR00007", "Hair Mask", 140.00},
	{"HAR00008", "Hair Serum", 165.00},

	// Upper floor, shelf aisle 4.
	{"HOM00001", "Broom", 125.00},
	{"HOM00002", "Dustpan", 45.00},
	{"HOM00003", "Mop", 185.00},
	{"HOM00004", "Bucket", 95.00},
	{"HOM00005", "Cloth", 15.00},
	{"HOM00006", "Towel", 125.00},
	{"HOM00007", "Mat", 95.00},
	{"HOM00008", "Curtain", 299.00},
	{"BOD00001", "Soap", 45.00},
	{"BOD00002", "Body Wash", 95.00},
	{"BOD00003", "Lotion", 105.00},
	{"BOD00004", "Deodorant", 75.00},
	{"BOD00005", "Body Oil", 125.00},
	{"BOD00006", "Shaving Cream", 85.00},
	{"BOD00007", "Face Wash", 65.00},
	{"BOD00008", "Face Moisturizer", 145.00},

	// Upper floor, tables and dining areas.
	{"VEG00001", "Cabbage", 28.00},
	{"VEG00002", "Carrot", 35.00},
	{"VEG00003", "Cucumber", 25.00},
	{"VEG00004", "Onion", 20.00},
	{"BRD00001", "Baguette", 35.00},
	{"BRD00002", "Sandwich Bread", 45.00},
	{"BRD00003", "Croissant", 55.00},
	{"BRD00004", "Toast", 25.00},
	{"EGG00001", "Brown Eggs", 180.00},
	{"EGG00002", "White Eggs", 175.00},
	{"EGG00003", "Duck Eggs", 220.00},
	{"EGG00004", "Quail Eggs", 90.00},
}
