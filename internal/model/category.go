package model

// Category — закрытый перечень категорий вещей. API-слой отклоняет
// значения вне списка.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryJewelry     Category = "jewelry"
	CategoryClothing    Category = "clothing"
	CategoryBags        Category = "bags"
	CategoryKeys        Category = "keys"
	CategoryDocuments   Category = "documents"
	CategoryPets        Category = "pets"
	CategoryVehicles    Category = "vehicles"
	CategorySports      Category = "sports"
	CategoryBooks       Category = "books"
	CategoryToys        Category = "toys"
	CategoryOther       Category = "other"
)

// Categories возвращает полный список категорий в фиксированном порядке.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryJewelry,
		CategoryClothing,
		CategoryBags,
		CategoryKeys,
		CategoryDocuments,
		CategoryPets,
		CategoryVehicles,
		CategorySports,
		CategoryBooks,
		CategoryToys,
		CategoryOther,
	}
}

// Valid проверяет, что категория из закрытого перечня.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
