package domain

// MenuItem mirrors a row of the menu_items table.
type MenuItem struct {
	MenuID       int      `json:"menu_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	Items        []string `json:"items"`
	Img          string   `json:"img"`
	Stocks       int      `json:"stocks"`
	MainCategory string   `json:"main_category"`
}
