package models

// CategoryAll is the pseudo category that matches every product.
const CategoryAll = "all"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
