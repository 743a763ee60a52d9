package models

// Product is one entry of the fixed catalog. Prices are in VND, which has no
// sub-unit, so amounts stay integral end to end.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Emoji    string `json:"emoji"`
	Category string `json:"category"`
}
