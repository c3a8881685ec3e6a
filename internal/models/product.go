package models

// Category groups products for display purposes only.
type Category int

const (
	Drink Category = iota
	Snack
	Tech
)

// String returns the lowercase category name used in JSON payloads.
func (c Category) String() string {
	switch c {
	case Drink:
		return "drink"
	case Snack:
		return "snack"
	case Tech:
		return "tech"
	}
	return "unknown"
}

// Icon returns the fixed-width label shown in the inventory table.
func (c Category) Icon() string {
	switch c {
	case Drink:
		return "[ Drink ]"
	case Snack:
		return "[ Snack ]"
	case Tech:
		return "[ Tech  ]"
	}
	return "[   ?   ]"
}

// MarshalText lets categories render as names in JSON.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Product represents a slot in the vending machine.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    Money    `json:"price"`
	Stock    int      `json:"stock"`
	Category Category `json:"category"`
}

// InStock reports whether at least one unit can be dispensed.
func (p Product) InStock() bool {
	return p.Stock > 0
}
