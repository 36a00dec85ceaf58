// Package cart manages the client-local shopping cart. The cart lives in a
// single JSON file under a fixed name, the on-device equivalent of the
// browser storage key the web front-end used, and is never persisted to the
// server; it only feeds order submission.
package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// FileName is the fixed storage key for the cart file.
const FileName = ".cart.json"

// Line is one cart entry: a product reference with its unit price at the
// time it was added and a quantity.
type Line struct {
	ProductID string  `json:"_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the working cart, re-derived from the cart file on each load.
type Cart struct {
	path  string
	Lines []Line
}

// Load reads the cart file from dir. A missing file is an empty cart.
func Load(dir string) (*Cart, error) {
	c := &Cart{path: filepath.Join(dir, FileName)}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	if err := json.Unmarshal(data, &c.Lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}

	return c, nil
}

// Add appends a line; an existing line for the same product has its
// quantity increased instead.
func (c *Cart) Add(line Line) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// Save writes the cart back to its file.
func (c *Cart) Save() error {
	data, err := json.Marshal(c.Lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	return nil
}

// Clear removes the cart file and empties the in-memory lines.
func (c *Cart) Clear() error {
	c.Lines = nil
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cart file: %w", err)
	}
	return nil
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Total is the full-precision sum of price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// SubmissionTotal is the total rounded to two decimal places, the value sent
// with an order creation request.
func (c *Cart) SubmissionTotal() float64 {
	return c.Total().Round(2).InexactFloat64()
}

// Flatten expands the cart into the order products sequence: each product id
// is repeated once per unit so quantities survive the bare-id wire format.
func (c *Cart) Flatten() []string {
	ids := make([]string, 0, len(c.Lines))
	for _, l := range c.Lines {
		for i := 0; i < l.Quantity; i++ {
			ids = append(ids, l.ProductID)
		}
	}
	return ids
}
