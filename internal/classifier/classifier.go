// Package classifier maps merchant-category codes and merchant names to
// benefit categories using immutable lookup tables built once at construction.
package classifier

import (
	"strings"

	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
)

// Table holds the classification rules for a single category: the MCC codes it
// owns and the case-insensitive merchant-name keywords that imply it.
type Table struct {
	Category models.Category
	Codes    []string
	Keywords []string
}

// Config is the full classification rule set. Table order is priority order
// for merchant-name matching: the first table whose keyword matches wins.
type Config struct {
	Tables []Table
}

// DefaultConfig returns the reference classification tables.
// CASH owns no codes and no keywords and is reachable only as the default.
func DefaultConfig() Config {
	return Config{
		Tables: []Table{
			{
				Category: models.CategoryFood,
				Codes:    []string{"5411", "5412"},
				Keywords: []string{"comida", "food", "eat", "restaurante", "padaria"},
			},
			{
				Category: models.CategoryMeal,
				Codes:    []string{"5811", "5812"},
				Keywords: []string{"mercado", "quitanda", "emporio", "meal", "market"},
			},
			{
				Category: models.CategoryCash,
			},
		},
	}
}

// Classifier resolves purchase categories. It is a pure function of its inputs
// and the tables given at construction.
type Classifier struct {
	tables []Table
	byCode map[string]models.Category
}

// New builds a Classifier from the given config. The config is copied;
// mutating it afterwards does not affect the classifier.
func New(cfg Config) *Classifier {
	c := &Classifier{
		tables: make([]Table, 0, len(cfg.Tables)),
		byCode: make(map[string]models.Category),
	}
	for _, t := range cfg.Tables {
		copied := Table{
			Category: t.Category,
			Codes:    append([]string(nil), t.Codes...),
			Keywords: make([]string, 0, len(t.Keywords)),
		}
		for _, kw := range t.Keywords {
			copied.Keywords = append(copied.Keywords, strings.ToLower(kw))
		}
		for _, code := range copied.Codes {
			c.byCode[code] = copied.Category
		}
		c.tables = append(c.tables, copied)
	}
	return c
}

// Classify returns the benefit category for a purchase.
//
// When considerMerchant is true the merchant name is scanned first: if it
// contains a keyword of some category, that category's canonical code is used
// instead of the provided MCC. Otherwise the MCC is looked up directly, and
// CASH is returned when no category owns it.
func (c *Classifier) Classify(mcc, merchant string, considerMerchant bool) models.Category {
	if considerMerchant {
		if code, ok := c.MCCForMerchant(merchant); ok {
			return c.categoryByCode(code)
		}
	}
	return c.categoryByCode(mcc)
}

// MCCForMerchant derives an MCC from a merchant name. Tables are checked in
// configured order and the first keyword match wins; the returned code is the
// matching category's canonical (first) code. ok is false when no keyword of
// any category appears in the name.
func (c *Classifier) MCCForMerchant(merchant string) (string, bool) {
	lowered := strings.ToLower(merchant)
	for _, t := range c.tables {
		if len(t.Codes) == 0 {
			continue
		}
		for _, kw := range t.Keywords {
			if strings.Contains(lowered, kw) {
				return t.Codes[0], true
			}
		}
	}
	return "", false
}

func (c *Classifier) categoryByCode(code string) models.Category {
	if category, ok := c.byCode[code]; ok {
		return category
	}
	return models.CategoryCash
}
