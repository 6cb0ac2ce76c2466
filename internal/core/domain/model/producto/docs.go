// Package producto holds the pharmacy catalogue entry and its stock.
//
// Stock is a plain non-negative counter; the panel groups products by
// StockLevel into three inventory sections.
package producto
