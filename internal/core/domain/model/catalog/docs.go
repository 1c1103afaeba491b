// Package catalog holds the read-only restaurant and dish records consumed by
// order placement. Only the restaurant owner and the dish price/option
// definitions matter to ordering; menu management lives elsewhere.
package catalog
