package domain

import "strings"

type Symbol string

// DefaultSymbols is the fixed label list a deck is built from.
var DefaultSymbols = []Symbol{
	"diamond",
	"paper-plane",
	"anchor",
	"bolt",
	"cube",
	"leaf",
	"bicycle",
	"bomb",
}

func SymbolsFromStrings(values []string) []Symbol {
	symbols := make([]Symbol, 0, len(values))
	for _, value := range values {
		symbols = append(symbols, Symbol(strings.TrimSpace(value)))
	}
	return symbols
}

func SymbolStrings(symbols []Symbol) []string {
	values := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		values = append(values, string(symbol))
	}
	return values
}
