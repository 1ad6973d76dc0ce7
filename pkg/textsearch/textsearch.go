// Package textsearch concentra a busca por substring usada nas listagens:
// sem distinção de maiúsculas/minúsculas nem de acentos, adequada a nomes
// em português (ex.: "joao" encontra "João").
package textsearch

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

var matcher = search.New(language.BrazilianPortuguese, search.Loose)

// Contains informa se needle ocorre em haystack ignorando caixa e acentos.
// needle vazio casa com qualquer valor.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	start, _ := matcher.IndexString(haystack, needle)
	return start >= 0
}

// ContainsAny informa se needle ocorre em algum dos valores.
func ContainsAny(needle string, values ...string) bool {
	for _, v := range values {
		if Contains(v, needle) {
			return true
		}
	}
	return false
}
