// Package brdoc formata e valida documentos e telefones brasileiros usados
// nos cadastros do Sistema CT (CPF e telefone fixo/celular).
package brdoc

import (
	"regexp"
	"strings"
)

var (
	cpfPattern   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// Digits remove tudo que não é dígito.
func Digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// FormatCPF canonicaliza um CPF para NNN.NNN.NNN-NN.
// Entradas que não têm 11 dígitos são devolvidas apenas com os dígitos,
// sem máscara, para que a validação as rejeite.
func FormatCPF(s string) string {
	d := Digits(s)
	if len(d) != 11 {
		return d
	}
	var b strings.Builder
	b.WriteString(d[0:3])
	b.WriteByte('.')
	b.WriteString(d[3:6])
	b.WriteByte('.')
	b.WriteString(d[6:9])
	b.WriteByte('-')
	b.WriteString(d[9:11])
	return b.String()
}

// ValidCPF informa se o valor está no formato canônico NNN.NNN.NNN-NN.
func ValidCPF(s string) bool {
	return cpfPattern.MatchString(s)
}

// FormatPhone canonicaliza um telefone para (NN) NNNN-NNNN (fixo, 10 dígitos)
// ou (NN) NNNNN-NNNN (celular, 11 dígitos). Outros tamanhos voltam só com dígitos.
func FormatPhone(s string) string {
	d := Digits(s)
	switch len(d) {
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	default:
		return d
	}
}

// ValidPhone informa se o valor está em um dos formatos canônicos de telefone.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
