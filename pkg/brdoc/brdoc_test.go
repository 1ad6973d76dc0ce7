package brdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sistemact/sistema-ct/pkg/brdoc"
)

// CPF cru com 11 dígitos deve ganhar a máscara canônica antes da validação.
func TestFormatCPF_Canonicaliza(t *testing.T) {
	assert.Equal(t, "123.456.789-00", brdoc.FormatCPF("12345678900"))
	assert.Equal(t, "123.456.789-00", brdoc.FormatCPF("123.456.789-00"))
	assert.Equal(t, "123.456.789-00", brdoc.FormatCPF("123 456 789 00"))
}

// Entradas com tamanho errado voltam sem máscara e falham na validação.
func TestFormatCPF_TamanhoInvalido(t *testing.T) {
	assert.Equal(t, "1234567890", brdoc.FormatCPF("1234567890"))
	assert.False(t, brdoc.ValidCPF(brdoc.FormatCPF("1234567890")))
}

func TestValidCPF(t *testing.T) {
	assert.True(t, brdoc.ValidCPF("123.456.789-00"))
	assert.False(t, brdoc.ValidCPF("12345678900"))
	assert.False(t, brdoc.ValidCPF("123.456.789-0"))
	assert.False(t, brdoc.ValidCPF("abc.def.ghi-jk"))
	assert.False(t, brdoc.ValidCPF(""))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 3333-3333", brdoc.FormatPhone("1133333333"))
	assert.Equal(t, "(11) 99999-9999", brdoc.FormatPhone("11999999999"))
	assert.Equal(t, "(11) 99999-9999", brdoc.FormatPhone("(11) 99999-9999"))
	// tamanho fora do esperado: só dígitos, sem máscara
	assert.Equal(t, "119999", brdoc.FormatPhone("11 9999"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, brdoc.ValidPhone("(11) 3333-3333"))
	assert.True(t, brdoc.ValidPhone("(11) 99999-9999"))
	assert.False(t, brdoc.ValidPhone("11999999999"))
}
