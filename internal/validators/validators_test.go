package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCPF(t *testing.T) {
	assert.True(t, IsCPF("529.982.247-25"))
	assert.True(t, IsCPF("52998224725"))
	assert.True(t, IsCPF("12345678909"))

	assert.False(t, IsCPF("52998224724"))
	assert.False(t, IsCPF("111.111.111-11"))
	assert.False(t, IsCPF("1234567890"))
	assert.False(t, IsCPF("abc"))
}

func TestIsHHMM(t *testing.T) {
	assert.True(t, IsHHMM("09:00"))
	assert.True(t, IsHHMM("23:59"))
	assert.False(t, IsHHMM("24:00"))
	assert.False(t, IsHHMM("9:00"))
	assert.False(t, IsHHMM("09:60"))
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	type req struct {
		Start string `validate:"omitempty,hhmm"`
		CPF   string `validate:"required,cpf"`
	}

	assert.NoError(t, v.Struct(req{Start: "08:30", CPF: "529.982.247-25"}))
	assert.Error(t, v.Struct(req{Start: "8h", CPF: "529.982.247-25"}))
	assert.Error(t, v.Struct(req{CPF: "00000000000"}))
}
