package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "institute-portal-backend/internal/errors"
)

func TestIsCPF(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},
		{"111.444.777-35", true},
		{"529.982.247-24", false},
		{"111.111.111-11", false},
		{"1234567890", false},
		{"", false},
		{"529x982x247x25", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCPF(tt.in))
		})
	}
}

func TestIsCNPJ(t *testing.T) {
	assert.True(t, IsCNPJ("11.222.333/0001-81"))
	assert.True(t, IsCNPJ("11222333000181"))
	assert.False(t, IsCNPJ("11.222.333/0001-82"))
	assert.False(t, IsCNPJ("00000000000000"))
}

func TestIsPhoneBR(t *testing.T) {
	assert.True(t, IsPhoneBR("(61) 3322-1100"))
	assert.True(t, IsPhoneBR("(61) 99876-5432"))
	assert.True(t, IsPhoneBR("+55 61 99876-5432"))
	assert.False(t, IsPhoneBR("(61) 89876-5432"))
	assert.False(t, IsPhoneBR("(01) 3322-1100"))
	assert.False(t, IsPhoneBR("3322-1100"))
}

func TestIsINEPAndUF(t *testing.T) {
	assert.True(t, IsINEP("53012345"))
	assert.False(t, IsINEP("5301234"))
	assert.False(t, IsINEP("5301234a"))
	assert.True(t, IsUF("df"))
	assert.False(t, IsUF("XX"))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatCPF("52998224725"))
	assert.Equal(t, "***.982.247-**", MaskCPF("529.982.247-25"))
	assert.Equal(t, "52998224725", NormalizeCPF("529.982.247-25"))
	assert.Equal(t, "abc", FormatCPF("abc"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "inscricoes-abertas-para-gestores", Slugify("Inscrições abertas para Gestores!"))
	assert.Equal(t, "reuniao-do-conselho-2024", Slugify("  Reunião do Conselho — 2024 "))
}

type preRegistrationForm struct {
	FullName string `json:"full_name" validate:"required"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Phone    string `json:"phone" validate:"omitempty,phone_br"`
	INEP     string `json:"school_inep" validate:"omitempty,inep"`
	Slug     string `json:"slug" validate:"omitempty,slug"`
}

func TestStructReportsFieldsByJSONName(t *testing.T) {
	v := New()

	err := Struct(v, &preRegistrationForm{FullName: "Ana", CPF: "123.456.789-00", INEP: "123"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	fields := Describe(v.Struct(&preRegistrationForm{CPF: "123.456.789-00", INEP: "123", Slug: "Bad Slug"}))
	assert.Equal(t, "is required", fields["full_name"])
	assert.Equal(t, "must be a valid CPF", fields["cpf"])
	assert.Equal(t, "must have exactly 8 digits", fields["school_inep"])
	assert.Contains(t, fields["slug"], "lowercase")

	assert.NoError(t, Struct(v, &preRegistrationForm{FullName: "Ana", CPF: "529.982.247-25", Phone: "61999998888"}))
}

func TestDescribeNonValidatorError(t *testing.T) {
	assert.Nil(t, Describe(assert.AnError))
}
