// Package validation holds the validator instance shared by the services and
// the Brazilian document/format rules the portal forms depend on.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	apperrors "institute-portal-backend/internal/errors"
)

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugSeparators  = regexp.MustCompile(`[^a-z0-9]+`)
	protocolPattern = regexp.MustCompile(`^\d{8}-[A-Z0-9]{6}$`)
)

// New returns a validator with the portal's custom tags registered and
// field names reported by their json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "cpf", func(fl validator.FieldLevel) bool { return IsCPF(fl.Field().String()) })
	mustRegister(v, "cnpj", func(fl validator.FieldLevel) bool { return IsCNPJ(fl.Field().String()) })
	mustRegister(v, "phone_br", func(fl validator.FieldLevel) bool { return IsPhoneBR(fl.Field().String()) })
	mustRegister(v, "inep", func(fl validator.FieldLevel) bool { return IsINEP(fl.Field().String()) })
	mustRegister(v, "cep", func(fl validator.FieldLevel) bool { return len(OnlyDigits(fl.Field().String())) == 8 })
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool { return slugPattern.MatchString(fl.Field().String()) })
	mustRegister(v, "protocol", func(fl validator.FieldLevel) bool { return protocolPattern.MatchString(fl.Field().String()) })
	mustRegister(v, "uf", func(fl validator.FieldLevel) bool { return IsUF(fl.Field().String()) })

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Describe flattens validator errors into a field -> message map. It returns
// nil when err did not come from struct validation.
func Describe(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// Struct validates s and converts failures into an apperrors.ValidationError
// carrying the per-field messages.
func Struct(v *validator.Validate, s interface{}) error {
	if err := v.Struct(s); err != nil {
		if fields := Describe(err); fields != nil {
			return apperrors.NewFieldsValidationError(fields)
		}
		return apperrors.NewValidationError("", err.Error())
	}
	return nil
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return "is required"
	case "email":
		return "must be a valid email"
	case "cpf":
		return "must be a valid CPF"
	case "cnpj":
		return "must be a valid CNPJ"
	case "phone_br":
		return "must be a valid Brazilian phone number with area code"
	case "inep":
		return "must have exactly 8 digits"
	case "cep":
		return "must have 8 digits"
	case "slug":
		return "must contain only lowercase letters, digits and hyphens"
	case "protocol":
		return "must look like YYYYMMDD-XXXXXX"
	case "uf":
		return "must be a valid state abbreviation"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte", "gtfield":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

// OnlyDigits strips everything but ASCII digits.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCPF returns the 11 digits of a CPF typed with or without mask.
func NormalizeCPF(s string) string {
	return OnlyDigits(s)
}

// FormatCPF renders 11 digits as 000.000.000-00. Other input is returned unchanged.
func FormatCPF(s string) string {
	d := OnlyDigits(s)
	if len(d) != 11 {
		return s
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// MaskCPF hides the middle digits (***.456.789-**) for public responses.
func MaskCPF(s string) string {
	d := OnlyDigits(s)
	if len(d) != 11 {
		return ""
	}
	return "***." + d[3:6] + "." + d[6:9] + "-**"
}

// IsCPF checks length, repeated digits and both check digits.
func IsCPF(s string) bool {
	d := OnlyDigits(s)
	if len(d) != 11 || allSame(d) {
		return false
	}
	// the raw value may only carry the usual mask characters
	if strings.Trim(s, "0123456789.- ") != "" {
		return false
	}
	return cpfDigit(d[:9], 10) == d[9] && cpfDigit(d[:10], 11) == d[10]
}

func cpfDigit(base string, weight int) byte {
	sum := 0
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * (weight - i)
	}
	r := (sum * 10) % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}

// IsCNPJ checks length, repeated digits and both check digits.
func IsCNPJ(s string) bool {
	d := OnlyDigits(s)
	if len(d) != 14 || allSame(d) {
		return false
	}
	w1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	w2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	return cnpjDigit(d[:12], w1) == d[12] && cnpjDigit(d[:13], w2) == d[13]
}

func cnpjDigit(base string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(base[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

// IsPhoneBR accepts 10 digit landlines and 11 digit mobiles (9 after the
// area code), optionally prefixed with the 55 country code.
func IsPhoneBR(s string) bool {
	d := OnlyDigits(s)
	if (len(d) == 12 || len(d) == 13) && strings.HasPrefix(d, "55") {
		d = d[2:]
	}
	if len(d) != 10 && len(d) != 11 {
		return false
	}
	// area codes run 11-99 and never end in zero
	if d[0] == '0' || d[1] == '0' {
		return false
	}
	if len(d) == 11 && d[2] != '9' {
		return false
	}
	return true
}

// IsINEP reports whether s is an 8 digit INEP school code.
func IsINEP(s string) bool {
	if len(s) != 8 {
		return false
	}
	return OnlyDigits(s) == s
}

var ufs = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {}, "ES": {}, "GO": {},
	"MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {}, "PB": {}, "PR": {}, "PE": {}, "PI": {},
	"RJ": {}, "RN": {}, "RS": {}, "RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// IsUF reports whether s is a Brazilian state abbreviation.
func IsUF(s string) bool {
	_, ok := ufs[strings.ToUpper(s)]
	return ok
}

// Slugify lowercases, strips accents and joins words with hyphens.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	slug := slugSeparators.ReplaceAllString(strings.ToLower(plain), "-")
	return strings.Trim(slug, "-")
}

func allSame(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
