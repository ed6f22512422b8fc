package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// Validator DTO doğrulayıcı; ilk hatalı alanı ValidationError'a çevirir
type Validator struct {
	validate *validator.Validate
}

// New json tag isimleriyle çalışan validator oluşturur
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Hata mesajında Go alan adı yerine json adı görünsün
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal alanları gt/gte/lte kurallarına float olarak girer
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &Validator{validate: v}
}

// Struct struct'ı doğrular
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return errors.NewValidationError(fe.Field(), fe.Value(), expectation(fe))
	}

	return errors.NewValidationError("body", nil, err.Error())
}

// expectation validator tag'ini okunur beklenti metnine çevirir
func expectation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "zorunlu alan"
	case "gt":
		return fmt.Sprintf("%s değerinden büyük", fe.Param())
	case "gte":
		return fmt.Sprintf("en az %s", fe.Param())
	case "lte":
		return fmt.Sprintf("en fazla %s", fe.Param())
	case "max":
		return fmt.Sprintf("en fazla %s karakter", fe.Param())
	case "min":
		return fmt.Sprintf("en az %s karakter", fe.Param())
	case "len":
		return fmt.Sprintf("tam %s karakter", fe.Param())
	case "oneof":
		return fmt.Sprintf("şunlardan biri: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return "geçerli email adresi"
	case "numeric":
		return "sadece rakam"
	case "datetime":
		return "YYYY-MM-DD formatında tarih"
	default:
		return fe.Tag()
	}
}
