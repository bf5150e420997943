package catalog

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/edulearn/core"
)

var (
	// custom validation tags & texts
	levelTag  = "level"
	levelText = "level must be one of: " + strings.Join(Levels, ", ")
)

// InitValidators registers the catalog validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(levelTag, levelValidation)
	core.RegisterCustomTranslation(validate, translator, levelTag, levelText)
}

func levelValidation(fl validator.FieldLevel) bool {
	if lvl, ok := fl.Field().Interface().(string); ok {
		return isLevel(lvl)
	}
	return false
}

func isLevel(lvl string) bool {
	for _, l := range Levels {
		if l == lvl {
			return true
		}
	}
	return false
}
