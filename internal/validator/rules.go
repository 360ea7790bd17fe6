package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	walletRe  = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	hexCodeRe = regexp.MustCompile(`^[0-9a-fA-F]{16,128}$`)
)

// registerCustomRules регистрирует доменные правила валидации.
func registerCustomRules(v *validator.Validate) error {
	// wallet: адрес кошелька в формате 0x + 40 hex
	if err := v.RegisterValidation("wallet", func(fl validator.FieldLevel) bool {
		return walletRe.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	// hexcode: реферальный код - непустой hex разумной длины.
	// Длина четная не требуется: код сравнивается как строка байт.
	if err := v.RegisterValidation("hexcode", func(fl validator.FieldLevel) bool {
		return hexCodeRe.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	return nil
}
