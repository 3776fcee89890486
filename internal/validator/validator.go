package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yububu-edu/progress-service/internal/models"
)

// Validator wraps struct-tag validation with the domain's custom rules.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with all custom rules registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
	}
}

// Validate validates struct tags, including the custom domain rules.
func (v *Validator) Validate(s interface{}) error {
	return v.structValidator.Struct(s)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("learning_difficulty", validateLearningDifficulty)
	validate.RegisterValidation("badge_type", validateBadgeType)
	validate.RegisterValidation("difficulty_level", validateDifficultyLevel)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateLearningDifficulty(fl validator.FieldLevel) bool {
	validDifficulties := []models.LearningDifficulty{
		models.DifficultyDyslexia,
		models.DifficultyAutism,
		models.DifficultyDyscalculia,
		models.DifficultyADHD,
	}

	value := fl.Field().String()
	for _, difficulty := range validDifficulties {
		if string(difficulty) == value {
			return true
		}
	}
	return false
}

func validateBadgeType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, badgeType := range models.AllBadgeTypes {
		if string(badgeType) == value {
			return true
		}
	}
	return false
}

func validateDifficultyLevel(fl validator.FieldLevel) bool {
	level := fl.Field().Int()
	return level >= int64(models.LevelBeginner) && level <= int64(models.LevelAdvanced)
}
