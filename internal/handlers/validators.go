package handlers

import (
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators wires domain-aware validations into gin's binding
// engine. Must run before the router starts handling requests.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nodecategory", validateNodeCategory)
	}
}

func validateNodeCategory(fl validator.FieldLevel) bool {
	switch domain.Category(fl.Field().String()) {
	case domain.CategoryIncome, domain.CategoryExpense, domain.CategoryOrganization:
		return true
	}
	return false
}
