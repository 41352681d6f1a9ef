package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the catalog's custom rules registered.
// All DTO validation in the app goes through an instance from here.
func NewValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for a blank tag name.
	_ = v.RegisterValidation("decimal82", validateDecimal82)
	return v
}

// validateDecimal82 checks that a price has at most 8 integer digits and at
// most 2 fraction digits.
func validateDecimal82(fl validator.FieldLevel) bool {
	s := strconv.FormatFloat(fl.Field().Float(), 'f', -1, 64)
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")
	return len(intPart) <= 8 && len(fracPart) <= 2
}

// ValidationMessages turns validator errors into one human-readable message
// per violated field, keyed by the JSON-facing field name.
func ValidationMessages(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(errs))
	for _, e := range errs {
		messages[jsonFieldName(e.Field())] = messageFor(e)
	}
	return messages
}

func jsonFieldName(field string) string {
	if field == "ImageURL" {
		return "imageUrl"
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func messageFor(e validator.FieldError) string {
	switch e.Field() {
	case "Name":
		if e.Tag() == "required" {
			if e.StructNamespace() == "RegisterRequest.Name" {
				return "Name is required"
			}
			return "Product name is required"
		}
		return "Product name must be between 2 and 100 characters"
	case "Description":
		if e.Tag() == "required" {
			return "Description is required"
		}
		return "Description must be between 10 and 1000 characters"
	case "Price":
		switch e.Tag() {
		case "required":
			return "Price is required"
		case "gt":
			return "Price must be greater than 0"
		default:
			return "Price format is invalid"
		}
	case "Category":
		return "Category is required"
	case "StockQuantity":
		switch e.Tag() {
		case "required":
			return "Stock quantity is required"
		case "gte":
			return "Stock quantity cannot be negative"
		default:
			return "Stock quantity cannot exceed 100,000"
		}
	case "ImageURL":
		if e.Tag() == "required" {
			return "Image URL is required"
		}
		return "Image URL cannot exceed 500 characters"
	case "Email":
		if e.Tag() == "required" {
			return "Email is required"
		}
		return "Email must be valid"
	case "Password":
		return "Password is required"
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag())
	}
}
