package handlers

import (
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators installs the custom binding validators. Safe to call
// more than once; re-registering the same tag just overwrites it.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("targetgroup", validTargetGroup)
}

// validTargetGroup accepts only the four fixed audience labels.
func validTargetGroup(fl validator.FieldLevel) bool {
	switch domain.TargetGroup(fl.Field().String()) {
	case domain.TargetAllMembers, domain.TargetManagers, domain.TargetStandardMembers, domain.TargetJewelers:
		return true
	}
	return false
}
