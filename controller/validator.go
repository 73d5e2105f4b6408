package controller

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	aspectRatioPattern = regexp.MustCompile(`^\d+:\d+$`)
	sizeSpecPattern    = regexp.MustCompile(`^\d+x\d+$`)
)

// RegisterValidators 注册请求体里用到的自定义校验标签
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("aspectratio", func(fl validator.FieldLevel) bool {
		return aspectRatioPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("sizespec", func(fl validator.FieldLevel) bool {
		return sizeSpecPattern.MatchString(fl.Field().String())
	})
}
