package request

import (
	"sync"

	"peer-tutor-scheduler/internal/domain/slot"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the ymd and hhmm tags to gin's validator engine.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err = v.RegisterValidation("ymd", validateYMD); err != nil {
			return
		}
		err = v.RegisterValidation("hhmm", validateHHMM)
	})
	return err
}

func validateYMD(fl validator.FieldLevel) bool {
	_, err := slot.ParseCalendarDate(fl.Field().String())
	return err == nil
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := slot.ParseClockTime(fl.FieldName(), fl.Field().String())
	return err == nil
}
