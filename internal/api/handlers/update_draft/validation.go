package update_draft

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

const (
	msgNameInvalid  = "ชื่อต้องมีอย่างน้อย 2 ตัวอักษร"
	msgNameRequired = "กรุณากรอกชื่อผู้จอง"
	msgPhoneInvalid = "เบอร์โทรศัพท์ต้องเป็นตัวเลข 10 หลัก"
	msgPhoneMissing = "กรุณากรอกเบอร์โทรศัพท์"
	msgEmailInvalid = "รูปแบบอีเมลไม่ถูกต้อง"
)

var msgNotesTooLong = fmt.Sprintf("หมายเหตุต้องไม่เกิน %d ตัวอักษร", domain.MaxNotesLength)

// validationMessage сообщение пользователю для первой ошибки валидации
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return msgInvalidRequestBody
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return msgNameRequired
		}
		return msgNameInvalid
	case "Phone":
		if fe.Tag() == "required" {
			return msgPhoneMissing
		}
		return msgPhoneInvalid
	case "Email":
		return msgEmailInvalid
	case "Notes":
		return msgNotesTooLong
	default:
		return msgInvalidRequestBody
	}
}
