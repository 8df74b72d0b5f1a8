package lifecycle

import (
	"errors"

	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

// Сообщения пользователю
const (
	MsgAlreadyConfirmed = "การจองนี้ได้รับการยืนยันแล้ว"
	MsgDraftIncomplete  = "กรุณากรอกข้อมูลการจองให้ครบถ้วน"
	MsgCreateFailed     = "ไม่สามารถทำการจองได้ กรุณาลองใหม่อีกครั้ง"
	MsgDraftChanged     = "ข้อมูลการจองมีการเปลี่ยนแปลงระหว่างการยืนยัน กรุณาตรวจสอบการจองของคุณ"
	MsgBusy             = "กำลังดำเนินการ กรุณารอสักครู่"
	MsgInvalidPhone     = "กรุณากรอกเบอร์โทรศัพท์"
	MsgHistoryFailed    = "ไม่สามารถโหลดประวัติการจองได้ กรุณาลองใหม่อีกครั้ง"
	MsgBookingNotFound  = "ไม่พบข้อมูลการจอง"
	MsgCannotCancel     = "ไม่สามารถยกเลิกการจองได้: ต้องยกเลิกล่วงหน้าอย่างน้อย 2 ชั่วโมง"
	MsgCancelFailed     = "ไม่สามารถยกเลิกการจองได้ กรุณาลองใหม่อีกครั้ง"
	MsgUnknown          = "เกิดข้อผิดพลาด"
)

// UserMessage возвращает текст для пользователя по ошибке операции бронирования
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyConfirmed):
		return MsgAlreadyConfirmed
	case errors.Is(err, ErrDraftIncomplete):
		return MsgDraftIncomplete
	case errors.Is(err, ErrCreateFailed):
		return MsgCreateFailed
	case errors.Is(err, ErrDraftChanged):
		return MsgDraftChanged
	case errors.Is(err, wizard.ErrBusy):
		return MsgBusy
	case errors.Is(err, ErrInvalidPhone):
		return MsgInvalidPhone
	case errors.Is(err, ErrBookingNotFound):
		return MsgBookingNotFound
	case errors.Is(err, ErrCannotCancel):
		return MsgCannotCancel
	case errors.Is(err, ErrCancelFailed):
		return MsgCancelFailed
	default:
		return MsgUnknown
	}
}
