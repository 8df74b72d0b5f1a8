package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (до сетевого вызова)
	ErrInvalidInput = errors.New("availability: invalid input data")
)

// MsgTablesDegraded сообщение пользователю, когда показывается резервная схема зала
const MsgTablesDegraded = "ไม่สามารถโหลดข้อมูลโต๊ะว่างได้ กำลังแสดงผังโต๊ะสำรอง กรุณายืนยันกับร้านอีกครั้ง"
