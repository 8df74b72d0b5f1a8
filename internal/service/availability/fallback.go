package availability

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// fallbackInventory фиксированная схема зала для деградированного режима
var fallbackInventory = []domain.Table{
	{ID: 1, Number: "T01", Seats: 2, Type: domain.TableWindow, Zone: "window", Available: true},
	{ID: 2, Number: "T02", Seats: 2, Type: domain.TableWindow, Zone: "window", Available: false},
	{ID: 3, Number: "T03", Seats: 4, Type: domain.TableWindow, Zone: "window", Available: true},
	{ID: 4, Number: "T04", Seats: 4, Type: domain.TableStandard, Zone: "center", Available: true},
	{ID: 5, Number: "T05", Seats: 4, Type: domain.TableStandard, Zone: "center", Available: true},
	{ID: 6, Number: "T06", Seats: 6, Type: domain.TableStandard, Zone: "center", Available: false},
	{ID: 7, Number: "T07", Seats: 4, Type: domain.TableStandard, Zone: "center", Available: true},
	{ID: 8, Number: "T08", Seats: 8, Type: domain.TableLarge, Zone: "back", Available: true},
	{ID: 9, Number: "T09", Seats: 8, Type: domain.TableLarge, Zone: "back", Available: false},
	{ID: 10, Number: "T10", Seats: 6, Type: domain.TableStandard, Zone: "back", Available: true},
	{ID: 11, Number: "V01", Seats: 4, Type: domain.TableVIP, Zone: "vip", Available: true},
	{ID: 12, Number: "V02", Seats: 6, Type: domain.TableVIP, Zone: "vip", Available: true},
	{ID: 13, Number: "V03", Seats: 8, Type: domain.TableVIP, Zone: "vip", Available: true},
}

// FallbackTables возвращает копию резервной схемы зала
// Это ориентировочная рассадка: бронирование все равно проверяется бэкендом при создании
func FallbackTables() []domain.Table {
	out := make([]domain.Table, len(fallbackInventory))
	copy(out, fallbackInventory)
	return out
}
