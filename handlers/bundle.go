package handlers

import (
	bookingSvc "turfbook/services/booking"
	"turfbook/services/notification"
	"turfbook/services/records"
)

// HandlerBundle groups the endpoint handlers and the services they delegate
// to. Routes are registered against one assembled bundle.
type HandlerBundle struct {
	Bookings bookingSvc.BookingService
	Records  records.RecordService
	Notifs   notification.NotificationService
}

func NewHandlerBundle(
	bookings bookingSvc.BookingService,
	recordSvc records.RecordService,
	notifs notification.NotificationService,
) *HandlerBundle {
	return &HandlerBundle{
		Bookings: bookings,
		Records:  recordSvc,
		Notifs:   notifs,
	}
}
