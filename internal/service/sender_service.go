package service

import (
	"fmt"
	"log"

	"rentacar/internal/booking"
	"rentacar/internal/db"
	"rentacar/internal/utils"
)

// SenderService formats and sends reservation notifications.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendReservationEmail(contact *db.Renter, res *booking.Reservation, ev booking.Event) {
	subject := fmt.Sprintf("Your RentaCar reservation is %s - %s", statusWording(ev.To), shortID(ev.ReservationID))
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation at RentaCar is now %s.\n\n"+
			"Reservation Details:\n"+
			"Reservation: %s\n"+
			"Vehicle: %s\n"+
			"Pick-up: %s\n"+
			"Return: %s\n"+
			"Total: %.2f EUR\n\n"+
			"Thank you for choosing RentaCar.\n\n"+
			"RentaCar. All rights reserved.",
		contact.Name, statusWording(ev.To), res.ID, res.VehicleID,
		utils.FormatDay(res.Interval.Start), utils.FormatDay(res.Interval.End),
		float64(res.PriceSnapshotCents)/100,
	)

	go func(toEmail, toName, subject, body string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, body); err != nil {
			log.Printf("ALERT (async): email delivery failed for reservation %s: %v", ev.ReservationID, err)
		}
	}(contact.Email, contact.Name, subject, body)
}

func (s *SenderService) SendReservationSMS(contact *db.Renter, res *booking.Reservation, ev booking.Event) {
	if contact.Phone == "" {
		return
	}
	msg := fmt.Sprintf("RentaCar: reservation %s is now %s. Pick-up: %s. More details in your email.",
		shortID(ev.ReservationID), statusWording(ev.To), utils.FormatDay(res.Interval.Start))
	if err := SendSMS(contact.Phone, msg); err != nil {
		log.Printf("ALERT: SMS delivery failed for reservation %s to %s: %v",
			ev.ReservationID, contact.Phone, err)
	}
}

func statusWording(s booking.Status) string {
	switch s {
	case booking.StatusPending:
		return "awaiting approval"
	case booking.StatusAccepted:
		return "confirmed"
	case booking.StatusRefused:
		return "refused"
	case booking.StatusCancelled:
		return "cancelled"
	case booking.StatusCompleted:
		return "completed"
	case booking.StatusFailed:
		return "marked as failed"
	case booking.StatusRefunded:
		return "refunded"
	}
	return string(s)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
