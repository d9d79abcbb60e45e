package service

import (
	"log"
	"time"

	"rentacar/internal/booking"
	"rentacar/internal/db"
)

// EventRecorder persists lifecycle events for the audit trail.
type EventRecorder interface {
	RecordEvent(ev booking.Event) error
}

// ContactDirectory resolves a renter id to notification contact details.
type ContactDirectory interface {
	ContactForRenter(id string) (*db.Renter, error)
}

// NotifySink is the lifecycle event consumer: it records each event, sends
// the renter an email and an SMS, and triggers the payment refund when a
// reservation reaches refunded. Publish never blocks the coordinator; a full
// queue or a delivery failure is logged, never propagated back.
type NotifySink struct {
	recorder  EventRecorder
	directory ContactDirectory
	sender    *SenderService
	stripe    *StripeService
	store     ReservationStore
	events    chan booking.Event
	done      chan struct{}
}

func NewNotifySink(recorder EventRecorder, directory ContactDirectory, sender *SenderService, stripe *StripeService, store ReservationStore) *NotifySink {
	ns := &NotifySink{
		recorder:  recorder,
		directory: directory,
		sender:    sender,
		stripe:    stripe,
		store:     store,
		events:    make(chan booking.Event, 256),
		done:      make(chan struct{}),
	}
	go ns.run()
	return ns
}

func (ns *NotifySink) Publish(ev booking.Event) {
	select {
	case ns.events <- ev:
	default:
		log.Printf("ALERT: event queue full, dropping notification for reservation %s (%s -> %s)",
			ev.ReservationID, ev.From, ev.To)
	}
}

// Close drains the queue and stops the worker.
func (ns *NotifySink) Close() {
	close(ns.events)
	<-ns.done
}

func (ns *NotifySink) run() {
	for ev := range ns.events {
		ns.handle(ev)
	}
	close(ns.done)
}

func (ns *NotifySink) handle(ev booking.Event) {
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		if err = ns.recorder.RecordEvent(ev); err == nil {
			break
		}
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	if err != nil {
		log.Printf("ALERT: could not record lifecycle event for reservation %s (%s -> %s): %v",
			ev.ReservationID, ev.From, ev.To, err)
	}

	if ns.store == nil {
		return
	}
	res, err := ns.store.Get(ev.ReservationID)
	if err != nil {
		log.Printf("ALERT: reservation %s not loadable for notification: %v", ev.ReservationID, err)
		return
	}

	if ev.To == booking.StatusRefunded {
		ns.refund(res)
	}

	if ns.sender == nil || ns.directory == nil {
		return
	}
	contact, err := ns.directory.ContactForRenter(ev.RenterID)
	if err != nil {
		log.Printf("ALERT: no contact for renter %s, skipping notification for reservation %s: %v",
			ev.RenterID, ev.ReservationID, err)
		return
	}
	ns.sender.SendReservationEmail(contact, res, ev)
	ns.sender.SendReservationSMS(contact, res, ev)
}

func (ns *NotifySink) refund(res *booking.Reservation) {
	if ns.stripe == nil {
		return
	}
	if res.PaymentRef == "" {
		log.Printf("No payment reference on reservation %s, nothing to refund", res.ID)
		return
	}
	if err := ns.stripe.RefundPayment(res.PaymentRef); err != nil {
		log.Printf("ALERT: refund failed for reservation %s (payment %s): %v",
			res.ID, res.PaymentRef, err)
	}
}
