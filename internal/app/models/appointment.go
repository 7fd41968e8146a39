package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "Scheduled"
	AppointmentInProgress AppointmentStatus = "In Progress"
	AppointmentCompleted  AppointmentStatus = "Completed"
	AppointmentCancelled  AppointmentStatus = "Cancelled"
)

// ActiveAppointmentStatuses are the statuses that hold a doctor's slot and
// therefore count toward conflict checks.
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentScheduled,
	AppointmentInProgress,
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
	PaymentFailed   PaymentStatus = "Failed"
)

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "Pending"
	PayoutProcessing PayoutStatus = "Processing"
	PayoutCompleted  PayoutStatus = "Completed"
)

type ConsultationType string

const (
	ConsultationVideo ConsultationType = "Video Consultation"
	ConsultationVoice ConsultationType = "Voice Call"
)

type Appointment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorID         primitive.ObjectID `bson:"doctorId" json:"doctorId"`
	PatientID        primitive.ObjectID `bson:"patientId" json:"patientId"`
	Date             time.Time          `bson:"date" json:"date"`
	SlotStart        time.Time          `bson:"slotStart" json:"slotStart"`
	SlotEnd          time.Time          `bson:"slotEnd" json:"slotEnd"`
	ConsultationType ConsultationType   `bson:"consultationType" json:"consultationType"`
	Symptoms         string             `bson:"symptoms" json:"symptoms"`
	RoomID           string             `bson:"roomId" json:"roomId"`
	Status           AppointmentStatus  `bson:"status" json:"status"`
	ConsultationFees float64            `bson:"consultationFees" json:"consultationFees"`
	PlatformFees     float64            `bson:"platformFees" json:"platformFees"`
	TotalAmount      float64            `bson:"totalAmount" json:"totalAmount"`
	PaymentStatus    PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	PayoutStatus     PayoutStatus       `bson:"payoutStatus" json:"payoutStatus"`
	PaymentMethod    string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentIntentID  string             `bson:"paymentIntentId" json:"paymentIntentId"`
	ChargeID         string             `bson:"chargeId,omitempty" json:"chargeId,omitempty"`
	PaymentDate      time.Time          `bson:"paymentDate" json:"paymentDate"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
