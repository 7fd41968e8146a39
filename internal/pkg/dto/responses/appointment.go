package responses

import (
	"time"

	"telemed-service/internal/app/models"
)

// DoctorSummary is the projection of a doctor embedded in appointment
// responses, mirroring what the booking UI renders.
type DoctorSummary struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Specialization string              `json:"specialization"`
	Fees           float64             `json:"fees"`
	HospitalInfo   models.HospitalInfo `json:"hospitalInfo"`
	ProfileImage   string              `json:"profileImage,omitempty"`
}

type PatientSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type AppointmentResponse struct {
	ID               string                   `json:"id"`
	Doctor           *DoctorSummary           `json:"doctor,omitempty"`
	Patient          *PatientSummary          `json:"patient,omitempty"`
	Date             time.Time                `json:"date"`
	SlotStart        time.Time                `json:"slotStart"`
	SlotEnd          time.Time                `json:"slotEnd"`
	ConsultationType models.ConsultationType  `json:"consultationType"`
	Symptoms         string                   `json:"symptoms"`
	RoomID           string                   `json:"roomId"`
	Status           models.AppointmentStatus `json:"status"`
	ConsultationFees float64                  `json:"consultationFees"`
	PlatformFees     float64                  `json:"platformFees"`
	TotalAmount      float64                  `json:"totalAmount"`
	PaymentStatus    models.PaymentStatus     `json:"paymentStatus"`
	PayoutStatus     models.PayoutStatus      `json:"payoutStatus"`
	PaymentMethod    string                   `json:"paymentMethod"`
	PaymentIntentID  string                   `json:"paymentIntentId"`
	PaymentDate      time.Time                `json:"paymentDate"`
	CreatedAt        time.Time                `json:"createdAt"`
}

func NewDoctorSummary(doctor *models.Doctor) *DoctorSummary {
	if doctor == nil {
		return nil
	}
	return &DoctorSummary{
		ID:             doctor.ID.Hex(),
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		Fees:           doctor.Fees,
		HospitalInfo:   doctor.HospitalInfo,
		ProfileImage:   doctor.ProfileImage,
	}
}

func NewPatientSummary(patient *models.Patient) *PatientSummary {
	if patient == nil {
		return nil
	}
	return &PatientSummary{
		ID:           patient.ID.Hex(),
		Name:         patient.Name,
		Email:        patient.Email,
		Phone:        patient.Phone,
		ProfileImage: patient.ProfileImage,
	}
}

func NewAppointmentResponse(appointment *models.Appointment, doctor *models.Doctor, patient *models.Patient) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               appointment.ID.Hex(),
		Doctor:           NewDoctorSummary(doctor),
		Patient:          NewPatientSummary(patient),
		Date:             appointment.Date,
		SlotStart:        appointment.SlotStart,
		SlotEnd:          appointment.SlotEnd,
		ConsultationType: appointment.ConsultationType,
		Symptoms:         appointment.Symptoms,
		RoomID:           appointment.RoomID,
		Status:           appointment.Status,
		ConsultationFees: appointment.ConsultationFees,
		PlatformFees:     appointment.PlatformFees,
		TotalAmount:      appointment.TotalAmount,
		PaymentStatus:    appointment.PaymentStatus,
		PayoutStatus:     appointment.PayoutStatus,
		PaymentMethod:    appointment.PaymentMethod,
		PaymentIntentID:  appointment.PaymentIntentID,
		PaymentDate:      appointment.PaymentDate,
		CreatedAt:        appointment.CreatedAt,
	}
}
