package constvars

// Stripe payment intent statuses this service reacts to. Anything other than
// succeeded is treated as not yet payable into an appointment.
const (
	StripeStatusSucceeded             = "succeeded"
	StripeStatusRequiresPaymentMethod = "requires_payment_method"
	StripeStatusRequiresConfirmation  = "requires_confirmation"
	StripeStatusProcessing            = "processing"
	StripeStatusCanceled              = "canceled"
)

const (
	PaymentCurrency     = "PKR"
	PaymentMethodStripe = "Stripe"

	// Stripe caps individual metadata values at 500 characters.
	PaymentMetadataValueLimit = 500
)

// Metadata keys embedded on the payment intent. The verify flow treats these
// as the authoritative booking values, not fresh client input.
const (
	MetadataDoctorID         = "doctorId"
	MetadataPatientID        = "patientId"
	MetadataDoctorName       = "doctorName"
	MetadataPatientName      = "patientName"
	MetadataConsultationType = "consultationType"
	MetadataDate             = "date"
	MetadataSlotStart        = "slotStart"
	MetadataSlotEnd          = "slotEnd"
	MetadataSymptoms         = "symptoms"
	MetadataConsultationFees = "consultationFees"
	MetadataPlatformFees     = "platformFees"
	MetadataTotalAmount      = "totalAmount"
)
