package constvars

const (
	ResponseSuccess = "Success"

	PaymentOrderCreatedMessage = "Payment intent created successfully"
	PaymentVerifiedMessage     = "Payment verified and appointment confirmed successfully"
	AppointmentsFetchedMessage = "Appointments fetched successfully"
	AppointmentFetchedMessage  = "Appointment fetched successfully"
)
