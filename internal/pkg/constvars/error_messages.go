package constvars

// Client-facing messages. These are the only error strings that leave the
// service in production.
const (
	ErrClientCannotProcessRequest          = "Cannot process request, please check your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this request"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"

	ErrClientDoctorNotFound        = "Doctor not found"
	ErrClientPatientNotFound       = "Patient not found"
	ErrClientAppointmentNotFound   = "Appointment not found"
	ErrClientSlotAlreadyBooked     = "This time slot is already booked"
	ErrClientSlotNoLongerAvailable = "Time slot is no longer available. Please contact support for refund."
	ErrClientPaymentNotCompleted   = "Payment not completed or failed"
	ErrClientPaymentAccessDenied   = "Access denied"
	ErrClientPaymentProviderError  = "Payment provider could not process the request, please try again later"
	ErrClientBookingBusy           = "Another booking for this doctor is being finalized, please retry"
)

// Developer-facing messages, logged but never returned outside development.
const (
	ErrDevValidationFailed        = "Request validation failed"
	ErrDevCannotParseJSON         = "Failed to parse JSON request body"
	ErrDevCannotParseTime         = "Failed to parse timestamp"
	ErrDevCannotMarshalJSON       = "Failed to marshal JSON"
	ErrDevMissingRequestID        = "Request ID missing from request context"
	ErrDevServerDeadlineExceeded  = "Server deadline exceeded while processing request"
	ErrDevAuthTokenMissing        = "Authorization token is missing from request header"
	ErrDevAuthTokenInvalid        = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod       = "Unexpected JWT signing method"
	ErrDevAuthRoleMismatch        = "Authenticated role does not match required role"

	ErrDevDBFailedToFindDocument   = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument = "MongoDB failed to update document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBStringNotObjectID      = "Provided string is not a valid ObjectID"

	ErrDevRedisGetData = "Redis failed to get data"
	ErrDevRedisSetData = "Redis failed to set data"
	ErrDevRedisDeleteData = "Redis failed to delete data"
	ErrDevRedisUnlock     = "Redis failed to release lock"

	ErrDevRabbitMQPublish = "RabbitMQ failed to publish message to queue %s"

	ErrDevCreateHTTPRequest = "Failed to create HTTP request"
	ErrDevSendHTTPRequest   = "Failed to send HTTP request"

	ErrDevStripeCreateIntent   = "Stripe payment intent creation failed"
	ErrDevStripeRetrieveIntent = "Stripe payment intent retrieval failed"
	ErrDevStripeDecodeResponse = "Failed to decode Stripe response"

	ErrDevPaymentNotSucceeded    = "Payment intent status is not succeeded"
	ErrDevPaymentPatientMismatch = "Payment intent metadata patientId does not match requester"
	ErrDevSlotConflict           = "Requested slot overlaps an active appointment"
	ErrDevSlotConflictAtVerify   = "Slot became unavailable between payment and finalization"
	ErrDevBookingLockNotAcquired = "Could not acquire booking finalization lock"
)
