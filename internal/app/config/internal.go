package config

type InternalConfig struct {
	App            App
	JWT            JWT
	PaymentGateway PaymentGateway
	Booking        Booking
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	MaxTimeRequestsPerSeconds int
	ShutdownTimeout           int
}

type JWT struct {
	Secret string
}

type PaymentGateway struct {
	BaseUrl          string
	SecretKey        string
	Currency         string
	RequestTimeout   int
	RequestsPerSecond int
}

type Booking struct {
	NotificationQueue        string
	FinalizeLockTTLInSeconds int
}
