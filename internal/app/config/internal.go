package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Timezone                  string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	MaxTimeRequestsPerSeconds int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
